package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/umbrachess/umbra/internal/types"
)

func TestStartPositionBasics(t *testing.T) {
	p := StartPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, uint16(0), p.HalfMoveClock())
	assert.Equal(t, uint16(1), p.FullMoveNumber())
	assert.Equal(t, 16, p.OccupiedBb(White).PopCount())
	assert.Equal(t, 16, p.OccupiedBb(Black).PopCount())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 7",
		"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPosition(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestZobristMatchesFullRecompute(t *testing.T) {
	p := StartPosition()
	assert.Equal(t, p.computeZobrist(), p.ZobristKey())

	other, err := NewPosition("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	assert.NoError(t, err)
	assert.Equal(t, other.computeZobrist(), other.ZobristKey())
}

func TestMakeMoveMaintainsZobristIncrementally(t *testing.T) {
	p := StartPosition()
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), Pawn, PtEmpty, Normal, PtEmpty) // e2e4
	next := p.MakeMove(m)

	assert.Equal(t, next.computeZobrist(), next.ZobristKey())
	assert.NotEqual(t, p.ZobristKey(), next.ZobristKey())
	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, NewSquare(4, 2), next.EnPassantSquare())
}

func TestMakeMoveDoesNotMutateReceiver(t *testing.T) {
	p := StartPosition()
	before := p.ZobristKey()
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), Pawn, PtEmpty, Normal, PtEmpty)
	_ = p.MakeMove(m)
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, White, p.SideToMove())
}

func TestCastlingRightsClearedByCapturedCornerSquare(t *testing.T) {
	// A rook captured on its own corner square loses that corner's right,
	// even though the capturing piece isn't the king or rook moving.
	p, err := NewPosition("4k3/8/8/8/8/8/b7/R3K2R b KQ - 0 1")
	assert.NoError(t, err)

	capture := NewMove(NewSquare(0, 1), NewSquare(0, 0), Bishop, Rook, Normal, PtEmpty) // a2 bishop takes a1 rook
	next := p.MakeMove(capture)
	assert.False(t, next.CastlingRights().Has(WhiteQueenSide))
	assert.True(t, next.CastlingRights().Has(WhiteKingSide))
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	m := NewMove(NewSquare(4, 0), NewSquare(5, 0), King, PtEmpty, Normal, PtEmpty) // e1f1
	next := p.MakeMove(m)
	assert.False(t, next.CastlingRights().Has(WhiteKingSide))
	assert.False(t, next.CastlingRights().Has(WhiteQueenSide))
}

func TestCastlingRightsClearedByRookMove(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	m := NewMove(NewSquare(0, 0), NewSquare(0, 3), Rook, PtEmpty, Normal, PtEmpty) // a1a4
	next := p.MakeMove(m)
	assert.False(t, next.CastlingRights().Has(WhiteQueenSide))
	assert.True(t, next.CastlingRights().Has(WhiteKingSide))
}

func TestNullMoveFlipsSideOnly(t *testing.T) {
	p := StartPosition()
	next := p.NullMove()
	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, p.OccupiedAll(), next.OccupiedAll())
	assert.Equal(t, p.HalfMoveClock(), next.HalfMoveClock())
}

func TestInCheckDetection(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())
}

func TestHasNonPawnMaterial(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.HasNonPawnMaterial(White))

	p2, err := NewPosition("4k3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p2.HasNonPawnMaterial(White))
}

func TestPieceAtReconstruction(t *testing.T) {
	p := StartPosition()
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(NewSquare(0, 0)))
	assert.Equal(t, MakePiece(Black, King), p.PieceAt(NewSquare(4, 7)))
	assert.Equal(t, PieceNone, p.PieceAt(NewSquare(4, 3)))
}
