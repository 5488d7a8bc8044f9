package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

func countMatching(list *MoveList, pred func(Move) bool) int {
	n := 0
	for i := 0; i < list.Len(); i++ {
		if pred(list.At(i)) {
			n++
		}
	}
	return n
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	p, err := position.NewPosition("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GeneratePromotions(p, &list)

	n := countMatching(&list, func(m Move) bool { return m.From() == NewSquare(0, 6) })
	assert.Equal(t, 4, n)

	seen := map[PieceType]bool{}
	for i := 0; i < list.Len(); i++ {
		seen[list.At(i).PromotionPiece()] = true
	}
	assert.True(t, seen[Queen])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Knight])
}

func TestEnPassantOnlyWhenTargetSet(t *testing.T) {
	// White pawn on e5, black just played d7-d5: en passant target d6.
	p, err := position.NewPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCaptures(p, &list)
	n := countMatching(&list, func(m Move) bool { return m.Type() == EnPassant })
	assert.Equal(t, 1, n)
}

func TestNoEnPassantWithoutTarget(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCaptures(p, &list)
	n := countMatching(&list, func(m Move) bool { return m.Type() == EnPassant })
	assert.Equal(t, 0, n)
}

func TestCastlingBlockedByOccupiedSquare(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCastling(p, &list)
	n := countMatching(&list, func(m Move) bool { return m.Type() == CastleQueenSide })
	assert.Equal(t, 0, n, "b1 knight blocks queenside castling")

	nk := countMatching(&list, func(m Move) bool { return m.Type() == CastleKingSide })
	assert.Equal(t, 1, nk)
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// black rook on f8 attacks f1, the king's travel square for kingside castling.
	p, err := position.NewPosition("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCastling(p, &list)
	assert.Equal(t, 0, list.Len())
}

func TestCastlingBlockedByMissingRights(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCastling(p, &list)
	assert.Equal(t, 0, list.Len())
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	// Classic king-and-queen stalemate trap: black king h8, not in check,
	// no legal move.
	p, err := position.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.InCheck())

	var list MoveList
	GenerateAll(p, &list)
	legal := 0
	for i := 0; i < list.Len(); i++ {
		if _, ok := MakeIfLegal(p, list.At(i)); ok {
			legal++
		}
	}
	assert.Equal(t, 0, legal)
}

func TestCheckmateHasNoLegalMovesButKingAttacked(t *testing.T) {
	// Fool's-mate-style mate: black queen delivers mate on h4.
	p, err := position.NewPosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())

	var list MoveList
	GenerateAll(p, &list)
	legal := 0
	for i := 0; i < list.Len(); i++ {
		if _, ok := MakeIfLegal(p, list.At(i)); ok {
			legal++
		}
	}
	assert.Equal(t, 0, legal)
}

func TestMoveRoundTripThroughUCIString(t *testing.T) {
	p := position.StartPosition()
	var list MoveList
	GenerateAll(&p, &list)
	assert.Greater(t, list.Len(), 0)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		again := NewMove(m.From(), m.To(), m.MovedPiece(), m.CapturedPiece(), m.Type(), m.PromotionPiece())
		assert.True(t, m.Equals(again))
	}
}
