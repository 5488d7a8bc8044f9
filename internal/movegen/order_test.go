package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umbrachess/umbra/internal/history"
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

func TestScoreCapturesRanksWinningAboveLosing(t *testing.T) {
	// White queen can take a pawn defended by another pawn (losing) or an
	// undefended rook (winning); the winning capture must sort first.
	p, err := position.NewPosition("6k1/8/5p2/4p3/r2Q4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateCaptures(p, &list)
	ScoreCaptures(p, &list)

	best, found := list.SelectMove(0)
	assert.True(t, found)
	assert.Equal(t, Rook, best.CapturedPiece())
	assert.NotEqual(t, uint16(0), best.OrderValue())
}

func TestIsLosingCaptureRequiresDefendedDestination(t *testing.T) {
	p, err := position.NewPosition("4k3/8/3p4/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	m := NewMove(NewSquare(3, 0), NewSquare(3, 5), Queen, Pawn, Normal, PtEmpty) // Qxd6, undefended
	assert.False(t, isLosingCapture(p, m))
}

func TestScoreCastlingIsFixedValue(t *testing.T) {
	var list MoveList
	list.Add(NewMove(NewSquare(4, 0), NewSquare(6, 0), King, PtEmpty, CastleKingSide, PtEmpty))
	ScoreCastling(&list)
	assert.Equal(t, uint16(castlingOrderValue), list.At(0).OrderValue())
}

func TestScoreQuietsPrefersKillerOverPSTDelta(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	var list MoveList
	GenerateQuiets(p, &list)
	assert.Greater(t, list.Len(), 0)

	killerMove := list.At(0)
	killers := history.NewKillers()
	killers.Update(3, killerMove)
	counters := history.NewCounterMoves()

	ScoreQuiets(p, &list, killers, counters, 3, MoveNone)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Equals(killerMove) {
			assert.Equal(t, uint16(2005), m.OrderValue())
		}
	}
}

func TestClampOrderBounds(t *testing.T) {
	assert.Equal(t, uint16(1), clampOrder(0))
	assert.Equal(t, uint16(1), clampOrder(-5))
	assert.Equal(t, uint16(65535), clampOrder(100000))
	assert.Equal(t, uint16(42), clampOrder(42))
}
