package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umbrachess/umbra/internal/position"
)

func TestEvaluateSymmetricStartPosition(t *testing.T) {
	p := position.StartPosition()
	assert.Equal(t, int32(0), Evaluate(&p))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, Evaluate(p), int32(0))
}

func TestEvaluateIsFromSideToMovePerspective(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	white := Evaluate(p)

	black, err := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, -white, Evaluate(black))
}

func TestEvaluateClampsGamePhaseAboveMax(t *testing.T) {
	// Seven queens a side push the phase weight above maxPhase; evaluation
	// must still run without overshooting the [0, maxPhase] blend.
	p, err := position.NewPosition("qqqqkqqq/8/8/8/8/8/8/QQQQKQQQ w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, p.GamePhase(), int32(maxPhase))
	assert.NotPanics(t, func() { Evaluate(p) })
}
