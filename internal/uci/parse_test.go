package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umbrachess/umbra/internal/movegen"
	"github.com/umbrachess/umbra/internal/position"
)

func TestMoveFromUCIFindsLegalMove(t *testing.T) {
	p := position.StartPosition()
	m, ok := MoveFromUCI(&p, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestMoveFromUCIRejectsIllegalMove(t *testing.T) {
	p := position.StartPosition()
	_, ok := MoveFromUCI(&p, "e2e5")
	assert.False(t, ok)
}

func TestMoveFromUCIPromotion(t *testing.T) {
	p, err := position.NewPosition("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	assert.NoError(t, err)
	m, ok := MoveFromUCI(p, "a7a8q")
	assert.True(t, ok)
	assert.Equal(t, "a7a8q", m.String())
}

func TestMoveFromUCIRoundTripEveryGeneratedMove(t *testing.T) {
	p := position.StartPosition()
	var list movegen.MoveList
	movegen.GenerateAll(&p, &list)

	for i := 0; i < list.Len(); i++ {
		want := list.At(i)
		if _, legal := movegen.MakeIfLegal(&p, want); !legal {
			continue
		}
		got, ok := MoveFromUCI(&p, want.String())
		assert.True(t, ok)
		assert.True(t, got.Equals(want))
	}
}
