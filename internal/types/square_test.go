package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSquareAndAccessors(t *testing.T) {
	sq := NewSquare(4, 3) // e4
	assert.Equal(t, 4, sq.FileOf())
	assert.Equal(t, 3, sq.RankOf())
	assert.Equal(t, "e4", sq.String())
	assert.True(t, sq.IsValid())
}

func TestSquareFromString(t *testing.T) {
	sq, err := SquareFromString("e4")
	assert.NoError(t, err)
	assert.Equal(t, NewSquare(4, 3), sq)

	none, err := SquareFromString("-")
	assert.NoError(t, err)
	assert.Equal(t, SqNone, none)

	_, err = SquareFromString("z9")
	assert.Error(t, err)
}

func TestSquareToRejectsFileWrap(t *testing.T) {
	a1 := NewSquare(0, 0)
	assert.Equal(t, SqNone, a1.To(West))
	assert.Equal(t, SqNone, a1.To(Southwest))
	assert.Equal(t, SqNone, a1.To(Northwest))

	h8 := NewSquare(7, 7)
	assert.Equal(t, SqNone, h8.To(East))
	assert.Equal(t, SqNone, h8.To(North))

	e4 := NewSquare(4, 3)
	assert.Equal(t, NewSquare(4, 4), e4.To(North))
	assert.Equal(t, NewSquare(5, 4), e4.To(Northeast))
}

func TestSquareRoundTrip(t *testing.T) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := NewSquare(f, r)
			parsed, err := SquareFromString(sq.String())
			assert.NoError(t, err)
			assert.Equal(t, sq, parsed)
		}
	}
}
