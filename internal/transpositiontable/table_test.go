package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/umbrachess/umbra/internal/types"
)

func TestStoreThenProbeRoundTrips(t *testing.T) {
	tt := New(1)
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), Pawn, PtEmpty, Normal, PtEmpty)
	tt.Store(Key(12345), Value(57), m, BoundExact, 6)

	score, move, bound, depth, ok := tt.Probe(Key(12345))
	assert.True(t, ok)
	assert.Equal(t, Value(57), score)
	assert.True(t, move.Equals(m))
	assert.Equal(t, BoundExact, bound)
	assert.Equal(t, 6, depth)
}

func TestProbeMissOnKeyCollisionAtSameIndex(t *testing.T) {
	tt := New(1) // small table, collisions across the 64-bit key space are cheap to construct
	m := NewMove(NewSquare(0, 1), NewSquare(0, 3), Pawn, PtEmpty, Normal, PtEmpty)
	tt.Store(Key(1), Value(10), m, BoundExact, 4)

	// Same bucket index (same low bits mod table size) but a different
	// full key must not return a stale hit.
	collidingKey := Key(1) + Key(tt.Len())
	_, _, _, _, ok := tt.Probe(collidingKey)
	assert.False(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	m := NewMove(NewSquare(0, 1), NewSquare(0, 3), Pawn, PtEmpty, Normal, PtEmpty)
	tt.Store(Key(99), Value(1), m, BoundExact, 1)
	tt.Clear()

	_, _, _, _, ok := tt.Probe(Key(99))
	assert.False(t, ok)
}

func TestAlwaysReplaceOverwritesPreviousEntry(t *testing.T) {
	tt := New(1)
	m1 := NewMove(NewSquare(0, 1), NewSquare(0, 3), Pawn, PtEmpty, Normal, PtEmpty)
	m2 := NewMove(NewSquare(1, 1), NewSquare(1, 3), Pawn, PtEmpty, Normal, PtEmpty)

	tt.Store(Key(5), Value(1), m1, BoundLower, 2)
	tt.Store(Key(5), Value(2), m2, BoundUpper, 8)

	score, move, bound, depth, ok := tt.Probe(Key(5))
	assert.True(t, ok)
	assert.Equal(t, Value(2), score)
	assert.True(t, move.Equals(m2))
	assert.Equal(t, BoundUpper, bound)
	assert.Equal(t, 8, depth)
}

func TestScoreToTTAndFromTTRoundTripNonMateScore(t *testing.T) {
	for _, v := range []Value{0, 50, -50, 900, -900} {
		stored := ScoreToTT(v, 7)
		assert.Equal(t, v, ScoreFromTT(stored, 7))
	}
}

func TestScoreToTTAdjustsMateScoreByPly(t *testing.T) {
	mate := MateIn(3) // mate in 3 plies from the root
	stored := ScoreToTT(mate, 5)
	// storage form moves the mate score away from zero by the storing
	// ply; reading it back at that same ply restores the original score.
	assert.Equal(t, mate+Value(5), stored)
	assert.Equal(t, mate, ScoreFromTT(stored, 5))

	mated := MatedIn(3)
	stored2 := ScoreToTT(mated, 5)
	assert.Equal(t, mated-Value(5), stored2)
	assert.Equal(t, mated, ScoreFromTT(stored2, 5))
}

func TestNewSizesToPowerOfTwoBuckets(t *testing.T) {
	tt := New(1)
	n := tt.Len()
	assert.Equal(t, n, n&-n, "bucket count must be a power of two")
	assert.Greater(t, n, 0)
}
