package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMT19937_64Deterministic(t *testing.T) {
	a := NewMT19937_64(42)
	b := NewMT19937_64(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next64(), b.Next64())
	}
}

func TestMT19937_64DifferentSeedsDiverge(t *testing.T) {
	a := NewMT19937_64(1)
	b := NewMT19937_64(2)
	assert.NotEqual(t, a.Next64(), b.Next64())
}

func TestSparseNext64IsSparserThanRaw(t *testing.T) {
	r := NewMT19937_64(7)
	var sparseBits, rawBits int
	const draws = 200
	for i := 0; i < draws; i++ {
		sparseBits += popcount(r.SparseNext64())
		rawBits += popcount(r.Next64())
	}
	// ANDing three independent draws leaves roughly 1/8th of bits set on
	// average, well below a raw word's ~32.
	assert.Less(t, sparseBits/draws, rawBits/draws)
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}
