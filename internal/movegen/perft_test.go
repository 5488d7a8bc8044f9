package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umbrachess/umbra/internal/position"
)

func TestPerftStartPosition(t *testing.T) {
	p := position.StartPosition()
	assert.Equal(t, uint64(197281), Perft(p, 4))
}

func TestPerftStartPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-5 perft is slow; skipped with -short")
	}
	p := position.StartPosition()
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	assert.NoError(t, err)
	assert.Equal(t, uint64(4085603), Perft(*p, 4))
}

func TestPerftPosition4(t *testing.T) {
	p, err := position.NewPosition("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(422333), Perft(*p, 4))
}

func TestPerftPosition5(t *testing.T) {
	p, err := position.NewPosition("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(43238), Perft(*p, 4))
}
