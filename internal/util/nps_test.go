package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNpsComputesRate(t *testing.T) {
	assert.Equal(t, uint64(2000), Nps(2000, time.Second))
	assert.Equal(t, uint64(4000), Nps(2000, 500*time.Millisecond))
}

func TestNpsGuardsZeroElapsed(t *testing.T) {
	assert.Equal(t, uint64(5000), Nps(5, 0))
}
