package util

import "time"

// Nps computes nodes-per-second, guarding against a zero or
// sub-millisecond elapsed duration.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	ms := elapsed.Milliseconds()
	if ms <= 0 {
		return nodes * 1000
	}
	return nodes * 1000 / uint64(ms)
}
