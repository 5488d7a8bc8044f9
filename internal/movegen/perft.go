package movegen

import (
	"github.com/umbrachess/umbra/internal/position"
)

// Perft counts the leaf positions reachable in exactly depth plies from
// pos — the standard move-generator correctness check.
func Perft(pos position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateAll(&pos, &list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		next, ok := MakeIfLegal(&pos, list.At(i))
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}
