package uci

import (
	"github.com/umbrachess/umbra/internal/movegen"
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// MoveFromUCI resolves a UCI move string ("e2e4", "e7e8q") against pos's
// legal moves. Generation-then-match rather than parsing the squares
// directly keeps this honest about legality: a move string that parses
// but isn't actually legal in pos is rejected rather than silently played.
func MoveFromUCI(pos *position.Position, s string) (Move, bool) {
	var list movegen.MoveList
	movegen.GenerateAll(pos, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.String() != s {
			continue
		}
		if _, legal := movegen.MakeIfLegal(pos, m); legal {
			return m, true
		}
	}
	return MoveNone, false
}
