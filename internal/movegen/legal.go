package movegen

import (
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// MakeIfLegal plays m in pos and reports whether the result is legal,
// i.e. the mover's own king is not left attacked. Returns the resulting
// position only when legal; search and perft discard m rather than
// regenerating it when ok is false.
func MakeIfLegal(pos *position.Position, m Move) (next position.Position, ok bool) {
	us := pos.SideToMove()
	next = pos.MakeMove(m)
	if next.IsAttacked(next.KingSquare(us), next.SideToMove()) {
		return position.Position{}, false
	}
	return next, true
}

// GivesCheck reports whether, after playing m, the opponent's king is
// attacked — used by search's check-extension test.
func GivesCheck(next *position.Position) bool {
	them := next.SideToMove()
	return next.IsAttacked(next.KingSquare(them), them.Flip())
}
