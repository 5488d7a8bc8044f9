// Package evaluator turns a Position's incrementally maintained
// middlegame/endgame accumulators into a single tapered score from the
// perspective of the side to move.
package evaluator

import (
	"github.com/umbrachess/umbra/internal/position"
)

// maxPhase is the game-phase value at which the blend is fully
// middlegame; anything above it is clamped.
const maxPhase = 24

// Evaluate returns pos's static evaluation, positive meaning good for
// the side to move.
func Evaluate(pos *position.Position) int32 {
	us := pos.SideToMove()
	them := us.Flip()

	phase := pos.GamePhase()
	if phase > maxPhase {
		phase = maxPhase
	}

	mgDiff := pos.MgScore(us) - pos.MgScore(them)
	egDiff := pos.EgScore(us) - pos.EgScore(them)

	return (mgDiff*phase + egDiff*(maxPhase-phase)) / maxPhase
}
