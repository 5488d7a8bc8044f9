package movegen

import (
	"github.com/umbrachess/umbra/internal/history"
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// Order values live in a move's top 16 bits, so every score computed
// here is clamped into [1, 65535] except the one deliberate sentinel: 0
// marks a losing capture skipped by the captures stage and picked back
// up, re-scored, by the losing-captures stage.
func clampOrder(v int) uint16 {
	if v < 1 {
		return 1
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// ScorePromotions assigns each promotion move the material value of the
// piece it promotes to, so queen promotions sort first.
func ScorePromotions(list *MoveList) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		list.Set(i, m.WithOrderValue(clampOrder(m.PromotionPiece().Value())))
	}
}

// isLosingCapture classifies a capture: it is winning (and scored by
// MVV/LVA) unless the mover is more valuable than the victim *and* the
// destination is defended by the opponent.
func isLosingCapture(pos *position.Position, m Move) bool {
	mover := m.MovedPiece().Value()
	victim := m.CapturedPiece().Value()
	if mover <= victim {
		return false
	}
	them := pos.SideToMove().Flip()
	return pos.IsAttacked(m.To(), them)
}

// capturesBase offsets MVV/LVA scores comfortably above zero so the
// reserved "losing capture" sentinel never collides with a real score.
const capturesBase = 10000

// ScoreCaptures assigns MVV/LVA-with-defendedness scores for the
// captures stage: winning captures get 10*victim-mover (offset into
// range), losing captures get the stage-skip sentinel 0.
func ScoreCaptures(pos *position.Position, list *MoveList) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if isLosingCapture(pos, m) {
			list.Set(i, m.WithOrderValue(0))
			continue
		}
		score := capturesBase + 10*m.CapturedPiece().Value() - m.MovedPiece().Value()
		list.Set(i, m.WithOrderValue(clampOrder(score)))
	}
}

// ScoreLosingCaptures assigns the losing_captures stage's fallback
// order: big piece loses little is ordered after every winning capture,
// but the smallest losses among losers still sort first.
func ScoreLosingCaptures(list *MoveList) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		score := 1001 - m.MovedPiece().Value()
		list.Set(i, m.WithOrderValue(clampOrder(score)))
	}
}

// ScoreCastling assigns every castle move the same fixed value; there is
// no further distinction between king-side and queen-side.
const castlingOrderValue = 1500

func ScoreCastling(list *MoveList) {
	for i := 0; i < list.Len(); i++ {
		list.Set(i, list.At(i).WithOrderValue(castlingOrderValue))
	}
}

// Quiet-move order values, in descending priority.
const (
	killerSlot1Value    = 2005
	killerSlot2Value    = 2004
	killerPrevSlot1Value = 2003
	killerPrevSlot2Value = 2002
	counterMoveValue    = 2001
	quietBaseValue      = 500
)

// ScoreQuiets assigns killer, counter-move, and piece-square-delta
// scores to the quiets stage, each category sorting above the next.
func ScoreQuiets(pos *position.Position, list *MoveList, killers *history.Killers, counters *history.CounterMoves, ply int, prevMove Move) {
	us := pos.SideToMove()

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		switch {
		case m.Equals(killers.Slot1(ply)):
			list.Set(i, m.WithOrderValue(killerSlot1Value))
			continue
		case m.Equals(killers.Slot2(ply)):
			list.Set(i, m.WithOrderValue(killerSlot2Value))
			continue
		case m.Equals(killers.Slot1(ply - 2)):
			list.Set(i, m.WithOrderValue(killerPrevSlot1Value))
			continue
		case m.Equals(killers.Slot2(ply - 2)):
			list.Set(i, m.WithOrderValue(killerPrevSlot2Value))
			continue
		}

		if prevMove != MoveNone && m.Equals(counters.Get(prevMove.From(), prevMove.To())) {
			list.Set(i, m.WithOrderValue(counterMoveValue))
			continue
		}

		mgTo, _ := PSTValue(us, m.MovedPiece(), m.To())
		mgFrom, _ := PSTValue(us, m.MovedPiece(), m.From())
		score := quietBaseValue + mgTo - mgFrom
		list.Set(i, m.WithOrderValue(clampOrder(score)))
	}
}
