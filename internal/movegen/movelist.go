// Package movegen generates pseudo-legal chess moves from a position in
// the staged order the search wants them in: promotions, captures,
// quiets, castling, and a re-sort of the captures that lost the static
// exchange (losing_captures). Nothing here allocates on the hot path —
// every move list is a fixed-capacity array.
package movegen

import (
	. "github.com/umbrachess/umbra/internal/types"
)

// maxMoves bounds a single position's pseudo-legal move count; no legal
// chess position needs more than a small fraction of this.
const maxMoves = 256

// MoveList is a fixed-capacity, heap-free buffer of moves.
type MoveList struct {
	moves [maxMoves]Move
	count int
}

// Add appends m, silently dropping it if the list is already full (can
// only happen on a corrupt position; real games never approach the cap).
func (l *MoveList) Add(m Move) {
	if l.count >= maxMoves {
		return
	}
	l.moves[l.count] = m
	l.count++
}

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.count }

// At returns the move at index i.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the move at index i — used by move ordering to attach an
// order value without reallocating.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Clear empties the list for reuse.
func (l *MoveList) Clear() { l.count = 0 }

// SelectMove finds the highest-OrderValue move at or after `from`, swaps
// it to `from`, and returns it. Used by the staged generator's NextMove
// to hand out moves best-first without a full sort.
func (l *MoveList) SelectMove(from int) (Move, bool) {
	if from >= l.count {
		return MoveNone, false
	}
	best := from
	for i := from + 1; i < l.count; i++ {
		if l.moves[i].OrderValue() > l.moves[best].OrderValue() {
			best = i
		}
	}
	l.moves[from], l.moves[best] = l.moves[best], l.moves[from]
	return l.moves[from], true
}
