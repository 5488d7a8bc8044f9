// Package history holds two per-search move-ordering hints: killer moves
// per ply and a counter-move table keyed by the opponent's previous move.
// Both are owned by a single in-flight search and reset at its start —
// never shared across searches or goroutines.
package history

import (
	. "github.com/umbrachess/umbra/internal/types"
)

// maxPly bounds the killer table; no realistic search horizon (including
// check-extension and quiescence) reaches it.
const maxPly = 128

// Killers holds two killer-move slots per ply.
type Killers struct {
	slot [maxPly][2]Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers { return &Killers{} }

// Slot1 and Slot2 return the killer moves recorded at ply, or MoveNone.
func (k *Killers) Slot1(ply int) Move { return k.at(ply, 0) }
func (k *Killers) Slot2(ply int) Move { return k.at(ply, 1) }

func (k *Killers) at(ply, slot int) Move {
	if ply < 0 || ply >= maxPly {
		return MoveNone
	}
	return k.slot[ply][slot]
}

// Update records m as the newest killer at ply on a beta cutoff by a
// quiet move, shifting the previous slot1 into slot2. Deduplicates
// against the existing slot1 so the same move is never stored twice.
func (k *Killers) Update(ply int, m Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if k.slot[ply][0].Equals(m) {
		return
	}
	k.slot[ply][1] = k.slot[ply][0]
	k.slot[ply][0] = m
}

// CounterMoves maps (from, to) of the previous move to the move that
// refuted it most recently.
type CounterMoves struct {
	table [SqLength][SqLength]Move
}

// NewCounterMoves returns an empty counter-move table.
func NewCounterMoves() *CounterMoves { return &CounterMoves{} }

// Get returns the recorded counter to a move from `from` to `to`.
func (c *CounterMoves) Get(from, to Square) Move {
	if !from.IsValid() || !to.IsValid() {
		return MoveNone
	}
	return c.table[from][to]
}

// Update records m as the refutation of the previous move (from, to).
func (c *CounterMoves) Update(from, to Square, m Move) {
	if !from.IsValid() || !to.IsValid() {
		return
	}
	c.table[from][to] = m
}
