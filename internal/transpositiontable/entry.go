package transpositiontable

import (
	. "github.com/umbrachess/umbra/internal/types"
)

// Packed entry layout, low to high:
//
//	bits  0-27  move identity        (28 bits)
//	bits 28-43  score, signed        (16 bits)
//	bits 44-51  depth                (8 bits)
//	bits 52-53  bound kind           (2 bits)
const (
	moveShift  = 0
	scoreShift = 28
	depthShift = 44
	boundShift = 52

	moveMask  = 0x0FFFFFFF
	scoreMask = 0xFFFF
	depthMask = 0xFF
	boundMask = 0x3
)

func pack(bound Bound, score Value, depth int, move Move) uint64 {
	d := depth
	if d < 0 {
		d = 0
	}
	if d > depthMask {
		d = depthMask
	}
	return uint64(move.Identity())&moveMask<<moveShift |
		uint64(uint16(score))&scoreMask<<scoreShift |
		uint64(d)&depthMask<<depthShift |
		uint64(bound)&boundMask<<boundShift
}

func unpackMove(data uint64) Move {
	return Move((data >> moveShift) & moveMask)
}

func unpackScore(data uint64) Value {
	return Value(int16((data >> scoreShift) & scoreMask))
}

func unpackDepth(data uint64) int {
	return int((data >> depthShift) & depthMask)
}

func unpackBound(data uint64) Bound {
	return Bound((data >> boundShift) & boundMask)
}

// ScoreToTT converts a mate-carrying score to its ply-independent form
// before storage, so a mate found at a different search depth on a later
// probe still compares correctly.
func ScoreToTT(score Value, ply int) Value {
	if score >= MateThreshold {
		return score + Value(ply)
	}
	if score <= -MateThreshold {
		return score - Value(ply)
	}
	return score
}

// ScoreFromTT is ScoreToTT's inverse, applied on probe.
func ScoreFromTT(score Value, ply int) Value {
	if score >= MateThreshold {
		return score - Value(ply)
	}
	if score <= -MateThreshold {
		return score + Value(ply)
	}
	return score
}
