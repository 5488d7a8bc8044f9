package types

// Value is a search/evaluation score in centipawns from the perspective of
// the side to move.
type Value int32

// Key is a Zobrist hash key — needs the full 64 bits for distribution.
type Key uint64

const (
	// ValueZero is a drawn/neutral score.
	ValueZero Value = 0

	// Mate is the checkmate constant. A mate score is Mate-ply for the
	// winning side, so it decreases in magnitude the deeper the mate,
	// letting shallower mates be preferred.
	Mate Value = 30000

	// MateThreshold: any |score| above this is a forced mate of some
	// distance, used by the UCI layer to print "score mate N" instead of
	// "score cp N".
	MateThreshold Value = Mate - 1000

	// OutOfTime is a sentinel value outside the normal score range,
	// returned up the call stack the instant a search's deadline has
	// elapsed. Every caller must check for it before using a returned
	// score.
	OutOfTime Value = 32000

	// Infinite is the initial alpha/beta window bound.
	Infinite Value = Mate + 1
)

// MateIn converts a ply-to-mate count into the score reported at ply 0.
func MateIn(ply int) Value {
	return Mate - Value(ply)
}

// MatedIn is the score for being mated in the given number of plies.
func MatedIn(ply int) Value {
	return -Mate + Value(ply)
}

// IsMateScore reports whether v represents a forced mate in either
// direction.
func IsMateScore(v Value) bool {
	return v > MateThreshold || v < -MateThreshold
}

// Bound classifies a transposition-table entry's relationship to the
// true minimax value.
type Bound uint8

const (
	// BoundExact is a PV node's exact score.
	BoundExact Bound = 0
	// BoundLower is a fail-high: the true value is >= the stored score.
	BoundLower Bound = 1
	// BoundUpper is a fail-low: the true value is <= the stored score.
	BoundUpper Bound = 2
)
