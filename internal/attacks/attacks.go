package attacks

import (
	. "github.com/umbrachess/umbra/internal/types"
)

// Attacks returns the attack bitboard of a piece of type pt standing on
// sq given the board's total occupancy. Pawn attacks need a color and are
// served by PawnAttacks instead, since a pawn's attack set is asymmetric.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Rook, Bishop, Queen:
		return GetSliderAttacks(pt, sq, occupied)
	default:
		return BbZero
	}
}
