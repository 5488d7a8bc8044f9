package movegen

import (
	"github.com/umbrachess/umbra/internal/attacks"
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// pieceAttacks returns pt's attack bitboard from sq given the board's
// total occupancy, dispatching leapers to the precomputed tables and
// sliders to the magic lookup.
func pieceAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return attacks.KnightAttacks(sq)
	case King:
		return attacks.KingAttacks(sq)
	default:
		return attacks.GetSliderAttacks(pt, sq, occupied)
	}
}

// generatePieceCaptures emits non-pawn, non-castling captures for every
// piece kind in {knight, bishop, rook, queen, king}.
func generatePieceCaptures(pos *position.Position, us Color, list *MoveList) {
	them := us.Flip()
	occ := pos.OccupiedAll()
	enemy := pos.OccupiedBb(them)

	for pt := Knight; pt <= King; pt++ {
		for pieces := pos.PiecesBb(us, pt); pieces != BbZero; {
			from, rest := pieces.PopLsb()
			pieces = rest
			targets := pieceAttacks(pt, from, occ) & enemy
			for targets != BbZero {
				to, r := targets.PopLsb()
				targets = r
				list.Add(NewMove(from, to, pt, pieceTypeAt(pos, them, to), Normal, PtEmpty))
			}
		}
	}
}

// generatePieceQuiets emits non-capture moves for every piece kind in
// {knight, bishop, rook, queen, king}.
func generatePieceQuiets(pos *position.Position, us Color, list *MoveList) {
	occ := pos.OccupiedAll()
	empty := ^occ

	for pt := Knight; pt <= King; pt++ {
		for pieces := pos.PiecesBb(us, pt); pieces != BbZero; {
			from, rest := pieces.PopLsb()
			pieces = rest
			targets := pieceAttacks(pt, from, occ) & empty
			for targets != BbZero {
				to, r := targets.PopLsb()
				targets = r
				list.Add(NewMove(from, to, pt, PtEmpty, Normal, PtEmpty))
			}
		}
	}
}
