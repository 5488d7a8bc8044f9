package movegen

import (
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// pieceTypeAt returns the type of the piece of color c standing on sq, or
// PtEmpty. Scans the six piece boards directly rather than going through
// Position.PieceAt, since generation already knows the color and this
// avoids the two-color scan PieceAt does for FEN reconstruction.
func pieceTypeAt(pos *position.Position, c Color, sq Square) PieceType {
	for pt := Pawn; pt <= King; pt++ {
		if pos.PiecesBb(c, pt).Has(sq) {
			return pt
		}
	}
	return PtEmpty
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func addPromotions(list *MoveList, from, to Square, captured PieceType) {
	for _, promo := range promotionPieces {
		list.Add(NewMove(from, to, Pawn, captured, Promotion, promo))
	}
}

// generatePawnPromotions handles the three promotion subcases: quiet
// promotion, capture-promotion-left, capture-promotion-right. Each
// destination yields four moves, one per promotion piece.
func generatePawnPromotions(pos *position.Position, us Color, list *MoveList) {
	them := us.Flip()
	forward := North
	capDirs := [2]Direction{Northeast, Northwest}
	promoRank := Rank8Bb
	if us == Black {
		forward = South
		capDirs = [2]Direction{Southeast, Southwest}
		promoRank = Rank1Bb
	}

	for pawns := pos.PiecesBb(us, Pawn); pawns != BbZero; {
		from, rest := pawns.PopLsb()
		pawns = rest

		if to := from.To(forward); to.IsValid() && promoRank.Has(to) && !pos.OccupiedAll().Has(to) {
			addPromotions(list, from, to, PtEmpty)
		}
		for _, d := range capDirs {
			to := from.To(d)
			if to.IsValid() && promoRank.Has(to) && pos.OccupiedBb(them).Has(to) {
				addPromotions(list, from, to, pieceTypeAt(pos, them, to))
			}
		}
	}
}

// generatePawnCaptures implements the non-promotion capture-left,
// capture-right, en-passant-left and en-passant-right subcases.
func generatePawnCaptures(pos *position.Position, us Color, list *MoveList) {
	them := us.Flip()
	capDirs := [2]Direction{Northeast, Northwest}
	promoRank := Rank8Bb
	if us == Black {
		capDirs = [2]Direction{Southeast, Southwest}
		promoRank = Rank1Bb
	}

	ep := pos.EnPassantSquare()
	for pawns := pos.PiecesBb(us, Pawn); pawns != BbZero; {
		from, rest := pawns.PopLsb()
		pawns = rest

		for _, d := range capDirs {
			to := from.To(d)
			if !to.IsValid() || promoRank.Has(to) {
				continue
			}
			if pos.OccupiedBb(them).Has(to) {
				list.Add(NewMove(from, to, Pawn, pieceTypeAt(pos, them, to), Normal, PtEmpty))
			} else if ep.IsValid() && to == ep {
				list.Add(NewMove(from, to, Pawn, Pawn, EnPassant, PtEmpty))
			}
		}
	}
}

// generatePawnQuiets implements the single-push and double-push subcases.
func generatePawnQuiets(pos *position.Position, us Color, list *MoveList) {
	forward := North
	startRank := Rank2Bb
	promoRank := Rank8Bb
	if us == Black {
		forward = South
		startRank = Rank7Bb
		promoRank = Rank1Bb
	}

	for pawns := pos.PiecesBb(us, Pawn); pawns != BbZero; {
		from, rest := pawns.PopLsb()
		pawns = rest

		to := from.To(forward)
		if !to.IsValid() || pos.OccupiedAll().Has(to) || promoRank.Has(to) {
			continue
		}
		list.Add(NewMove(from, to, Pawn, PtEmpty, Normal, PtEmpty))

		if !startRank.Has(from) {
			continue
		}
		to2 := to.To(forward)
		if to2.IsValid() && !pos.OccupiedAll().Has(to2) {
			list.Add(NewMove(from, to2, Pawn, PtEmpty, Normal, PtEmpty))
		}
	}
}
