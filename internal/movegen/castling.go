package movegen

import (
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// generateCastling emits a castle move for each right that is set, whose
// travel squares are empty, and whose king-path squares are not attacked.
// Chess960 is out of scope, so the king and rook starting squares are the
// standard e1/a1/h1/e8/a8/h8.
func generateCastling(pos *position.Position, us Color, list *MoveList) {
	them := us.Flip()

	kingFrom := Square(4)
	rights := pos.CastlingRights()
	kingSide, queenSide := WhiteKingSide, WhiteQueenSide
	if us == Black {
		kingFrom = Square(60)
		kingSide, queenSide = BlackKingSide, BlackQueenSide
	}

	if rights.Has(kingSide) {
		f := kingFrom.To(East)
		g := f.To(East)
		if !pos.OccupiedAll().Has(f) && !pos.OccupiedAll().Has(g) &&
			!pos.IsAttacked(kingFrom, them) && !pos.IsAttacked(f, them) && !pos.IsAttacked(g, them) {
			list.Add(NewMove(kingFrom, g, King, PtEmpty, CastleKingSide, PtEmpty))
		}
	}
	if rights.Has(queenSide) {
		d := kingFrom.To(West)
		c := d.To(West)
		b := c.To(West)
		if !pos.OccupiedAll().Has(d) && !pos.OccupiedAll().Has(c) && !pos.OccupiedAll().Has(b) &&
			!pos.IsAttacked(kingFrom, them) && !pos.IsAttacked(d, them) && !pos.IsAttacked(c, them) {
			list.Add(NewMove(kingFrom, c, King, PtEmpty, CastleQueenSide, PtEmpty))
		}
	}
}
