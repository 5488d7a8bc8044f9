package position

import (
	"github.com/umbrachess/umbra/internal/assert"
	. "github.com/umbrachess/umbra/internal/types"
)

// corner squares whose occupant losing it (by moving from it, or by
// being captured on it) clears the matching castling right. Tested by
// square identity, not by file, so a rook captured in place never
// clears the right of a friendly rook still standing on the same file's
// other corner (see DESIGN.md).
const (
	a1 = Square(0)
	h1 = Square(7)
	a8 = Square(56)
	h8 = Square(63)
)

// rightForCornerSquare returns the castling right a rook standing on sq
// guards, or CastlingNone if sq is not a castling corner.
func rightForCornerSquare(sq Square) CastlingRights {
	switch sq {
	case a1:
		return WhiteQueenSide
	case h1:
		return WhiteKingSide
	case a8:
		return BlackQueenSide
	case h8:
		return BlackKingSide
	default:
		return CastlingNone
	}
}

// MakeMove returns the Position resulting from playing m in p. p itself
// is left untouched (value receiver). m is trusted to be pseudo-legal
// for p; legality (does it leave the mover's own king in check) is the
// caller's concern.
func (p Position) MakeMove(m Move) Position {
	np := p

	us := np.sideToMove
	them := us.Flip()
	from := m.From()
	to := m.To()
	moved := m.MovedPiece()

	// clear the old ep/castling contribution to the hash; freshly
	// recomputed ones are folded back in at the end.
	np.zobristKey ^= castlingKeyFor(np.castlingRights)
	if np.enPassantSquare.IsValid() {
		np.zobristKey ^= epFileKey[np.enPassantSquare.FileOf()]
	}

	resetClock := moved == Pawn

	switch m.Type() {
	case EnPassant:
		capSq := to.To(South)
		if us == Black {
			capSq = to.To(North)
		}
		np.removePiece(them, Pawn, capSq)
		np.removePiece(us, Pawn, from)
		np.addPiece(us, Pawn, to)
		resetClock = true

	case Promotion:
		if captured := m.CapturedPiece(); captured != PtEmpty {
			np.removePiece(them, captured, to)
			np.castlingRights = np.castlingRights.Without(rightForCornerSquare(to))
			resetClock = true
		}
		np.removePiece(us, Pawn, from)
		np.addPiece(us, m.PromotionPiece(), to)
		resetClock = true

	case CastleKingSide, CastleQueenSide:
		np.removePiece(us, King, from)
		np.addPiece(us, King, to)
		rookFrom, rookTo := castlingRookSquares(us, m.Type())
		np.removePiece(us, Rook, rookFrom)
		np.addPiece(us, Rook, rookTo)
		np.castlingRights = np.castlingRights.Without(KingSideRight(us)).Without(QueenSideRight(us))

	default: // Normal
		if captured := m.CapturedPiece(); captured != PtEmpty {
			np.removePiece(them, captured, to)
			np.castlingRights = np.castlingRights.Without(rightForCornerSquare(to))
			resetClock = true
		}
		np.removePiece(us, moved, from)
		np.addPiece(us, moved, to)
	}

	if moved == King {
		np.castlingRights = np.castlingRights.Without(KingSideRight(us)).Without(QueenSideRight(us))
	}
	np.castlingRights = np.castlingRights.Without(rightForCornerSquare(from))

	np.enPassantSquare = SqNone
	if moved == Pawn {
		delta := int(to) - int(from)
		if delta == 16 || delta == -16 {
			np.enPassantSquare = from.To(North)
			if us == Black {
				np.enPassantSquare = from.To(South)
			}
		}
	}

	if resetClock {
		np.halfMoveClock = 0
	} else {
		np.halfMoveClock++
	}
	if us == Black {
		np.fullMoveNumber++
	}

	np.zobristKey ^= castlingKeyFor(np.castlingRights)
	if np.enPassantSquare.IsValid() {
		np.zobristKey ^= epFileKey[np.enPassantSquare.FileOf()]
	}
	np.zobristKey ^= sideKey
	np.sideToMove = them

	if assert.DEBUG {
		np.checkInvariants(m)
	}

	return np
}

// castlingRookSquares returns the rook's from/to squares for a castle of
// the given type and color.
func castlingRookSquares(c Color, mt MoveType) (from, to Square) {
	if c == White {
		if mt == CastleKingSide {
			return h1, Square(5) // f1
		}
		return a1, Square(3) // d1
	}
	if mt == CastleKingSide {
		return h8, Square(61) // f8
	}
	return a8, Square(59) // d8
}

// NullMove returns the position with the side to move flipped and the en
// passant square cleared, with no piece moved — used by null-move
// pruning. Clocks are left untouched; a null move is never part of the
// real game record.
func (p Position) NullMove() Position {
	np := p
	if np.enPassantSquare.IsValid() {
		np.zobristKey ^= epFileKey[np.enPassantSquare.FileOf()]
		np.enPassantSquare = SqNone
	}
	np.zobristKey ^= sideKey
	np.sideToMove = np.sideToMove.Flip()
	return np
}
