package types

// MoveType classifies a move beyond its from/to squares: whether it is an
// en passant capture, a promotion, or a castle.
type MoveType uint8

const (
	Normal MoveType = iota
	EnPassant
	Promotion
	CastleKingSide
	CastleQueenSide
)

// Move packs a move into a single integer, low to high:
//
//	bits  0- 5  from square       (6 bits)
//	bits  6-11  to square         (6 bits)
//	bits 12-15  moved piece type  (4 bits)
//	bits 16-19  captured piece type (4 bits, PtEmpty if none)
//	bits 20-23  move type         (4 bits)
//	bits 24-27  promotion piece type (4 bits, only meaningful for promotions)
//	bits 28-43  ordering value    (16 bits, transient, never persisted to the TT)
//
// The low 28 bits are a move's identity: two moves are equal iff those
// bits match, regardless of ordering value.
type Move uint64

// MoveNone is the zero move, meaning "no move". PV extraction must treat
// it as a terminator and never attempt to play it.
const MoveNone Move = 0

const (
	moveIdentityMask Move = 0x0FFFFFFF

	fromShift  = 0
	toShift    = 6
	pieceShift = 12
	captShift  = 16
	typeShift  = 20
	promShift  = 24
	orderShift = 28

	sixBitMask = 0x3F
	fourBitMask = 0xF
	orderMask   = 0xFFFF
)

// NewMove builds a Move from its fields. orderValue is usually assigned
// later by move ordering and may be zero here.
func NewMove(from, to Square, moved, captured PieceType, mt MoveType, promo PieceType) Move {
	return Move(uint64(from)&sixBitMask<<fromShift |
		uint64(to)&sixBitMask<<toShift |
		uint64(moved)&fourBitMask<<pieceShift |
		uint64(captured)&fourBitMask<<captShift |
		uint64(mt)&fourBitMask<<typeShift |
		uint64(promo)&fourBitMask<<promShift)
}

// From returns the move's origin square.
func (m Move) From() Square { return Square((m >> fromShift) & sixBitMask) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((m >> toShift) & sixBitMask) }

// MovedPiece returns the type of the piece being moved.
func (m Move) MovedPiece() PieceType { return PieceType((m >> pieceShift) & fourBitMask) }

// CapturedPiece returns the type of the captured piece, or PtEmpty.
func (m Move) CapturedPiece() PieceType { return PieceType((m >> captShift) & fourBitMask) }

// IsCapture reports whether the move captures a piece (en passant
// included, since its CapturedPiece is set to Pawn).
func (m Move) IsCapture() bool { return m.CapturedPiece() != PtEmpty }

// Type returns the move's MoveType.
func (m Move) Type() MoveType { return MoveType((m >> typeShift) & fourBitMask) }

// PromotionPiece returns the promotion piece type; only meaningful when
// Type() == Promotion.
func (m Move) PromotionPiece() PieceType { return PieceType((m >> promShift) & fourBitMask) }

// OrderValue returns the transient 16-bit ordering score written by move
// ordering.
func (m Move) OrderValue() uint16 { return uint16((m >> orderShift) & orderMask) }

// WithOrderValue returns a copy of m with its ordering value replaced.
// The identity (low 28 bits) is untouched.
func (m Move) WithOrderValue(v uint16) Move {
	return (m &^ (Move(orderMask) << orderShift)) | (Move(v) << orderShift)
}

// Identity returns the low 28 bits used for move equality, ignoring the
// ordering value.
func (m Move) Identity() Move { return m & moveIdentityMask }

// Equals compares two moves by identity only.
func (m Move) Equals(o Move) bool { return m.Identity() == o.Identity() }

// String renders the move in UCI coordinate notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += m.PromotionPiece().String()
	}
	return s
}
