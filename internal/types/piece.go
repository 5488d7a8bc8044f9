package types

// PieceType is a piece kind without color, plus the Empty sentinel used in
// move encodings for "no piece captured".
type PieceType int8

const (
	PtEmpty PieceType = 0
	Pawn    PieceType = 1
	Knight  PieceType = 2
	Bishop  PieceType = 3
	Rook    PieceType = 4
	Queen   PieceType = 5
	King    PieceType = 6

	PtLength = 7
)

var pieceTypeLetters = [PtLength]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	return string(pieceTypeLetters[pt])
}

// Value is the classical material value of a piece type, in centipawns.
// Used by move ordering's promotion, MVV/LVA and losing-capture scores;
// game-phase increments come from PhaseWeight instead.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

// PhaseWeight is the game-phase increment contributed by one piece of
// this type: knight=1, bishop=1, rook=2, queen=4, others=0.
func (pt PieceType) PhaseWeight() int {
	switch pt {
	case Knight, Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 4
	default:
		return 0
	}
}

// Piece is a colored piece: (Color, PieceType) packed for use as a FEN
// letter lookup and for the 8x8 piece_at board.
type Piece int8

// PieceNone marks an empty square.
const PieceNone Piece = -1

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*8 + int(pt))
}

// TypeOf returns the PieceType of a Piece.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtEmpty
	}
	return PieceType(int(p) % 8)
}

// ColorOf returns the Color of a Piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(int(p) / 8)
}

var pieceLetters = [2][PtLength]byte{
	{' ', 'P', 'N', 'B', 'R', 'Q', 'K'},
	{' ', 'p', 'n', 'b', 'r', 'q', 'k'},
}

func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	return string(pieceLetters[p.ColorOf()][p.TypeOf()])
}

// PieceFromFENChar maps a FEN board letter to a Piece.
func PieceFromFENChar(c byte) (Piece, bool) {
	for color := 0; color < 2; color++ {
		for pt := Pawn; pt <= King; pt++ {
			if pieceLetters[color][pt] == c {
				return MakePiece(Color(color), pt), true
			}
		}
	}
	return PieceNone, false
}
