// Package position represents a chess position as a bitboard set plus
// incidental state: side to move, castling rights, en passant target,
// move clocks, Zobrist hash, and incremental evaluation accumulators. A
// Position is a plain value: MakeMove returns a new Position rather than
// mutating its receiver, keeping positions trivially copyable.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/umbrachess/umbra/internal/attacks"
	. "github.com/umbrachess/umbra/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is an immutable-by-convention value type; every exported
// mutator method is defined on a value receiver and returns a new
// Position.
type Position struct {
	piecesBb    [ColorLength][PtLength]Bitboard
	occupiedBb  [ColorLength]Bitboard
	occupiedAll Bitboard

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   uint16
	fullMoveNumber  uint16

	zobristKey Key

	mgScore   [ColorLength]int32
	egScore   [ColorLength]int32
	gamePhase int32
}

// NewPosition parses fen and returns the corresponding Position. Passing
// the empty string returns the standard starting position.
func NewPosition(fen string) (*Position, error) {
	if fen == "" {
		fen = StartFen
	}
	p := &Position{}
	if err := p.setFromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// StartPosition returns the standard starting position.
func StartPosition() Position {
	p, err := NewPosition(StartFen)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return *p
}

// --- accessors ---

func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }
func (p *Position) OccupiedBb(c Color) Bitboard             { return p.occupiedBb[c] }
func (p *Position) OccupiedAll() Bitboard                   { return p.occupiedAll }
func (p *Position) SideToMove() Color                       { return p.sideToMove }
func (p *Position) CastlingRights() CastlingRights           { return p.castlingRights }
func (p *Position) EnPassantSquare() Square                 { return p.enPassantSquare }
func (p *Position) HalfMoveClock() uint16                   { return p.halfMoveClock }
func (p *Position) FullMoveNumber() uint16                  { return p.fullMoveNumber }
func (p *Position) ZobristKey() Key                         { return p.zobristKey }
func (p *Position) GamePhase() int32                        { return p.gamePhase }

// MgScore and EgScore return the incrementally maintained middlegame/
// endgame material+placement accumulators for color c.
func (p *Position) MgScore(c Color) int32 { return p.mgScore[c] }
func (p *Position) EgScore(c Color) int32 { return p.egScore[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.piecesBb[c][King].Lsb()
}

// PieceAt reconstructs the piece occupying sq by scanning the piece
// bitboards. Used only for reconstruction (FEN, move classification),
// never on the hot path — move generation and make-move never call
// this; they always already know which piece they are moving/capturing
// from the stage that found the move.
func (p *Position) PieceAt(sq Square) Piece {
	if !p.occupiedAll.Has(sq) {
		return PieceNone
	}
	for c := White; c <= Black; c++ {
		if !p.occupiedBb[c].Has(sq) {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if p.piecesBb[c][pt].Has(sq) {
				return MakePiece(c, pt)
			}
		}
	}
	return PieceNone
}

// addPiece places a piece on sq, updating occupancy, Zobrist hash and the
// incremental evaluation accumulators. Internal helper shared by FEN
// parsing and make-move.
func (p *Position) addPiece(c Color, pt PieceType, sq Square) {
	bb := sq.Bb()
	p.piecesBb[c][pt] |= bb
	p.occupiedBb[c] |= bb
	p.occupiedAll |= bb
	p.zobristKey ^= pieceSquareKey[c][pt][sq]
	mg, eg := PSTValue(c, pt, sq)
	p.mgScore[c] += int32(mg)
	p.egScore[c] += int32(eg)
	p.gamePhase += int32(pt.PhaseWeight())
}

// removePiece is addPiece's inverse.
func (p *Position) removePiece(c Color, pt PieceType, sq Square) {
	bb := sq.Bb()
	p.piecesBb[c][pt] &^= bb
	p.occupiedBb[c] &^= bb
	p.occupiedAll &^= bb
	p.zobristKey ^= pieceSquareKey[c][pt][sq]
	mg, eg := PSTValue(c, pt, sq)
	p.mgScore[c] -= int32(mg)
	p.egScore[c] -= int32(eg)
	p.gamePhase -= int32(pt.PhaseWeight())
}

// IsAttacked reports whether any piece of color `by` attacks sq — the
// king-safety / castling-legality primitive, specialized to a single
// target square so castling-through-check and legality checks don't
// need a full attack sweep.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.occupiedAll
	if attacks.PawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	rookLike := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	if attacks.GetSliderAttacks(Rook, sq, occ)&rookLike != 0 {
		return true
	}
	bishopLike := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	if attacks.GetSliderAttacks(Bishop, sq, occ)&bishopLike != 0 {
		return true
	}
	return false
}

// Attackers returns the set of all squares attacked by color `side`: the
// union over piece kinds of their attack bitboards. Castling legality,
// the legality check's king safety test and move ordering's defendedness
// check use the single-square IsAttacked instead.
func (p *Position) Attackers(side Color) Bitboard {
	occ := p.occupiedAll
	var bb Bitboard
	for pawns := p.piecesBb[side][Pawn]; pawns != BbZero; {
		sq, rest := pawns.PopLsb()
		pawns = rest
		bb |= attacks.PawnAttacks(side, sq)
	}
	for knights := p.piecesBb[side][Knight]; knights != BbZero; {
		sq, rest := knights.PopLsb()
		knights = rest
		bb |= attacks.KnightAttacks(sq)
	}
	for kings := p.piecesBb[side][King]; kings != BbZero; {
		sq, rest := kings.PopLsb()
		kings = rest
		bb |= attacks.KingAttacks(sq)
	}
	for bishops := p.piecesBb[side][Bishop]; bishops != BbZero; {
		sq, rest := bishops.PopLsb()
		bishops = rest
		bb |= attacks.GetSliderAttacks(Bishop, sq, occ)
	}
	for rooks := p.piecesBb[side][Rook]; rooks != BbZero; {
		sq, rest := rooks.PopLsb()
		rooks = rest
		bb |= attacks.GetSliderAttacks(Rook, sq, occ)
	}
	for queens := p.piecesBb[side][Queen]; queens != BbZero; {
		sq, rest := queens.PopLsb()
		queens = rest
		bb |= attacks.GetSliderAttacks(Queen, sq, occ)
	}
	return bb
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// HasNonPawnMaterial reports whether the given color has any piece other
// than pawns and king — the zugzwang guard for null-move pruning.
func (p *Position) HasNonPawnMaterial(c Color) bool {
	return p.piecesBb[c][Knight]|p.piecesBb[c][Bishop]|p.piecesBb[c][Rook]|p.piecesBb[c][Queen] != BbZero
}

// String renders the position as an 8-rank ASCII board, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb.WriteString(p.PieceAt(NewSquare(f, r)).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("side: %s  castling: %s  ep: %s  halfmove: %d  fullmove: %d\n",
		p.sideToMove, p.castlingRights, p.enPassantSquare, p.halfMoveClock, p.fullMoveNumber))
	return sb.String()
}

// parseUint reads a decimal integer, defaulting to 0 on a malformed
// field — FEN clocks are otherwise guaranteed digits by setFromFEN's caller.
func parseUint(s string) uint16 {
	n, _ := strconv.ParseUint(s, 10, 16)
	return uint16(n)
}
