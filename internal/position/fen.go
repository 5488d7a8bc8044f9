package position

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/umbrachess/umbra/internal/types"
)

// setFromFEN fills p from a Forsyth-Edwards string: board, side to move,
// castling rights, en passant target, halfmove clock, fullmove number.
func (p *Position) setFromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return errors.New("position: FEN needs at least board, side, castling, ep fields")
	}

	*p = Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return errors.New("position: FEN board must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := PieceFromFENChar(byte(ch))
			if !ok {
				return errors.New("position: invalid FEN piece character '" + string(ch) + "'")
			}
			if file > 7 {
				return errors.New("position: FEN rank overflows 8 files")
			}
			p.addPiece(pc.ColorOf(), pc.TypeOf(), NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return errors.New("position: FEN rank does not sum to 8 files")
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return errors.New("position: FEN side-to-move must be 'w' or 'b'")
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= WhiteKingSide
			case 'Q':
				p.castlingRights |= WhiteQueenSide
			case 'k':
				p.castlingRights |= BlackKingSide
			case 'q':
				p.castlingRights |= BlackQueenSide
			default:
				return errors.New("position: invalid FEN castling character")
			}
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return err
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	p.fullMoveNumber = 1
	if len(fields) >= 5 {
		p.halfMoveClock = parseUint(fields[4])
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			p.fullMoveNumber = uint16(n)
		}
	}

	p.zobristKey = p.computeZobrist()
	return nil
}

// FEN serializes the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.PieceAt(NewSquare(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castlingRights == CastlingNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.castlingRights.String())
	}

	sb.WriteByte(' ')
	if p.enPassantSquare.IsValid() {
		sb.WriteString(p.enPassantSquare.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.halfMoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.fullMoveNumber)))

	return sb.String()
}
