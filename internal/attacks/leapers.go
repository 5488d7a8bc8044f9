package attacks

import (
	. "github.com/umbrachess/umbra/internal/types"
)

var (
	kingAttacks   [SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
)

var kingDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// knight offsets expressed as two chained Direction hops so file-wrap
// rejection (Square.To) composes correctly for the {±6,±10,±15,±17} jump
// set.
var knightHops = [8][2]Direction{
	{North, Northeast}, {North, Northwest},
	{South, Southeast}, {South, Southwest},
	{East, Northeast}, {East, Southeast},
	{West, Northwest}, {West, Southwest},
}

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		var king, knight Bitboard
		for _, d := range kingDirections {
			if to := sq.To(d); to.IsValid() {
				king = king.PushSquare(to)
			}
		}
		kingAttacks[sq] = king

		for _, hop := range knightHops {
			mid := sq.To(hop[0])
			if !mid.IsValid() {
				continue
			}
			if to := mid.To(hop[1]); to.IsValid() {
				knight = knight.PushSquare(to)
			}
		}
		knightAttacks[sq] = knight

		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].PushSquare(to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].PushSquare(to)
		}
	}
}

// KingAttacks returns the king's pseudo-attack bitboard from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// KnightAttacks returns the knight's pseudo-attack bitboard from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }
