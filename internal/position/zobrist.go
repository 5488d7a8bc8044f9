package position

import (
	"github.com/umbrachess/umbra/internal/attacks"
	. "github.com/umbrachess/umbra/internal/types"
)

// zobristSeed is a constant distinct from the magic-search seed so that
// the two consumers of MT19937-64 (attacks and position) draw from
// independent streams while both remain perfectly reproducible.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

var (
	pieceSquareKey [ColorLength][PtLength][SqLength]Key
	castlingKey    [4]Key // one per CastlingRights bit
	epFileKey      [8]Key
	sideKey        Key
)

func init() {
	rng := attacks.NewMT19937_64(zobristSeed)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < SqLength; sq++ {
				pieceSquareKey[c][pt][sq] = Key(rng.Next64())
			}
		}
	}
	for i := range castlingKey {
		castlingKey[i] = Key(rng.Next64())
	}
	for i := range epFileKey {
		epFileKey[i] = Key(rng.Next64())
	}
	sideKey = Key(rng.Next64())
}

// castlingKeyFor XORs together the key for every right currently set in cr.
func castlingKeyFor(cr CastlingRights) Key {
	var k Key
	if cr.Has(WhiteKingSide) {
		k ^= castlingKey[0]
	}
	if cr.Has(WhiteQueenSide) {
		k ^= castlingKey[1]
	}
	if cr.Has(BlackKingSide) {
		k ^= castlingKey[2]
	}
	if cr.Has(BlackQueenSide) {
		k ^= castlingKey[3]
	}
	return k
}

// computeZobrist recomputes the hash from scratch; used by FEN parsing
// and by the debug-build invariant check. Make-move maintains the hash
// incrementally instead.
func (p *Position) computeZobrist() Key {
	var k Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for bb := p.piecesBb[c][pt]; bb != BbZero; {
				sq, rest := bb.PopLsb()
				bb = rest
				k ^= pieceSquareKey[c][pt][sq]
			}
		}
	}
	k ^= castlingKeyFor(p.castlingRights)
	if p.enPassantSquare.IsValid() {
		k ^= epFileKey[p.enPassantSquare.FileOf()]
	}
	if p.sideToMove == Black {
		k ^= sideKey
	}
	return k
}
