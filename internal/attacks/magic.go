package attacks

import (
	. "github.com/umbrachess/umbra/internal/types"
)

// Magic holds the magic-bitboard data for one square and one sliding
// piece type.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Shift   uint
	Attacks []Bitboard
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	return uint(occ >> m.Shift)
}

var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	rookTable   [SqLength * 4096]Bitboard
	bishopTable [SqLength * 512]Bitboard
)

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// magicSeed is a process-wide constant seed for the MT19937-64 used by
// magic-number search, so magic numbers — and thus hash-table layouts —
// are reproducible run-to-run.
const magicSeed uint64 = 0x5DEECE66D

// maxMagicCandidates bounds the search; exhausting it without finding a
// collision-free magic is a fatal error.
const maxMagicCandidates = 1 << 24

func init() {
	initMagics(Rook, rookDirs, rookTable[:], &rookMagics)
	initMagics(Bishop, bishopDirs, bishopTable[:], &bishopMagics)
}

// slidingAttack computes, by simple ray-walking, the attack set of a
// slider on sq along the given directions given a blocker occupancy. Used
// only during table construction, never on the hot path.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			attack = attack.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attack
}

// relevantMask returns the slider's blocker-relevant squares from sq: its
// empty-board rays minus the board-edge squares not on sq's own rank/file,
// since a piece on such an edge square can never block a slider further.
func relevantMask(dirs [4]Direction, sq Square) Bitboard {
	full := slidingAttack(dirs, sq, BbZero)
	edges := (Rank1Bb | Rank8Bb) &^ sq.RankBb()
	edges |= (FileABb | FileHBb) &^ sq.FileBb()
	return full &^ edges
}

// initMagics finds a magic number per square via the fail-and-retry
// Carry-Rippler search, populating table (a flat backing array) and
// magics.
func initMagics(pt PieceType, dirs [4]Direction, table []Bitboard, magics *[SqLength]Magic) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int

	rng := NewMT19937_64(magicSeed + uint64(pt))

	bucketSize := 4096
	if pt == Bishop {
		bucketSize = 512
	}

	for sq := Square(0); sq < SqLength; sq++ {
		m := &magics[sq]
		m.Mask = relevantMask(dirs, sq)
		bits := m.Mask.PopCount()
		m.Shift = uint(64 - bits)
		m.Attacks = table[int(sq)*bucketSize : int(sq)*bucketSize+bucketSize]

		// Carry-Rippler: enumerate every subset of the mask.
		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		cnt := 0
		found := false
		for attempt := 0; attempt < maxMagicCandidates; attempt++ {
			candidate := Bitboard(rng.SparseNext64())
			// skip candidates whose product with the mask leaves fewer than
			// 6 of the top 8 bits set.
			if (Bitboard(uint64(candidate)*uint64(m.Mask)) >> 56).PopCount() < 6 {
				continue
			}
			cnt++
			ok := true
			for i := 0; i < size; i++ {
				m.Number = candidate
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					ok = false
					break
				}
			}
			if ok {
				m.Number = candidate
				found = true
				break
			}
		}
		if !found {
			panic("attacks: magic number search exhausted candidates for square " + sq.String())
		}
	}
}

// GetSliderAttacks returns the attack bitboard for a rook, bishop, or
// queen on sq given the full board occupancy, via magic-bitboard lookup.
func GetSliderAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Queen:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)] |
			bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	default:
		return BbZero
	}
}
