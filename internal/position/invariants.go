package position

import (
	"github.com/umbrachess/umbra/internal/assert"
	. "github.com/umbrachess/umbra/internal/types"
)

// checkInvariants re-derives every incrementally maintained field from
// the piece bitboards and panics (debug builds only) on divergence. m is
// the move that produced p, folded into the panic message for context.
// Never called in release builds: assert.DEBUG guards the call site so
// this never runs on the hot path.
func (p *Position) checkInvariants(m Move) {
	assert.Assert(p.computeZobrist() == p.zobristKey, "zobrist key %d diverged from recomputed %d after %v", p.zobristKey, p.computeZobrist(), m)

	union := p.occupiedBb[White] | p.occupiedBb[Black]
	assert.Assert(union == p.occupiedAll, "occupiedAll %v does not match union of per-color occupancy %v after %v", p.occupiedAll, union, m)
	assert.Assert(p.occupiedBb[White]&p.occupiedBb[Black] == BbZero, "white and black occupancy overlap after %v", m)

	var wantMg, wantEg [ColorLength]int32
	var wantPhase int32
	for c := White; c <= Black; c++ {
		var fromPieces Bitboard
		for pt := Pawn; pt <= King; pt++ {
			for bb := p.piecesBb[c][pt]; bb != BbZero; {
				sq, rest := bb.PopLsb()
				bb = rest
				fromPieces |= sq.Bb()
				mg, eg := PSTValue(c, pt, sq)
				wantMg[c] += int32(mg)
				wantEg[c] += int32(eg)
				wantPhase += int32(pt.PhaseWeight())
			}
		}
		assert.Assert(fromPieces == p.occupiedBb[c], "occupiedBb[%v] %v does not match union of piece boards %v after %v", c, p.occupiedBb[c], fromPieces, m)
	}
	assert.Assert(wantMg[White] == p.mgScore[White] && wantMg[Black] == p.mgScore[Black],
		"mgScore %v diverged from recomputed %v after %v", p.mgScore, wantMg, m)
	assert.Assert(wantEg[White] == p.egScore[White] && wantEg[Black] == p.egScore[Black],
		"egScore %v diverged from recomputed %v after %v", p.egScore, wantEg, m)
	assert.Assert(wantPhase == p.gamePhase, "gamePhase %d diverged from recomputed %d after %v", p.gamePhase, wantPhase, m)
}
