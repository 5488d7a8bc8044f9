package movegen

import (
	"github.com/umbrachess/umbra/internal/history"
	"github.com/umbrachess/umbra/internal/position"
	. "github.com/umbrachess/umbra/internal/types"
)

// StagedGenerator hands moves to the search one at a time, best-first
// within each stage, in the order promotions, captures, quiets,
// castling, losing_captures. Every stage's moves are generated and
// scored once up front; NextMove then does a select-best-and-swap, with
// no further allocation.
type StagedGenerator struct {
	stage Stage

	promotions MoveList
	captures   MoveList
	quiets     MoveList
	castling   MoveList

	promoIdx   int
	capIdx     int
	quietIdx   int
	castleIdx  int
	losingIdx  int
	losingInit bool
}

// NewStagedGenerator builds and scores every stage for pos. killers,
// counters, ply and prevMove feed the quiets-stage ordering. Quiescence
// uses NewCaptureGenerator instead.
func NewStagedGenerator(pos *position.Position, killers *history.Killers, counters *history.CounterMoves, ply int, prevMove Move) *StagedGenerator {
	g := &StagedGenerator{stage: StagePromotions}

	GeneratePromotions(pos, &g.promotions)
	ScorePromotions(&g.promotions)

	GenerateCaptures(pos, &g.captures)
	ScoreCaptures(pos, &g.captures)

	GenerateQuiets(pos, &g.quiets)
	ScoreQuiets(pos, &g.quiets, killers, counters, ply, prevMove)

	GenerateCastling(pos, &g.castling)
	ScoreCastling(&g.castling)

	return g
}

// NewCaptureGenerator builds only the captures stage, for quiescence
// search, which only ever generates captures.
func NewCaptureGenerator(pos *position.Position) *StagedGenerator {
	g := &StagedGenerator{stage: StageCaptures}
	GenerateCaptures(pos, &g.captures)
	ScoreCaptures(pos, &g.captures)
	return g
}

// NextMove returns the next move in staged order and the stage it came
// from (the search needs the stage to pick the right extension/
// reduction rules), or ok=false once every stage is exhausted.
func (g *StagedGenerator) NextMove() (m Move, stage Stage, ok bool) {
	for {
		switch g.stage {
		case StagePromotions:
			if mv, found := g.promotions.SelectMove(g.promoIdx); found {
				g.promoIdx++
				return mv, StagePromotions, true
			}
			g.stage = StageCaptures

		case StageCaptures:
			if mv, found := g.captures.SelectMove(g.capIdx); found && mv.OrderValue() != 0 {
				g.capIdx++
				return mv, StageCaptures, true
			}
			g.stage = StageQuiets

		case StageQuiets:
			if mv, found := g.quiets.SelectMove(g.quietIdx); found {
				g.quietIdx++
				return mv, StageQuiets, true
			}
			g.stage = StageCastling

		case StageCastling:
			if mv, found := g.castling.SelectMove(g.castleIdx); found {
				g.castleIdx++
				return mv, StageCastling, true
			}
			g.stage = StageLosingCaptures
			g.losingIdx = g.capIdx

		case StageLosingCaptures:
			if !g.losingInit {
				ScoreLosingCaptures(&g.captures)
				g.losingInit = true
			}
			if mv, found := g.captures.SelectMove(g.losingIdx); found {
				g.losingIdx++
				return mv, StageLosingCaptures, true
			}
			return MoveNone, StageLosingCaptures, false

		default:
			return MoveNone, g.stage, false
		}
	}
}
