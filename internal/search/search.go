// Package search implements iterative-deepening negamax alpha-beta with
// quiescence, null-move pruning, late-move reduction, futility pruning,
// and check extension, over the staged move generator and the
// transposition table. The search is single-threaded and cooperative:
// the only suspension points are the deadline checks at the top of
// every recursive call.
package search

import (
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/umbrachess/umbra/internal/config"
	"github.com/umbrachess/umbra/internal/evaluator"
	"github.com/umbrachess/umbra/internal/history"
	"github.com/umbrachess/umbra/internal/movegen"
	"github.com/umbrachess/umbra/internal/position"
	"github.com/umbrachess/umbra/internal/transpositiontable"
	. "github.com/umbrachess/umbra/internal/types"
	"github.com/umbrachess/umbra/internal/util"
)

// DeltaPruningMargin is quiescence's stand-pat delta-pruning margin. It
// matches a queen's value but is not otherwise tuned.
const DeltaPruningMargin Value = 900

// nullMoveReduction is the depth reduction null-move pruning searches at.
const nullMoveReduction = 3

// lmrMoveThreshold is how many moves at a node are searched at full
// depth before late-move reduction kicks in.
const lmrMoveThreshold = 4

// futilityMargin is added to the static eval at depth 2 to decide
// whether a move is futile.
const futilityMargin = 50

// Limits bounds one search call.
type Limits struct {
	Deadline time.Time
	MaxDepth int
}

// Result is what a completed (or time-curtailed) search hands back to
// the UCI front-end.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	PV       []Move
	Nodes    uint64
}

// InfoFunc is called after every completed iterative-deepening depth so
// the front-end can emit a UCI "info" line. May be nil.
type InfoFunc func(Result)

// Searcher owns one in-flight search's mutable state: its killer and
// counter-move tables, its node counter, and a stop flag another
// goroutine can set through Stop while the search itself stays
// single-threaded. running guards against a second Run call overlapping
// an in-flight one; it is a reentrancy lock, not a cooperative-cancel
// signal, which is what stop is for.
type Searcher struct {
	tt       *transpositiontable.Table
	killers  *history.Killers
	counters *history.CounterMoves
	stop     *util.AtomicBool
	running  *semaphore.Weighted

	nodes     uint64
	deadline  time.Time
	startTime time.Time
}

// NewSearcher builds a Searcher backed by tt, which is a process-wide
// resource shared across searches.
func NewSearcher(tt *transpositiontable.Table) *Searcher {
	return &Searcher{tt: tt, stop: util.NewAtomicBool(false), running: semaphore.NewWeighted(1)}
}

// Stop requests the in-flight search abandon its current depth and
// return the previous depth's result as soon as it next polls.
func (s *Searcher) Stop() { s.stop.Store(true) }

func isOutOfTime(v Value) bool { return v == OutOfTime || v == -OutOfTime }

func (s *Searcher) timeUp() bool {
	return s.stop.Load() || !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// Run performs iterative deepening from pos up to limits.MaxDepth or
// limits.Deadline, whichever comes first, calling info after every
// completed depth. A Run already in flight on s causes a concurrent
// call to return an empty Result immediately rather than interleave
// with it.
func (s *Searcher) Run(pos position.Position, limits Limits, info InfoFunc) Result {
	if !s.running.TryAcquire(1) {
		return Result{}
	}
	defer s.running.Release(1)

	s.stop.Store(false)
	s.killers = history.NewKillers()
	s.counters = history.NewCounterMoves()
	s.nodes = 0
	s.deadline = limits.Deadline
	s.startTime = time.Now()

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.Settings.Search.MaxDepth
		if maxDepth <= 0 {
			maxDepth = 64
		}
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		score := s.alphaBeta(true, &pos, -Infinite, Infinite, depth, 0, MoveNone)
		if isOutOfTime(score) {
			break
		}
		pv := s.extractPV(pos, depth)
		if len(pv) == 0 {
			break
		}
		best = Result{BestMove: pv[0], Score: score, Depth: depth, PV: pv, Nodes: s.nodes}
		if info != nil {
			info(best)
		}
		if IsMateScore(score) {
			break
		}
	}
	return best
}

// extractPV walks the transposition table from pos along best moves,
// stopping at a missing entry, an entry whose bound is not exact, a
// MoveNone terminator, an illegal move
// (a stale entry from before a hash collision overwrote it), or the
// completed depth's cap.
func (s *Searcher) extractPV(pos position.Position, maxLen int) []Move {
	pv := make([]Move, 0, maxLen)
	cur := pos
	for i := 0; i < maxLen; i++ {
		_, move, bound, _, ok := s.tt.Probe(cur.ZobristKey())
		if !ok || move == MoveNone || bound != BoundExact {
			break
		}
		next, legal := movegen.MakeIfLegal(&cur, move)
		if !legal {
			break
		}
		pv = append(pv, move)
		cur = next
	}
	return pv
}

// alphaBeta is the negamax alpha-beta core.
func (s *Searcher) alphaBeta(isPV bool, pos *position.Position, alpha, beta Value, depth, ply int, prevMove Move) Value {
	if s.timeUp() {
		return OutOfTime
	}
	s.nodes++

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	inCheck := pos.InCheck()
	us := pos.SideToMove()

	zugzwang := inCheck || !pos.HasNonPawnMaterial(us)
	if config.Settings.Search.UseNullMove && !isPV && !zugzwang {
		null := pos.NullMove()
		reduced := depth - nullMoveReduction
		if reduced < 0 {
			reduced = 0
		}
		score := -s.alphaBeta(false, &null, -beta, -beta+1, reduced, ply+1, MoveNone)
		if isOutOfTime(score) {
			return OutOfTime
		}
		if score >= beta {
			s.tt.Store(pos.ZobristKey(), transpositiontable.ScoreToTT(beta, ply), MoveNone, BoundLower, depth)
			return beta
		}
	}

	if score, move, bound, storedDepth, ok := s.tt.Probe(pos.ZobristKey()); ok && storedDepth >= depth {
		adj := transpositiontable.ScoreFromTT(score, ply)
		switch bound {
		case BoundExact:
			return adj
		case BoundLower:
			if adj > alpha {
				alpha = adj
			}
		case BoundUpper:
			if adj < beta {
				beta = adj
			}
		}
		if alpha >= beta {
			return adj
		}
		_ = move
	}

	origAlpha := alpha
	bestScore := -Infinite
	bestMove := MoveNone
	legalMoves := 0
	moveIndex := 0

	staticEval := Value(evaluator.Evaluate(pos))

	gen := movegen.NewStagedGenerator(pos, s.killers, s.counters, ply, prevMove)
	for {
		m, stage, ok := gen.NextMove()
		if !ok {
			break
		}
		next, legal := movegen.MakeIfLegal(pos, m)
		if !legal {
			continue
		}
		legalMoves++
		moveIndex++

		extension := 0
		if movegen.GivesCheck(&next) && !next.IsAttacked(m.To(), next.SideToMove()) {
			extension = 1
		}

		newDepth := depth - 1 + extension

		if config.Settings.Search.UseFutility && extension == 0 && depth == 2 && !inCheck && staticEval+futilityMargin < alpha {
			newDepth--
		}

		var score Value
		if config.Settings.Search.UseLMR && extension == 0 && !inCheck && depth >= 2 && moveIndex > lmrMoveThreshold &&
			(stage == movegen.StageQuiets || stage == movegen.StageLosingCaptures) {
			r := lmrReduction(depth, moveIndex)
			if isPV {
				r /= 2
			}
			reducedDepth := newDepth - r
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			score = -s.alphaBeta(false, &next, -(alpha + 1), -alpha, reducedDepth, ply+1, m)
			if isOutOfTime(score) {
				return OutOfTime
			}
			if score > alpha {
				score = -s.alphaBeta(isPV, &next, -beta, -alpha, newDepth, ply+1, m)
			}
		} else {
			score = -s.alphaBeta(isPV, &next, -beta, -alpha, newDepth, ply+1, m)
		}
		if isOutOfTime(score) {
			return OutOfTime
		}

		if score >= beta {
			s.tt.Store(pos.ZobristKey(), transpositiontable.ScoreToTT(beta, ply), m, BoundLower, depth)
			if stage == movegen.StageQuiets {
				s.killers.Update(ply, m)
				if prevMove != MoveNone {
					s.counters.Update(prevMove.From(), prevMove.To(), m)
				}
			}
			return beta
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return ValueZero
	}

	if alpha > origAlpha {
		s.tt.Store(pos.ZobristKey(), transpositiontable.ScoreToTT(bestScore, ply), bestMove, BoundExact, depth)
	} else {
		s.tt.Store(pos.ZobristKey(), transpositiontable.ScoreToTT(bestScore, ply), MoveNone, BoundUpper, depth)
	}

	return bestScore
}

// quiescence extends the search with captures only, to avoid the
// horizon effect.
func (s *Searcher) quiescence(pos *position.Position, alpha, beta Value, ply int) Value {
	if s.timeUp() {
		return OutOfTime
	}
	s.nodes++

	standPat := Value(evaluator.Evaluate(pos))
	if standPat >= beta {
		return beta
	}
	if standPat < alpha-DeltaPruningMargin {
		return alpha
	}
	if standPat > alpha {
		alpha = standPat
	}

	gen := movegen.NewCaptureGenerator(pos)
	for {
		m, _, ok := gen.NextMove()
		if !ok {
			break
		}
		next, legal := movegen.MakeIfLegal(pos, m)
		if !legal {
			continue
		}
		score := -s.quiescence(&next, -beta, -alpha, ply+1)
		if isOutOfTime(score) {
			return OutOfTime
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// lmrReduction computes the late-move reduction:
// floor(sqrt(depth-1)) + floor(sqrt(move_index-1)).
func lmrReduction(depth, moveIndex int) int {
	return isqrt(depth-1) + isqrt(moveIndex-1)
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
