// Package search implements iterative-deepening negamax with alpha-beta pruning over a
// Position, plus the transposition table and move-ordering heuristics that support it.
package search

import (
	"context"
	"time"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Result is the outcome of a single find_best_move call. Moves holds the principal
// variation rooted at Best, reconstructed from the transposition table after the search
// completes; it may be shorter than Depth if the table evicted an interior node.
type Result struct {
	Best    lang.Optional[board.Move]
	Moves   []board.Move
	Score   eval.Score
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// Search runs iterative-deepening negamax over a fixed evaluator and Zobrist table,
// storing results in a single owned transposition table. Not safe for concurrent use.
type Search struct {
	zt   *board.ZobristTable
	eval eval.Evaluator
	tt   *TranspositionTable
}

// NewSearch constructs a Search over the given Zobrist table, evaluator and
// transposition table. tt may be shared across successive searches of the same game.
func NewSearch(zt *board.ZobristTable, ev eval.Evaluator, tt *TranspositionTable) *Search {
	return &Search{zt: zt, eval: ev, tt: tt}
}

// FindBestMove searches pos by iterative deepening from depth 1 up to maxDepth, stopping
// early on an elapsed deadline, a cancelled context, or once a forced mate is found. A
// partial iteration that runs past the deadline is discarded; the previous completed
// iteration's result stands.
func (s *Search) FindBestMove(ctx context.Context, pos *board.Position, maxDepth int, maxTime time.Duration) Result {
	start := time.Now()
	deadline := start.Add(maxTime)

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result{Score: s.terminalScore(pos), Elapsed: time.Since(start)}
	}

	var (
		best         lang.Optional[board.Move]
		bestScore    eval.Score
		depthReached int
		nodes        int
	)

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Now().After(deadline) || contextx.IsCancelled(ctx) {
			break
		}

		m, score, nodesThisIter, ok := s.searchRoot(ctx, pos, moves, depth, deadline)
		if !ok {
			logw.Debugf(ctx, "discarding partial iteration at depth=%v for %v", depth, pos)
			break
		}

		nodes += nodesThisIter
		best, bestScore, depthReached = lang.Some(m), score, depth

		logw.Debugf(ctx, "searched depth=%v score=%v best=%v nodes=%v", depth, score, m, nodes)

		if score.IsMateScore() {
			break
		}
	}

	var pv []board.Move
	if m, ok := best.V(); ok {
		pv = s.extractPV(pos, m, depthReached)
	}

	return Result{Best: best, Moves: pv, Score: bestScore, Depth: depthReached, Nodes: nodes, Elapsed: time.Since(start)}
}

// extractPV walks the transposition table from pos, applying first and then each node's
// stored best move in turn, to recover the principal variation of the last completed
// iteration. Stops early if the table has no entry for a reached position (evicted or
// never stored), so the result may be shorter than depth.
func (s *Search) extractPV(pos *board.Position, first board.Move, depth int) []board.Move {
	line := make([]board.Move, 0, depth)

	cur, err := pos.Move(first)
	if err != nil {
		return line
	}
	line = append(line, first)

	for i := 1; i < depth; i++ {
		e, ok := s.tt.Probe(s.zt.Hash(&cur), 0)
		if !ok || e.Best.From == e.Best.To {
			break
		}
		next, err := cur.Move(e.Best)
		if err != nil {
			break
		}
		line = append(line, e.Best)
		cur = next
	}
	return line
}

// terminalScore returns the leaf score for a position with no legal moves: mate if the
// side to move is in check, otherwise stalemate.
func (s *Search) terminalScore(pos *board.Position) eval.Score {
	if pos.IsChecked(pos.SideToMove()) {
		return -eval.Mate
	}
	return eval.ZeroScore
}

// searchRoot performs one full-width root iteration at the given depth, returning the
// best move and score, the node count consumed, and whether the iteration completed
// before the deadline.
func (s *Search) searchRoot(ctx context.Context, pos *board.Position, moves []board.Move, depth int, deadline time.Time) (board.Move, eval.Score, int, bool) {
	hash := s.zt.Hash(pos)

	var hint board.Move
	if e, ok := s.tt.Probe(hash, 0); ok {
		hint = e.Best
	}
	ml := NewMoveList(moves, preferring(hint))

	nodes := 0
	alpha, beta := eval.MinScore, eval.MaxScore
	var bestMove board.Move
	bestScore := eval.MinScore
	haveBest := false

	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		if time.Now().After(deadline) || contextx.IsCancelled(ctx) {
			return board.Move{}, 0, nodes, false
		}

		child, _ := pos.Move(m)
		score := eval.IncrementMateDistance(-s.negamax(ctx, &child, depth-1, -beta, -alpha, deadline, &nodes))

		if !haveBest || score > bestScore {
			bestScore, bestMove, haveBest = score, m, true
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	if time.Now().After(deadline) || contextx.IsCancelled(ctx) {
		return board.Move{}, 0, nodes, false
	}

	s.tt.Store(hash, Entry{Depth: depth, Score: bestScore, Bound: ExactBound, Best: bestMove})
	return bestMove, bestScore, nodes, true
}

// negamax is the recursive negamax-with-alpha-beta search. It returns the score of pos
// from the side-to-move's perspective.
func (s *Search) negamax(ctx context.Context, pos *board.Position, depth int, alpha, beta eval.Score, deadline time.Time, nodes *int) eval.Score {
	*nodes++
	hash := s.zt.Hash(pos)

	if e, ok := s.tt.Probe(hash, depth); ok {
		switch e.Bound {
		case ExactBound:
			return e.Score
		case LowerBound:
			if e.Score > alpha {
				alpha = e.Score
			}
		case UpperBound:
			if e.Score < beta {
				beta = e.Score
			}
		}
		if alpha >= beta {
			return e.Score
		}
	}

	if time.Now().After(deadline) || contextx.IsCancelled(ctx) {
		return 0
	}

	if depth == 0 {
		return s.eval.Evaluate(pos)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsChecked(pos.SideToMove()) {
			return -eval.Mate
		}
		return eval.ZeroScore
	}

	var hint board.Move
	if e, ok := s.tt.Probe(hash, 0); ok {
		hint = e.Best
	}
	ml := NewMoveList(moves, preferring(hint))

	origAlpha := alpha
	bestScore := eval.MinScore
	var bestMove board.Move

	for {
		m, ok := ml.Next()
		if !ok {
			break
		}

		child, _ := pos.Move(m)
		score := eval.IncrementMateDistance(-s.negamax(ctx, &child, depth-1, -beta, -alpha, deadline, nodes))

		if score > bestScore {
			bestScore, bestMove = score, m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			s.tt.Store(hash, Entry{Depth: depth, Score: bestScore, Bound: LowerBound, Best: bestMove})
			return bestScore
		}
	}

	bound := UpperBound
	if bestScore > origAlpha {
		bound = ExactBound
	}
	s.tt.Store(hash, Entry{Depth: depth, Score: bestScore, Bound: bound, Best: bestMove})
	return bestScore
}
