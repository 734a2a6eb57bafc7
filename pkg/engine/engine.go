// Package engine assembles the board, evaluator and search packages into a single
// library surface: load and serialize positions, enumerate legal moves, apply a move,
// and run a bounded search.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/board/fen"
	"github.com/herohde/negamax/pkg/eval"
	"github.com/herohde/negamax/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options configure a newly constructed Engine.
type Options struct {
	// Hash is the transposition table's entry cap. Zero uses search.DefaultTranspositionTableCap.
	Hash int
	// Seed seeds the Zobrist table deterministically. Zero draws from OS entropy.
	Seed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%v, seed=%v}", o.Hash, o.Seed)
}

// Option is an engine construction option.
type Option func(*Engine)

// WithHash bounds the transposition table to the given number of entries.
func WithHash(entries int) Option {
	return func(e *Engine) {
		e.opts.Hash = entries
	}
}

// WithZobristSeed fixes the Zobrist table's random seed, mainly for deterministic tests.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) {
		e.opts.Seed = seed
	}
}

// WithEvaluator overrides the default material evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) {
		e.eval = ev
	}
}

// Engine wraps a single current position with the operations to load it, serialize it,
// enumerate its legal moves, apply a move, and search it. Safe for concurrent use --
// every access to the current position is guarded by a single mutex. Search holds the
// mutex only while it copies the position, then runs synchronously on that copy with its
// own transposition table, so concurrent Search calls on one Engine may overlap.
type Engine struct {
	name, author string
	opts         Options

	zt   *board.ZobristTable
	eval eval.Evaluator

	mu sync.Mutex
	b  *board.Board
}

// New constructs an Engine and loads the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, eval: eval.Material{}}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.opts.Seed)

	if err := e.LoadFEN(ctx, fen.Initial); err != nil {
		panic(fmt.Sprintf("invalid initial position: %v", err))
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// LoadFEN parses s and makes it the engine's current position, discarding any repetition
// history accumulated against the prior position. Returns fen.ErrInvalidFEN on a
// malformed string, leaving the current position unmodified.
func (e *Engine) LoadFEN(ctx context.Context, s string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(s)
	if err != nil {
		return err
	}

	e.b = board.NewBoard(e.zt, *pos)
	logw.Infof(ctx, "Loaded position: %v", e.b)
	return nil
}

// ToFEN serializes the current position.
func (e *Engine) ToFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position())
}

// LegalMoves returns the legal moves for the side to move, in no particular order.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.LegalMoves()
}

// ApplyMove executes move, which must equal (per board.Move.Equals) one of LegalMoves,
// and returns the resulting terminal status. Returns board.ErrIllegalMove, leaving the
// position unmodified, otherwise.
func (e *Engine) ApplyMove(ctx context.Context, move board.Move) (board.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.b.PushMove(move); err != nil {
		return board.Playing, err
	}

	status := e.b.Status()
	logw.Infof(ctx, "Applied %v: %v", move, e.b)
	return status, nil
}

// Search finds the best move in the current position, bounded by maxDepth and maxTime.
// Each call gets a fresh transposition table rather than one persisted across moves: a
// stale table from a prior position only costs a few discarded probes.
func (e *Engine) Search(ctx context.Context, maxDepth int, maxTime time.Duration) search.Result {
	e.mu.Lock()
	pos := *e.b.Position()
	e.mu.Unlock()

	tt := search.NewTranspositionTable(e.opts.Hash)
	s := search.NewSearch(e.zt, e.eval, tt)

	result := s.FindBestMove(ctx, &pos, maxDepth, maxTime)
	logw.Infof(ctx, "Search depth=%v nodes=%v score=%v best=%v", result.Depth, result.Nodes, result.Score, result.Best)
	return result
}
