package search

import (
	"fmt"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/eval"
)

// DefaultTranspositionTableCap is the entry cap used when none is given explicitly.
const DefaultTranspositionTableCap = 1000000

// Bound represents which side of the true score a stored value is known to be: exact, a
// lower bound (from a beta cutoff) or an upper bound (no move improved alpha).
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "?"
	}
}

// Entry is a stored search result for one position hash.
type Entry struct {
	Depth int
	Score eval.Score
	Bound Bound
	Best  board.Move // best move found at this node, if any; seeds move ordering on a re-visit.
}

// TranspositionTable is a bounded hash-keyed cache of search results. It is keyed only by
// the Zobrist hash -- collisions are tolerated, not resolved. Not safe for concurrent
// use: a Search owns one table per run.
type TranspositionTable struct {
	entries map[board.ZobristHash]Entry
	cap     int
}

// NewTranspositionTable creates a table bounded to cap entries. cap <= 0 defaults to
// DefaultTranspositionTableCap.
func NewTranspositionTable(cap int) *TranspositionTable {
	if cap <= 0 {
		cap = DefaultTranspositionTableCap
	}
	return &TranspositionTable{
		entries: make(map[board.ZobristHash]Entry),
		cap:     cap,
	}
}

// Probe returns the entry stored for hash, if present and at least as deep as
// requestedDepth -- i.e., deep enough to answer the caller's query outright.
func (t *TranspositionTable) Probe(hash board.ZobristHash, requestedDepth int) (Entry, bool) {
	e, ok := t.entries[hash]
	if !ok || e.Depth < requestedDepth {
		return Entry{}, false
	}
	return e, true
}

// Store records e under hash, evicting the shallowest entry first (ties broken
// arbitrarily) if the table is full and hash is not already present.
func (t *TranspositionTable) Store(hash board.ZobristHash, e Entry) {
	if _, exists := t.entries[hash]; !exists && len(t.entries) >= t.cap {
		t.evictShallowest()
	}
	t.entries[hash] = e
}

func (t *TranspositionTable) evictShallowest() {
	var victim board.ZobristHash
	min := -1
	for h, e := range t.entries {
		if min == -1 || e.Depth < min {
			min, victim = e.Depth, h
		}
	}
	delete(t.entries, victim)
}

// Len returns the current number of stored entries.
func (t *TranspositionTable) Len() int {
	return len(t.entries)
}

func (t *TranspositionTable) String() string {
	return fmt.Sprintf("TT[%v/%v entries]", t.Len(), t.cap)
}
