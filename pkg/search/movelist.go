package search

import (
	"container/heap"
	"fmt"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/eval"
)

// Priority represents a move's ordering priority. Higher values are tried first.
type Priority int

// MoveList is a move priority queue used to order a node's moves before alpha-beta
// visits them.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list, each move scored by fn.
func NewMoveList(moves []board.Move, fn func(move board.Move) Priority) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops and returns the remaining move with the highest priority.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// byOrderingScore wraps eval.OrderingScore's three-rule heuristic (captures, then
// promotions, then centralization) as a Priority function.
func byOrderingScore(m board.Move) Priority {
	return Priority(eval.OrderingScore(m))
}

// preferring puts best first -- e.g. a transposition-table hint from a prior, shallower
// search of the same position -- falling back to byOrderingScore for every other move.
func preferring(best board.Move) func(board.Move) Priority {
	return func(m board.Move) Priority {
		if m.Equals(best) {
			return 1 << 30
		}
		return byOrderingScore(m)
	}
}
