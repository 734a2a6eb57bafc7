package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove indicates apply_move was called with a move not present in LegalMoves.
var ErrIllegalMove = errors.New("illegal move")

// Board owns the running Position plus the repetition history needed to classify the
// game-state (playing / checkmate / stalemate / one of the three draws). Not safe for
// concurrent use.
type Board struct {
	zt  *ZobristTable
	pos Position

	hash        ZobristHash
	repetitions map[ZobristHash]int
}

// NewBoard wraps pos for play, seeding a fresh repetition history (as on a FEN load).
func NewBoard(zt *ZobristTable, pos Position) *Board {
	hash := zt.Hash(&pos)
	return &Board{
		zt:          zt,
		pos:         pos,
		hash:        hash,
		repetitions: map[ZobristHash]int{hash: 1},
	}
}

// Position returns the current position.
func (b *Board) Position() *Position {
	return &b.pos
}

// Hash returns the Zobrist hash of the current position.
func (b *Board) Hash() ZobristHash {
	return b.hash
}

// LegalMoves returns the legal moves for the side to move.
func (b *Board) LegalMoves() []Move {
	return b.pos.LegalMoves()
}

// PushMove applies m, which must equal (per Move.Equals) one of LegalMoves. Updates the
// repetition history. Returns ErrIllegalMove, leaving the Board unmodified, otherwise.
func (b *Board) PushMove(m Move) error {
	legal := b.pos.LegalMoves()

	var match *Move
	for i := range legal {
		if legal[i].Equals(m) {
			match = &legal[i]
			break
		}
	}
	if match == nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	next, err := b.pos.Move(*match)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	b.pos = next
	b.hash = b.zt.Hash(&b.pos)
	b.repetitions[b.hash]++
	return nil
}

// Status classifies the current position: 50-move and repetition draws are checked
// before material and mobility, since they can fire even when legal moves remain.
func (b *Board) Status() Result {
	if b.pos.HalfmoveClock() >= 100 {
		return Draw50Moves
	}
	if b.repetitions[b.hash] >= 3 {
		return DrawRepetition
	}
	if b.pos.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if len(b.pos.LegalMoves()) == 0 {
		if b.pos.IsChecked(b.pos.SideToMove()) {
			return Checkmate
		}
		return Stalemate
	}
	return Playing
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, hash=%x, status=%v}", &b.pos, b.hash, b.Status())
}
