// Package board contains the chess position representation, attack detection, legal move
// generation and execution, and the repetition/draw game-state machine built on top of them.
package board

import (
	"fmt"
	"strings"
)

// Placement describes a single piece occupying a square, used to construct a Position.
type Placement struct {
	Square Square
	Color  Color
	Piece  Piece
}

// Position represents a chess position suitable for move generation and execution: the
// board itself, side to move, castling rights, en-passant target and the two clocks.
// Position is a plain value -- copying it copies the whole board -- which lets the move
// executor and the search tree both construct a new Position per move instead of
// maintaining undo records.
type Position struct {
	cells [64]occupant

	sideToMove Color
	castling   Castling

	epTarget Square
	hasEP    bool

	halfmoveClock  int
	fullmoveNumber int
}

// NewPosition builds a Position from a piece list and metadata. Fails if any square is
// given twice, or if the king count is wrong.
func NewPosition(pieces []Placement, turn Color, castling Castling, ep Square, hasEP bool, halfmove, fullmove int) (*Position, error) {
	p := &Position{
		sideToMove:     turn,
		castling:       castling,
		epTarget:       ep,
		hasEP:          hasEP,
		halfmoveClock:  halfmove,
		fullmoveNumber: fullmove,
	}

	for _, pl := range pieces {
		if !pl.Square.IsValid() {
			return nil, fmt.Errorf("invalid square in placement: %v", pl)
		}
		if !p.IsEmpty(pl.Square) {
			return nil, fmt.Errorf("duplicate placement: %v", pl)
		}
		p.put(pl.Square, pl.Color, pl.Piece)
	}

	if p.count(White, King) != 1 || p.count(Black, King) != 1 {
		return nil, fmt.Errorf("invalid number of kings")
	}
	return p, nil
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns the current castling rights.
func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the en-passant target square, if the previous move was a pawn double-push.
func (p *Position) EnPassant() (Square, bool) {
	return p.epTarget, p.hasEP
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current full-move number, starting at 1.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// PieceAt returns the content of the given square. ok is false iff the square is empty.
func (p *Position) PieceAt(sq Square) (Color, Piece, bool) {
	o := p.cells[sq.index()]
	if o.Kind == NoPiece {
		return White, NoPiece, false
	}
	return o.Color, o.Kind, true
}

// IsEmpty returns true iff the square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.cells[sq.index()].Kind == NoPiece
}

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			if o := p.cells[sq.index()]; o.Kind == King && o.Color == c {
				return sq
			}
		}
	}
	panic("no king on board")
}

func (p *Position) put(sq Square, c Color, k Piece) {
	p.cells[sq.index()] = occupant{Color: c, Kind: k}
}

func (p *Position) clear(sq Square) {
	p.cells[sq.index()] = empty
}

func (p *Position) count(c Color, k Piece) int {
	n := 0
	for _, o := range p.cells {
		if o.Color == c && o.Kind == k {
			n++
		}
	}
	return n
}

// homeSquare returns the king's starting square for the given color.
func homeSquare(c Color) Square {
	if c == White {
		return NewSquare(7, 4)
	}
	return NewSquare(0, 4)
}

// rookCorner returns a color's rook starting square on the given side ("king"/"queen").
func rookCorner(c Color, kingSide bool) Square {
	row := 0
	if c == White {
		row = 7
	}
	if kingSide {
		return NewSquare(row, 7)
	}
	return NewSquare(row, 0)
}

func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c, k, ok := p.PieceAt(NewSquare(row, col))
			if !ok {
				sb.WriteRune('-')
				continue
			}
			sb.WriteString(printPiece(c, k))
		}
		if row < 7 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%v %v %v (%v)", sb.String(), p.sideToMove, p.castling, ep)
}

func printPiece(c Color, k Piece) string {
	if c == White {
		return strings.ToUpper(k.String())
	}
	return strings.ToLower(k.String())
}
