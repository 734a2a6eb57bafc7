package board

import "fmt"

// Move applies m -- which must be pseudo-legal for p -- and returns the resulting
// Position. It does not itself check that the mover's king ends up safe; callers that
// need a legal move (as opposed to a simulation candidate) should only pass moves drawn
// from LegalMoves.
func (p *Position) Move(m Move) (Position, error) {
	turn := p.sideToMove
	c, k, ok := p.PieceAt(m.From)
	if !ok || c != turn {
		return Position{}, fmt.Errorf("illegal move: no %v piece on %v", turn, m.From)
	}

	next := *p

	if m.Type == EnPassant {
		skipped := NewSquare(int(m.From.Row), int(m.To.Col))
		next.clear(skipped)
	}

	// Update castling rights: king moves, rook moves from its corner, or a rook is
	// captured on its home corner.
	if k == King {
		next.castling = next.castling.Without(bothRights(turn))
	}
	if k == Rook {
		if m.From == rookCorner(turn, true) {
			next.castling = next.castling.Without(kingSideRight(turn))
		} else if m.From == rookCorner(turn, false) {
			next.castling = next.castling.Without(queenSideRight(turn))
		}
	}
	if m.To == rookCorner(turn.Opponent(), true) {
		next.castling = next.castling.Without(kingSideRight(turn.Opponent()))
	}
	if m.To == rookCorner(turn.Opponent(), false) {
		next.castling = next.castling.Without(queenSideRight(turn.Opponent()))
	}

	next.clear(m.From)
	next.put(m.To, turn, k)

	if m.IsCastle() {
		kingSide := m.Type == KingSideCastle
		rookFrom := rookCorner(turn, kingSide)
		rookTo := m.From.Add(0, sign(int(m.To.Col)-int(m.From.Col)))
		next.clear(rookFrom)
		next.put(rookTo, turn, Rook)
	}

	if k == Pawn && m.Promotion != NoPiece {
		next.put(m.To, turn, m.Promotion)
	}

	if m.Type == Jump {
		next.epTarget = m.From.Add(pawnDir(turn), 0)
		next.hasEP = true
	} else {
		next.hasEP = false
	}

	if k == Pawn || m.IsCapture() {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}

	next.sideToMove = turn.Opponent()
	if turn == Black {
		next.fullmoveNumber++
	}

	return next, nil
}
