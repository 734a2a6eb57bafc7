package eval

import (
	"github.com/herohde/negamax/pkg/board"
)

// Evaluator is a static position evaluator. Evaluate returns a score in centipawns from
// the perspective of the side to move in pos.
type Evaluator interface {
	Evaluate(pos *board.Position) Score
}

// NominalValue is the material value of a piece kind in centipawns.
func NominalValue(k board.Piece) Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of making a move: the value of what it
// captures (and the net value of an under/over-promotion). Move ordering does not use
// it; OrderingScore scores moves on its own.
func NominalValueGain(m board.Move) Score {
	gain := Score(0)
	if m.IsCapture() {
		gain += NominalValue(m.Capture)
	}
	if m.IsPromotion() {
		gain += NominalValue(m.Promotion) - NominalValue(board.Pawn)
	}
	return gain
}

// centreSquares are d4, d5, e4, e5.
var centreSquares = [4]board.Square{
	board.NewSquare(4, 3), // d4
	board.NewSquare(3, 3), // d5
	board.NewSquare(4, 4), // e4
	board.NewSquare(3, 4), // e5
}

// Material is a material+centre+pawn-structure+king-safety static evaluator. Evaluate
// returns the score from White's perspective, negated for Black.
type Material struct{}

func (Material) Evaluate(pos *board.Position) Score {
	score := materialScore(pos) + centreScore(pos) + pawnStructureScore(pos) + kingSafetyScore(pos)
	if pos.SideToMove() == board.Black {
		return -score
	}
	return score
}

func materialScore(pos *board.Position) Score {
	var score Score
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c, k, ok := pos.PieceAt(board.NewSquare(row, col))
			if !ok {
				continue
			}
			v := NominalValue(k)
			if c == board.Black {
				v = -v
			}
			score += v
		}
	}
	return score
}

func centreScore(pos *board.Position) Score {
	var score Score
	for _, sq := range centreSquares {
		c, _, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		if c == board.White {
			score += 10
		} else {
			score -= 10
		}
	}
	return score
}

func pawnStructureScore(pos *board.Position) Score {
	var whitePawns, blackPawns [8]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c, k, ok := pos.PieceAt(board.NewSquare(row, col))
			if !ok || k != board.Pawn {
				continue
			}
			if c == board.White {
				whitePawns[col]++
			} else {
				blackPawns[col]++
			}
		}
	}

	var score Score
	for col := 0; col < 8; col++ {
		if n := whitePawns[col]; n > 1 {
			score -= Score(5 * (n - 1))
		}
		if n := blackPawns[col]; n > 1 {
			score += Score(5 * (n - 1))
		}
	}
	return score
}

func kingSafetyScore(pos *board.Position) Score {
	white := centreDistanceBonus(pos.KingSquare(board.White))
	black := centreDistanceBonus(pos.KingSquare(board.Black))
	return Score(white) - Score(black)
}

// centreDistanceBonus scores a king's proximity to the centre: +20 per step closer than
// the board edge, on a Chebyshev-like distance scale of 1 (centre) to 7 (corner).
func centreDistanceBonus(sq board.Square) int {
	distance := maxInt(absInt(2*int(sq.Row)-7), absInt(2*int(sq.Col)-7))
	return 20 * (7 - distance)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
