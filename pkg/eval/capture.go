package eval

import "github.com/herohde/negamax/pkg/board"

// captureBonus is added on top of the victim's nominal value so that any capture
// outranks any quiet move.
const captureBonus = 10000

// promotionBonus is added on top of a promotion's material gain.
const promotionBonus = 9000

// centralizationWeight scales how much closer-to-centre destinations are favored. Small
// relative to capture/promotion bonuses, so it only breaks ties among otherwise-equal
// quiet moves.
const centralizationWeight = 1

// OrderingScore ranks a move for search ordering: captures by victim value (MVV-style),
// then promotions, then centralization. It has no effect on the search's returned score
// -- only on how quickly alpha-beta prunes.
func OrderingScore(m board.Move) int {
	score := 0
	if m.IsCapture() {
		score += captureBonus + int(NominalValue(m.Capture))
	}
	if m.IsPromotion() {
		score += promotionBonus + int(NominalValue(m.Promotion))
	}
	score += centralizationWeight * (14 - chebyshevFromCentre(m.To))
	return score
}

// chebyshevFromCentre returns a destination square's Chebyshev-like distance from the
// board centre, measured in half-squares for integer precision: 1 (centre) to 7 (corner).
func chebyshevFromCentre(sq board.Square) int {
	rowDist := absInt(2*int(sq.Row) - 7)
	colDist := absInt(2*int(sq.Col) - 7)
	if rowDist > colDist {
		return rowDist
	}
	return colDist
}
