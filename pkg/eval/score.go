// Package eval contains static position evaluation and move-ordering heuristics.
package eval

import "fmt"

// Score is a signed evaluation in centipawns, from the perspective of the side it is
// computed for. Positive favors that side.
type Score int

const (
	ZeroScore Score = 0

	// Mate is the magic score assigned to a checkmated position, offset per ply by the
	// caller so that closer mates sort ahead of farther ones. MateThreshold is the
	// absolute value above which a score is considered a forced-mate indication.
	Mate          Score = 1000000
	MateThreshold Score = 10000

	MinScore Score = -Mate
	MaxScore Score = Mate
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// IsMateScore returns true iff |s| indicates a forced mate was found.
func (s Score) IsMateScore() bool {
	return s > MateThreshold || s < -MateThreshold
}

// Negate flips the score to the opponent's perspective.
func (s Score) Negate() Score {
	return -s
}

// IncrementMateDistance adds one ply of mate distance as a score is negamax-unwound, so
// that a mate found deeper in the tree scores slightly worse than one found shallower.
func IncrementMateDistance(s Score) Score {
	switch {
	case s > MateThreshold:
		return s - 1
	case s < -MateThreshold:
		return s + 1
	default:
		return s
	}
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
