package board

// Result classifies a position for the side to move: a 50-move or repetition draw takes
// precedence over insufficient material, which in turn takes precedence over
// checkmate/stalemate.
type Result uint8

const (
	Playing Result = iota
	Checkmate
	Stalemate
	Draw50Moves
	DrawRepetition
	DrawInsufficientMaterial
)

func (r Result) String() string {
	switch r {
	case Playing:
		return "playing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw50Moves:
		return "draw (50-move rule)"
	case DrawRepetition:
		return "draw (threefold repetition)"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	default:
		return "?"
	}
}

// IsTerminal returns true iff the result ends the game.
func (r Result) IsTerminal() bool {
	return r != Playing
}

// IsDraw returns true iff the result is one of the three drawn terminal states.
func (r Result) IsDraw() bool {
	return r == Draw50Moves || r == DrawRepetition || r == DrawInsufficientMaterial
}

// HasInsufficientMaterial reports whether neither side has enough material to force
// checkmate: any pawn, rook or queen on the board makes the position sufficient.
// Otherwise it is insufficient only for K vs K, K+minor vs K, K+NN vs K, or K+B vs K+B
// with same-colored bishops.
func (p *Position) HasInsufficientMaterial() bool {
	var knights, bishops [2]int
	var bishopSquares [2][]Square

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			c, k, ok := p.PieceAt(sq)
			if !ok {
				continue
			}
			switch k {
			case Pawn, Rook, Queen:
				return false
			case Knight:
				knights[c]++
			case Bishop:
				bishops[c]++
				bishopSquares[c] = append(bishopSquares[c], sq)
			}
		}
	}

	totalMinors := knights[White] + bishops[White] + knights[Black] + bishops[Black]
	switch {
	case totalMinors == 0:
		return true // K vs K
	case totalMinors == 1:
		return true // K+minor vs K
	case knights[White] == 2 && bishops[White] == 0 && knights[Black] == 0 && bishops[Black] == 0:
		return true // K+NN vs K
	case knights[Black] == 2 && bishops[Black] == 0 && knights[White] == 0 && bishops[White] == 0:
		return true // K+NN vs K
	case knights[White] == 0 && knights[Black] == 0 && bishops[White] == 1 && bishops[Black] == 1:
		return squareColor(bishopSquares[White][0]) == squareColor(bishopSquares[Black][0])
	default:
		return false
	}
}

// squareColor returns 0 for light squares (such as a8) and 1 for dark squares (such as
// a1), the two square colors a bishop is bound to.
func squareColor(sq Square) int {
	return (int(sq.Row) + int(sq.Col)) % 2
}
