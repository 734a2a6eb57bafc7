package board

// Piece represents a chess piece kind (King, Pawn, etc), with no color attached. NoPiece
// marks an empty square.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ZeroPiece Piece = 1 // Pawn: NoPiece is excluded from iteration ranges.
	NumPieces Piece = 7 // includes NoPiece, for array sizing.
)

// PromotionPieces lists the valid under-promotion targets, queen first, in the order
// the move generator emits them.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "-"
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// occupant is the content of a single square: a Piece kind plus the Color it belongs to.
// Kind == NoPiece means the square is empty and Color is meaningless.
type occupant struct {
	Color Color
	Kind  Piece
}

var empty = occupant{Kind: NoPiece}
