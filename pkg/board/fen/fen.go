// Package fen contains utilities for reading and writing chess positions in Forsyth-Edwards
// Notation.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/negamax/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN indicates a FEN string is malformed or describes an impossible position.
var ErrInvalidFEN = errors.New("invalid FEN")

// Decode parses fen into a Position, side to move included. Whitespace around the whole
// string is ignored, but the six fields themselves must be single-space separated.
func Decode(fen string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields: %q", ErrInvalidFEN, fen)
	}

	pieces, err := decodePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("%w: invalid active color: %q", ErrInvalidFEN, fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("%w: invalid castling field: %q", ErrInvalidFEN, fen)
	}

	var ep board.Square
	hasEP := false
	if parts[3] != "-" {
		sq, ok := board.AlgToCoord(parts[3])
		if !ok {
			return nil, fmt.Errorf("%w: invalid en passant field: %q", ErrInvalidFEN, fen)
		}
		ep, hasEP = sq, true
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: invalid halfmove clock: %q", ErrInvalidFEN, fen)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: invalid fullmove number: %q", ErrInvalidFEN, fen)
	}

	pos, err := board.NewPosition(pieces, turn, castling, ep, hasEP, halfmove, fullmove)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return pos, nil
}

// Encode renders pos as a FEN string. Encode is the inverse of Decode on well-formed
// input: castling rights are always emitted in canonical order KQkq.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		blanks := 0
		for col := 0; col < 8; col++ {
			c, k, ok := pos.PieceAt(board.NewSquare(row, col))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, k))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if row < 7 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.SideToMove(), pos.Castling(), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

func decodePlacement(field string) ([]board.Placement, error) {
	var pieces []board.Placement

	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks: %q", ErrInvalidFEN, field)
	}

	for row, rank := range rows {
		col := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				col += int(r - '0')
			default:
				c, k, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("%w: invalid piece %q: %q", ErrInvalidFEN, string(r), field)
				}
				if col >= 8 {
					return nil, fmt.Errorf("%w: rank too long: %q", ErrInvalidFEN, field)
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(row, col), Color: c, Piece: k})
				col++
			}
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank does not sum to 8 files: %q", ErrInvalidFEN, field)
		}
	}
	return pieces, nil
}

func parseCastling(s string) (board.Castling, bool) {
	if s == "-" {
		return board.NoCastlingRights, true
	}

	var c board.Castling
	for _, r := range s {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	k, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if r >= 'a' && r <= 'z' {
		return board.Black, k, true
	}
	return board.White, k, true
}

func printPiece(c board.Color, k board.Piece) rune {
	r := []rune(k.String())[0]
	if c == board.White {
		return []rune(strings.ToUpper(string(r)))[0]
	}
	return r
}
