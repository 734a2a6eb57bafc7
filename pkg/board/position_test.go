package board_test

import (
	"testing"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionRejectsDuplicateSquare(t *testing.T) {
	sq := board.NewSquare(4, 4)
	_, err := board.NewPosition([]board.Placement{
		{Square: sq, Color: board.White, Piece: board.King},
		{Square: sq, Color: board.Black, Piece: board.Pawn},
		{Square: board.NewSquare(0, 0), Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastlingRights, board.Square{}, false, 0, 1)
	require.Error(t, err)
}

func TestNewPositionRejectsWrongKingCount(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(4, 4), Color: board.White, Piece: board.King},
	}, board.White, board.NoCastlingRights, board.Square{}, false, 0, 1)
	require.Error(t, err)
}

func TestKingSquare(t *testing.T) {
	p, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.NewSquare(7, 4), p.KingSquare(board.White))
	assert.Equal(t, board.NewSquare(0, 4), p.KingSquare(board.Black))
}

func TestPieceAtEmptySquare(t *testing.T) {
	p, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	_, _, ok := p.PieceAt(board.NewSquare(4, 4))
	assert.False(t, ok)
	assert.True(t, p.IsEmpty(board.NewSquare(4, 4)))
}
