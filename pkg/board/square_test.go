package board_test

import (
	"testing"

	"github.com/herohde/negamax/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgToCoordAndBack(t *testing.T) {
	tests := []struct {
		alg string
		row int
		col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e4", 4, 4},
		{"d5", 3, 3},
	}

	for _, tt := range tests {
		sq, ok := board.AlgToCoord(tt.alg)
		require.True(t, ok, tt.alg)
		assert.Equal(t, board.NewSquare(tt.row, tt.col), sq, tt.alg)
		assert.Equal(t, tt.alg, sq.String(), tt.alg)
	}
}

func TestAlgToCoordIsCaseInsensitive(t *testing.T) {
	sq, ok := board.AlgToCoord("E4")
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 4), sq)
}

func TestAlgToCoordRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "i4", "e9", "44"} {
		_, ok := board.AlgToCoord(s)
		assert.False(t, ok, s)
	}
}

func TestSquareRankAndFile(t *testing.T) {
	sq := board.NewSquare(2, 3)
	assert.Equal(t, 3, sq.File())
	assert.Equal(t, 6, sq.Rank())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, board.NewSquare(0, 0).IsValid())
	assert.True(t, board.NewSquare(7, 7).IsValid())
	assert.False(t, board.NewSquare(-1, 0).IsValid())
	assert.False(t, board.NewSquare(0, 8).IsValid())
	assert.False(t, board.NewSquare(8, 0).IsValid())
}
