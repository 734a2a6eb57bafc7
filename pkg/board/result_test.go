package board_test

import (
	"testing"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"king vs king", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},
		{"king+bishop vs king", "8/8/4k3/8/8/4K3/8/3B4 w - - 0 1", true},
		{"king+knight vs king", "8/8/4k3/8/8/4K3/8/3N4 w - - 0 1", true},
		{"two knights vs king", "8/8/4k3/8/8/4K3/8/2NN4 w - - 0 1", true},
		{"same-colored bishops", "8/8/4k3/7b/8/4K3/8/3B4 w - - 0 1", true},
		{"opposite-colored bishops", "8/8/4k3/7b/8/4K3/8/4B3 w - - 0 1", false},
		{"pawn present", "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1", false},
		{"rook present", "8/8/4k3/8/8/4K3/8/3R4 w - - 0 1", false},
	}

	for _, tt := range tests {
		p, err := fen.Decode(tt.fen)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, p.HasInsufficientMaterial(), tt.name)
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "playing", board.Playing.String())
	assert.Equal(t, "checkmate", board.Checkmate.String())
	assert.True(t, board.Checkmate.IsTerminal())
	assert.False(t, board.Playing.IsTerminal())
	assert.True(t, board.DrawRepetition.IsDraw())
	assert.False(t, board.Checkmate.IsDraw())
}
