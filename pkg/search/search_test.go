package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/herohde/negamax/pkg/board"
	"github.com/herohde/negamax/pkg/board/fen"
	"github.com/herohde/negamax/pkg/eval"
	"github.com/herohde/negamax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	s := search.NewSearch(zt, eval.Material{}, search.NewTranspositionTable(0))

	result := s.FindBestMove(context.Background(), pos, 3, time.Second)

	best, ok := result.Best.V()
	require.True(t, ok)

	want, err := board.ParseMove("a1a8")
	require.NoError(t, err)
	assert.True(t, want.Equals(best), "expected Ra8#, got %v", best)
	assert.True(t, result.Score.IsMateScore())
	assert.True(t, result.Score > 0)
}

func TestFindBestMoveNoLegalMovesReturnsNone(t *testing.T) {
	pos, err := fen.Decode("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	s := search.NewSearch(zt, eval.Material{}, search.NewTranspositionTable(0))

	result := s.FindBestMove(context.Background(), pos, 3, time.Second)

	_, ok := result.Best.V()
	assert.False(t, ok)
	assert.Equal(t, 0, result.Depth)
	assert.Equal(t, -eval.Mate, result.Score)
}

func TestFindBestMovePrefersWinningCapture(t *testing.T) {
	// White to move, queen takes an undefended rook.
	pos, err := fen.Decode("7k/8/8/3r4/3Q4/8/8/7K w - - 0 1")
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	s := search.NewSearch(zt, eval.Material{}, search.NewTranspositionTable(0))

	result := s.FindBestMove(context.Background(), pos, 2, time.Second)

	best, ok := result.Best.V()
	require.True(t, ok)

	want, err := board.ParseMove("d4d5")
	require.NoError(t, err)
	assert.True(t, want.Equals(best), "expected Qxd5, got %v", best)
}

func TestFindBestMoveRespectsTinyDeadline(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	s := search.NewSearch(zt, eval.Material{}, search.NewTranspositionTable(0))

	result := s.FindBestMove(context.Background(), pos, 50, 0)

	// Depth 1 may or may not complete within a zero budget, but the search must not
	// hang or exceed the requested depth bound.
	assert.LessOrEqual(t, result.Depth, 50)
}
