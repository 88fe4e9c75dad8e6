package predictor

import (
	"rps/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func repeat(m game.Move, n int) []game.Move {
	moves := make([]game.Move, n)
	for i := range moves {
		moves[i] = m
	}
	return moves
}

func TestFrequencies(t *testing.T) {
	t.Run("shares in rock, scissors, paper order", func(t *testing.T) {
		window := []game.Move{game.Rock, game.Rock, game.Paper, game.Scissors}
		require.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, frequencies(window), 1e-12)
	})

	t.Run("no smoothing", func(t *testing.T) {
		require.Equal(t, []float64{0, 0, 1}, frequencies(repeat(game.Paper, 10)))
	})
}

func TestTrainingSet(t *testing.T) {
	t.Run("empty below window plus one", func(t *testing.T) {
		x, labels := trainingSet(repeat(game.Rock, 10), 10)
		require.Nil(t, x)
		require.Empty(t, labels)
	})

	t.Run("one example per following move", func(t *testing.T) {
		moves := append(repeat(game.Rock, 10), game.Paper, game.Scissors)
		x, labels := trainingSet(moves, 10)
		rows, cols := x.Dims()
		require.Equal(t, 2, rows)
		require.Equal(t, 3, cols)
		require.Equal(t, []game.Move{game.Paper, game.Scissors}, labels)
		require.Equal(t, []float64{1, 0, 0}, x.RawRowView(0))
		require.InDeltaSlice(t, []float64{0.9, 0, 0.1}, x.RawRowView(1), 1e-12)
	})

	t.Run("size grows with history", func(t *testing.T) {
		for n := 11; n < 40; n++ {
			_, labels := trainingSet(repeat(game.Scissors, n), 10)
			require.Len(t, labels, n-10)
		}
	})
}

func TestTrailing(t *testing.T) {
	moves := append(repeat(game.Rock, 5), repeat(game.Paper, 10)...)
	require.Equal(t, []float64{0, 0, 1}, trailing(moves, 10))
}
