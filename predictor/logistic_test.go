package predictor

import (
	"rps/game"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestClassesOf(t *testing.T) {
	labels := []game.Move{game.Rock, game.Paper, game.Rock}
	require.Equal(t, []game.Move{game.Paper, game.Rock}, classesOf(labels))
}

func TestFitLogistic(t *testing.T) {
	t.Run("separates two classes", func(t *testing.T) {
		x := mat.NewDense(4, 3, []float64{
			0.9, 0.1, 0.0,
			0.8, 0.1, 0.1,
			0.1, 0.0, 0.9,
			0.0, 0.2, 0.8,
		})
		labels := []game.Move{game.Rock, game.Rock, game.Paper, game.Paper}

		model, err := fitLogistic(x, labels, 100, 200)
		require.NoError(t, err)
		require.Equal(t, game.Rock, model.predict([]float64{1, 0, 0}))
		require.Equal(t, game.Paper, model.predict([]float64{0, 0, 1}))

		p := model.probabilities([]float64{1, 0, 0})
		require.InDelta(t, 1.0, p[0]+p[1], 1e-9)
	})

	t.Run("rejects a single class", func(t *testing.T) {
		x := mat.NewDense(2, 3, []float64{1, 0, 0, 1, 0, 0})
		_, err := fitLogistic(x, []game.Move{game.Rock, game.Rock}, 1, 100)
		require.Error(t, err)
	})

	t.Run("rejects mismatched labels", func(t *testing.T) {
		x := mat.NewDense(2, 3, nil)
		_, err := fitLogistic(x, []game.Move{game.Rock}, 1, 100)
		require.Error(t, err)
	})
}
