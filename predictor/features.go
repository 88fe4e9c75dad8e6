package predictor

import (
	"rps/game"

	"gonum.org/v1/gonum/mat"
)

// featureOrder fixes the column of each move in a frequency vector.
var featureOrder = []game.Move{game.Rock, game.Scissors, game.Paper}

// frequencies returns the share of each move in window, in featureOrder.
func frequencies(window []game.Move) []float64 {
	features := make([]float64, len(featureOrder))
	if len(window) == 0 {
		return features
	}
	for _, m := range window {
		for j, f := range featureOrder {
			if m == f {
				features[j]++
			}
		}
	}
	for j := range features {
		features[j] /= float64(len(window))
	}
	return features
}

// trainingSet slides a window of size w over moves. Each example's features
// describe moves[i:i+w] and its label is moves[i+w]. It returns a nil matrix
// when fewer than w+1 moves are available.
func trainingSet(moves []game.Move, w int) (*mat.Dense, []game.Move) {
	n := len(moves) - w
	if w <= 0 || n <= 0 {
		return nil, nil
	}
	x := mat.NewDense(n, len(featureOrder), nil)
	labels := make([]game.Move, n)
	for i := 0; i < n; i++ {
		x.SetRow(i, frequencies(moves[i:i+w]))
		labels[i] = moves[i+w]
	}
	return x, labels
}

// trailing returns the features of the last w moves.
func trailing(moves []game.Move, w int) []float64 {
	if len(moves) > w {
		moves = moves[len(moves)-w:]
	}
	return frequencies(moves)
}
