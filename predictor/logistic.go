package predictor

import (
	"errors"
	"fmt"
	"math"
	"rps/game"
	"rps/utils"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

var errNoSolution = errors.New("optimizer returned no usable solution")

// classOrder encodes moves as class indices.
var classOrder = []game.Move{game.Paper, game.Scissors, game.Rock}

// classifier is a multinomial logistic regression over the classes seen in
// training. Parameters are stored per class as dims weights followed by a bias.
type classifier struct {
	classes []game.Move
	dims    int
	theta   []float64
}

// classesOf returns the distinct labels in classOrder.
func classesOf(labels []game.Move) []game.Move {
	var classes []game.Move
	for _, c := range classOrder {
		if utils.FindIndex(labels, c) >= 0 {
			classes = append(classes, c)
		}
	}
	return classes
}

// fitLogistic minimizes the cross-entropy of a softmax model plus an L2
// penalty of ||theta||^2 / 2c, starting from zero so that identical inputs
// always give identical parameters.
func fitLogistic(x *mat.Dense, labels []game.Move, c float64, iterations int) (*classifier, error) {
	rows, dims := x.Dims()
	if rows != len(labels) {
		return nil, fmt.Errorf("got %d rows and %d labels", rows, len(labels))
	}
	classes := classesOf(labels)
	if len(classes) < 2 {
		return nil, fmt.Errorf("need at least two classes, got %d", len(classes))
	}

	model := &classifier{classes: classes, dims: dims}
	targets := make([]int, rows)
	for i, l := range labels {
		targets[i] = utils.FindIndex(classes, l)
	}

	stride := dims + 1
	size := len(classes) * stride
	logits := make([]float64, len(classes))

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			loss := 0.0
			for i := 0; i < rows; i++ {
				model.logits(theta, x.RawRowView(i), logits)
				loss += floats.LogSumExp(logits) - logits[targets[i]]
			}
			return loss + floats.Dot(theta, theta)/(2*c)
		},
		Grad: func(grad, theta []float64) {
			for j := range grad {
				grad[j] = theta[j] / c
			}
			for i := 0; i < rows; i++ {
				row := x.RawRowView(i)
				model.logits(theta, row, logits)
				softmax(logits)
				for k := range logits {
					d := logits[k]
					if k == targets[i] {
						d--
					}
					offset := k * stride
					floats.AddScaled(grad[offset:offset+dims], d, row)
					grad[offset+dims] += d
				}
			}
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: 1e-6,
		MajorIterations:   iterations,
	}
	result, err := optimize.Minimize(problem, make([]float64, size), settings, &optimize.LBFGS{})
	if result == nil || !finite(result.X) {
		if err == nil {
			err = errNoSolution
		}
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}
	// Line search failures near the optimum still leave a usable location.
	model.theta = result.X
	return model, nil
}

func (m *classifier) logits(theta, features, dst []float64) {
	stride := m.dims + 1
	for k := range m.classes {
		w := theta[k*stride : (k+1)*stride]
		dst[k] = floats.Dot(w[:m.dims], features) + w[m.dims]
	}
}

// probabilities returns the class probabilities for features, in m.classes order.
func (m *classifier) probabilities(features []float64) []float64 {
	p := make([]float64, len(m.classes))
	m.logits(m.theta, features, p)
	softmax(p)
	return p
}

// predict returns the most likely class; ties go to the earlier class.
func (m *classifier) predict(features []float64) game.Move {
	return m.classes[utils.ArgMax(m.probabilities(features))]
}

// softmax normalizes logits in place.
func softmax(logits []float64) {
	lse := floats.LogSumExp(logits)
	for k := range logits {
		logits[k] = math.Exp(logits[k] - lse)
	}
}

func finite(xs []float64) bool {
	if len(xs) == 0 {
		return false
	}
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
