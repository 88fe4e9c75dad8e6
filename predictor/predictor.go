package predictor

import (
	"fmt"
	"math/rand/v2"
	"rps/game"
	"rps/meta"
	"rps/player"

	"github.com/rs/zerolog"
)

type Option func(a *Adaptive)

// Source tells where a prediction came from.
type Source int

const (
	Fallback    Source = iota // Not enough distinct data, play uniformly at random
	Model                     // Freshly fitted classifier
	SingleClass               // Every label identical, see WithDegenerateCounter
)

func (s Source) String() string {
	switch s {
	case Model:
		return "model"
	case SingleClass:
		return "single_class"
	default:
		return "fallback"
	}
}

// Prediction is the adaptive player's guess of the opponent's next move.
type Prediction struct {
	Opponent game.Move // game.NoMove when Source is Fallback
	Source   Source
	Examples int
}

// Adaptive predicts the opponent's next move from windowed move frequencies
// and plays its counter. A new classifier is fitted on every call to Move so
// the result depends only on the history last passed to Update.
type Adaptive struct {
	window            int
	c                 float64
	iterations        int
	degenerateCounter bool
	rng               *rand.Rand
	logger            zerolog.Logger
	history           game.History
}

func WithWindow(size int) Option {
	return func(a *Adaptive) {
		if size > 0 {
			a.window = size
		}
	}
}

// WithSource sets the random source used by the fallback.
func WithSource(src rand.Source) Option {
	return func(a *Adaptive) {
		if src != nil {
			a.rng = rand.New(src)
		}
	}
}

// WithRegularization sets the inverse L2 strength.
func WithRegularization(c float64) Option {
	return func(a *Adaptive) {
		if c > 0 {
			a.c = c
		}
	}
}

func WithIterations(iterations int) Option {
	return func(a *Adaptive) {
		if iterations > 0 {
			a.iterations = iterations
		}
	}
}

// WithDegenerateCounter makes a training set whose labels are all identical
// predict that label instead of falling back to a random move.
func WithDegenerateCounter() Option {
	return func(a *Adaptive) {
		a.degenerateCounter = true
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Adaptive) {
		a.logger = logger
	}
}

func NewAdaptive(options ...Option) *Adaptive {
	a := &Adaptive{ // Default values
		window:     meta.WINDOW_SIZE,
		c:          meta.L2_STRENGTH,
		iterations: meta.MAX_ITERATIONS,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Adaptive) Update(history game.History) {
	a.history = history.Clone()
}

func (a *Adaptive) Move() (game.Move, error) {
	p := a.Predict()
	if p.Source == Fallback {
		return player.UniformMove(a.rng), nil
	}
	return game.Counter(p.Opponent), nil
}

// Predict fits a classifier on the current history and guesses the opponent's next move.
func (a *Adaptive) Predict() Prediction {
	moves := a.history.Opponent()
	x, labels := trainingSet(moves, a.window)
	if x == nil {
		return Prediction{Source: Fallback}
	}

	classes := classesOf(labels)
	if len(classes) == 1 {
		if a.degenerateCounter {
			return Prediction{Opponent: classes[0], Source: SingleClass, Examples: len(labels)}
		}
		return Prediction{Source: Fallback, Examples: len(labels)}
	}

	model, err := fitLogistic(x, labels, a.c, a.iterations)
	if err != nil {
		a.logger.Warn().Err(err).Int("examples", len(labels)).Msg("falling back to a random move")
		return Prediction{Source: Fallback, Examples: len(labels)}
	}

	predicted := model.predict(trailing(moves, a.window))
	a.logger.Debug().
		Int("examples", len(labels)).
		Stringer("predicted", predicted).
		Msg("fitted opponent model")
	return Prediction{Opponent: predicted, Source: Model, Examples: len(labels)}
}

func (a *Adaptive) String() string {
	return fmt.Sprintf("AdaptivePlayer(window=%d)", a.window)
}
