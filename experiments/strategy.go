package experiments

import (
	"fmt"
	"math/rand/v2"
	"rps/player"
	"rps/predictor"

	"github.com/rs/zerolog"
)

// newPicker builds a fresh picker for one game. A nil src seeds randomly.
func newPicker(name string, window int, src rand.Source, logger zerolog.Logger) (player.MovePicker, error) {
	switch name {
	case "rock":
		return player.NewRock(), nil
	case "paper":
		return player.NewPaper(), nil
	case "scissors":
		return player.NewScissors(), nil
	case "random":
		return player.NewRandom(src), nil
	case "weighted":
		return player.NewWeighted(src), nil
	case "adaptive":
		return predictor.NewAdaptive(
			predictor.WithWindow(window),
			predictor.WithSource(src),
			predictor.WithLogger(logger),
		), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}
