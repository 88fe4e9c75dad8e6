package player

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"rps/game"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidState = errors.New("invalid state")

// MovePicker is a strategy that can take part in a match.
type MovePicker interface {
	// Update hands the picker its own view of the match so far, before the next round.
	// The picker's moves are always Entry.Self. Implementations must not modify it.
	Update(history game.History)
	// Move commits the picker's move for the upcoming round.
	Move() (game.Move, error)
}

// Constant always plays the same move.
type Constant struct {
	move game.Move
}

func NewRock() *Constant     { return &Constant{move: game.Rock} }
func NewPaper() *Constant    { return &Constant{move: game.Paper} }
func NewScissors() *Constant { return &Constant{move: game.Scissors} }

func (c *Constant) Update(game.History) {}

func (c *Constant) Move() (game.Move, error) {
	return c.move, nil
}

func (c *Constant) String() string {
	switch c.move {
	case game.Paper:
		return "PaperPlayer"
	case game.Scissors:
		return "ScissorsPlayer"
	default:
		return "RockPlayer"
	}
}

// Random plays uniformly at random.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a uniform picker drawing from src. A nil src uses a randomly seeded one.
func NewRandom(src rand.Source) *Random {
	return &Random{rng: rand.New(sourceOrDefault(src))}
}

func (r *Random) Update(game.History) {}

func (r *Random) Move() (game.Move, error) {
	return UniformMove(r.rng), nil
}

func (r *Random) String() string { return "RandomPlayer" }

// UniformMove draws one move uniformly from the alphabet.
func UniformMove(rng *rand.Rand) game.Move {
	return game.Moves[rng.IntN(len(game.Moves))]
}

func sourceOrDefault(src rand.Source) rand.Source {
	if src == nil {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return src
}

// Weighted reacts to the opponent's previous move with a fixed, mostly
// predictable preference. Indexed by the opponent's last move, the weights
// follow the order of game.Moves.
type Weighted struct {
	src      rand.Source
	rng      *rand.Rand
	previous game.Move
}

var responseWeights = map[game.Move][]float64{
	game.Rock:     {0.1, 0.8, 0.1},
	game.Paper:    {0.1, 0.1, 0.8},
	game.Scissors: {0.8, 0.1, 0.1},
}

func NewWeighted(src rand.Source) *Weighted {
	src = sourceOrDefault(src)
	return &Weighted{src: src, rng: rand.New(src)}
}

func (w *Weighted) Update(history game.History) {
	w.previous = game.NoMove
	if last, ok := history.Last(); ok {
		w.previous = last.Opponent
	}
}

func (w *Weighted) Move() (game.Move, error) {
	weights, ok := responseWeights[w.previous]
	if !ok {
		return UniformMove(w.rng), nil
	}
	dist := distuv.NewCategorical(weights, w.src)
	return game.Moves[int(dist.Rand())], nil
}

func (w *Weighted) String() string { return "WeightedPlayer" }

// Forced plays whatever move was set last, exactly once.
type Forced struct {
	next game.Move
}

func NewForced() *Forced {
	return &Forced{}
}

// SetNext queues the move returned by the next call to Move.
func (f *Forced) SetNext(m game.Move) error {
	if !m.Valid() {
		return fmt.Errorf("cannot force %v: %w", m, game.ErrUnknownMove)
	}
	f.next = m
	return nil
}

// Next returns the queued move, or game.NoMove.
func (f *Forced) Next() game.Move {
	return f.next
}

func (f *Forced) Update(game.History) {}

func (f *Forced) Move() (game.Move, error) {
	if f.next == game.NoMove {
		return game.NoMove, fmt.Errorf("next move has not been set: %w", ErrInvalidState)
	}
	m := f.next
	f.next = game.NoMove
	return m, nil
}

func (f *Forced) String() string { return "ForcedPlayer" }
