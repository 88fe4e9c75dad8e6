package engine

import (
	"fmt"
	"reflect"
	"rps/experiments/metrics"
	"rps/game"
	"rps/player"
	"time"

	"github.com/rs/zerolog"
)

type Option func(m *Match)

// Stats maps a seat to the number of rounds it won. Tie counts drawn rounds.
type Stats map[Seat]int

// Total returns the number of recorded rounds.
func (s Stats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Match plays a series of rounds between two pickers and keeps the shared history.
type Match struct {
	pickers [2]player.MovePicker
	history game.History
	tally   Stats
	metrics metrics.Collector
	logger  zerolog.Logger
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Match) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Match) {
		m.logger = logger
	}
}

func NewMatch(first, second player.MovePicker, options ...Option) *Match {
	m := &Match{
		pickers: [2]player.MovePicker{first, second},
		tally:   Stats{},
		metrics: metrics.NewDummyCollector(),
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Play runs the given number of rounds, continuing any earlier series.
// A non-positive count plays nothing. On error the rounds completed so far
// stay recorded.
func (m *Match) Play(rounds int) error {
	if rounds <= 0 {
		return nil
	}
	m.metrics.Start()

	for i := 0; i < rounds; i++ {
		start := time.Now()
		m.informPlayers()

		round := NewRound(m.pickers[0], m.pickers[1])
		if err := round.Play(); err != nil {
			return fmt.Errorf("round %d: %w", len(m.history)+1, err)
		}
		moves, _ := round.Moves()
		outcome, _ := round.Outcome()
		winner := seatOf(outcome)

		m.history = append(m.history, moves)
		m.tally[winner]++
		m.metrics.AddRound(moves, outcome, time.Since(start))

		m.logger.Debug().
			Int("round", len(m.history)).
			Stringer("first", moves.Self).
			Stringer("second", moves.Opponent).
			Stringer("winner", winner).
			Msg("round played")
	}
	return nil
}

// informPlayers hands each picker a fresh copy of the history with its own moves first.
func (m *Match) informPlayers() {
	m.pickers[0].Update(m.history.Clone())
	m.pickers[1].Update(m.history.Mirror())
}

// Stats returns a copy of the current tally.
func (m *Match) Stats() Stats {
	s := make(Stats, len(m.tally))
	for seat, n := range m.tally {
		s[seat] = n
	}
	return s
}

// Wins returns how many rounds p has won. Pickers are identified by
// equality, so a picker whose type is not comparable never matches; use
// Stats with its Seat instead.
func (m *Match) Wins(p player.MovePicker) int {
	wins := 0
	if samePicker(m.pickers[0], p) {
		wins += m.tally[First]
	}
	if samePicker(m.pickers[1], p) {
		wins += m.tally[Second]
	}
	return wins
}

// samePicker compares a and b without panicking on uncomparable dynamic types.
func samePicker(a, b player.MovePicker) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func (m *Match) Ties() int {
	return m.tally[Tie]
}

// History returns the first player's view of the rounds played so far.
func (m *Match) History() game.History {
	return m.history.Clone()
}

func (m *Match) Rounds() int {
	return len(m.history)
}

// Metrics returns what the collector gathered; empty unless WithMetrics was given.
func (m *Match) Metrics() (metrics.GameMetric, []metrics.RoundMetric) {
	return m.metrics.Complete()
}
