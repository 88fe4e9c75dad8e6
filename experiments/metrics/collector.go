package metrics

import (
	"rps/game"
	"time"
)

type RoundMetric struct {
	Step     int
	First    game.Move
	Second   game.Move
	Outcome  game.Outcome
	Duration time.Duration
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Rounds     int
	FirstWins  int
	SecondWins int
	Ties       int
}

type Collector interface {
	Start()
	AddRound(moves game.Entry, outcome game.Outcome, duration time.Duration)
	Complete() (GameMetric, []RoundMetric)
}

type collector struct {
	startTime time.Time
	started   bool
	rounds    []RoundMetric
	game      GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

// Start marks the beginning of the game. Only the first call counts so that
// a match played in several batches is measured as one game.
func (m *collector) Start() {
	if m.started {
		return
	}
	m.started = true
	m.startTime = time.Now()
}

func (m *collector) AddRound(moves game.Entry, outcome game.Outcome, duration time.Duration) {
	m.rounds = append(m.rounds, RoundMetric{
		Step:     len(m.rounds) + 1,
		First:    moves.Self,
		Second:   moves.Opponent,
		Outcome:  outcome,
		Duration: duration,
	})
	switch outcome {
	case game.FirstWins:
		m.game.FirstWins++
	case game.SecondWins:
		m.game.SecondWins++
	default:
		m.game.Ties++
	}
}

func (m *collector) Complete() (GameMetric, []RoundMetric) {
	g := m.game
	g.StartTime = m.startTime
	g.EndTime = time.Now()
	g.Duration = g.EndTime.Sub(m.startTime)
	g.Rounds = len(m.rounds)

	rounds := make([]RoundMetric, len(m.rounds))
	copy(rounds, m.rounds)
	return g, rounds
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                           {}
func (m *dummyCollector) AddRound(game.Entry, game.Outcome, time.Duration) {}
func (m *dummyCollector) Complete() (GameMetric, []RoundMetric)            { return GameMetric{}, nil }
