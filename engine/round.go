package engine

import (
	"fmt"
	"rps/game"
	"rps/player"
)

// ErrInvalidState is returned when a round or picker is used outside its lifecycle.
var ErrInvalidState = player.ErrInvalidState

// Seat identifies who won a round: one of the two positional slots, or Tie.
type Seat int

const (
	Tie Seat = iota
	First
	Second
)

func (s Seat) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "tie"
	}
}

func seatOf(o game.Outcome) Seat {
	switch o {
	case game.FirstWins:
		return First
	case game.SecondWins:
		return Second
	default:
		return Tie
	}
}

// Round is a single exchange of moves. It can be played once.
type Round struct {
	first   player.MovePicker
	second  player.MovePicker
	moves   game.Entry
	outcome game.Outcome
	played  bool
}

func NewRound(first, second player.MovePicker) *Round {
	return &Round{first: first, second: second}
}

// Play asks both pickers for their move and resolves the winner.
// Neither picker sees the other's move for this round.
func (r *Round) Play() error {
	if r.played {
		return fmt.Errorf("round already played: %w", ErrInvalidState)
	}
	m1, err := r.first.Move()
	if err != nil {
		return fmt.Errorf("first player failed to move: %w", err)
	}
	m2, err := r.second.Move()
	if err != nil {
		return fmt.Errorf("second player failed to move: %w", err)
	}
	if !m1.Valid() {
		return fmt.Errorf("first player played %v: %w", m1, game.ErrUnknownMove)
	}
	if !m2.Valid() {
		return fmt.Errorf("second player played %v: %w", m2, game.ErrUnknownMove)
	}

	r.moves = game.Entry{Self: m1, Opponent: m2}
	r.outcome = game.Resolve(m1, m2)
	r.played = true
	return nil
}

// Moves returns the move pair from the first player's perspective.
func (r *Round) Moves() (game.Entry, error) {
	if !r.played {
		return game.Entry{}, fmt.Errorf("round not played yet: %w", ErrInvalidState)
	}
	return r.moves, nil
}

func (r *Round) Outcome() (game.Outcome, error) {
	if !r.played {
		return game.Tie, fmt.Errorf("round not played yet: %w", ErrInvalidState)
	}
	return r.outcome, nil
}

func (r *Round) Winner() (Seat, error) {
	o, err := r.Outcome()
	if err != nil {
		return Tie, err
	}
	return seatOf(o), nil
}
