package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMove = errors.New("unknown move")

// Move is one of the three symbols a player can show.
type Move int

const (
	NoMove Move = iota // Zero value, never played
	Rock
	Paper
	Scissors
)

// Moves lists the playable alphabet.
var Moves = []Move{Rock, Paper, Scissors}

var moveNames = map[Move]string{
	Rock:     "ROCK",
	Paper:    "PAPER",
	Scissors: "SCISSORS",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

func (m Move) Valid() bool {
	return m == Rock || m == Paper || m == Scissors
}

// ParseMove reads a move name, ignoring case and surrounding whitespace.
func ParseMove(s string) (Move, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for m, n := range moveNames {
		if n == name {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("cannot parse %q: %w", s, ErrUnknownMove)
}

// Counter returns the move that beats m.
func Counter(m Move) Move {
	return counters[m]
}

// Beats reports whether a wins against b.
func Beats(a, b Move) bool {
	return Resolve(a, b) == FirstWins
}

var counters = map[Move]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}
