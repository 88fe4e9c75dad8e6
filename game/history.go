package game

// Entry is one completed round seen from a fixed perspective:
// Self is always the consuming player's move.
type Entry struct {
	Self     Move
	Opponent Move
}

// Mirror swaps the two sides of the entry.
func (e Entry) Mirror() Entry {
	return Entry{Self: e.Opponent, Opponent: e.Self}
}

// History is the ordered list of completed rounds, oldest first.
type History []Entry

// Mirror returns a copy of the history seen from the other side.
func (h History) Mirror() History {
	mirrored := make(History, len(h))
	for i, e := range h {
		mirrored[i] = e.Mirror()
	}
	return mirrored
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	c := make(History, len(h))
	copy(c, h)
	return c
}

// Opponent returns the opponent's moves in play order.
func (h History) Opponent() []Move {
	moves := make([]Move, len(h))
	for i, e := range h {
		moves[i] = e.Opponent
	}
	return moves
}

// Own returns the consuming player's moves in play order.
func (h History) Own() []Move {
	moves := make([]Move, len(h))
	for i, e := range h {
		moves[i] = e.Self
	}
	return moves
}

// Last returns the most recent entry, if any.
func (h History) Last() (Entry, bool) {
	if len(h) == 0 {
		return Entry{}, false
	}
	return h[len(h)-1], true
}
