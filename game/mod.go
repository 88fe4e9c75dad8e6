package game

// Outcome is the result of resolving one pair of moves.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "tie"
	}
}

// outcomes is indexed by [first][second]; NoMove rows and columns are ties.
var outcomes = [4][4]Outcome{
	Rock:     {Rock: Tie, Paper: SecondWins, Scissors: FirstWins},
	Paper:    {Rock: FirstWins, Paper: Tie, Scissors: SecondWins},
	Scissors: {Rock: SecondWins, Paper: FirstWins, Scissors: Tie},
}

// Resolve decides the winner of a single exchange.
// Rock beats Scissors, Scissors beats Paper, Paper beats Rock.
func Resolve(first, second Move) Outcome {
	if !first.Valid() || !second.Valid() {
		return Tie
	}
	return outcomes[first][second]
}
