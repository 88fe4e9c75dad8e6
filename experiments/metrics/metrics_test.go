package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"rps/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts rounds and outcomes", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddRound(game.Entry{Self: game.Rock, Opponent: game.Paper}, game.SecondWins, 0)
		c.AddRound(game.Entry{Self: game.Rock, Opponent: game.Rock}, game.Tie, 0)
		c.Start()
		c.AddRound(game.Entry{Self: game.Paper, Opponent: game.Rock}, game.FirstWins, 0)

		g, rounds := c.Complete()
		require.Equal(t, 3, g.Rounds)
		require.Equal(t, 1, g.FirstWins)
		require.Equal(t, 1, g.SecondWins)
		require.Equal(t, 1, g.Ties)
		require.Len(t, rounds, 3)
		require.Equal(t, 3, rounds[2].Step)
		require.Equal(t, game.Paper, rounds[2].First)
		require.False(t, g.EndTime.Before(g.StartTime))
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddRound(game.Entry{Self: game.Rock, Opponent: game.Paper}, game.SecondWins, 0)
		g, rounds := c.Complete()
		require.Zero(t, g.Rounds)
		require.Empty(t, rounds)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriterDirectories(t *testing.T) {
	root := t.TempDir()
	a, err := NewWriter(root, "same")
	require.NoError(t, err)
	b, err := NewWriter(root, "same")
	require.NoError(t, err)
	require.NotEqual(t, a.Dir(), b.Dir())
	require.DirExists(t, a.Dir())
	require.DirExists(t, b.Dir())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteMatchups([]MatchupConfig{{ID: 1, First: "adaptive", Second: "rock"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Matchup: 1, GameMetric: GameMetric{Rounds: 2, FirstWins: 1, Ties: 1}},
	}))
	require.NoError(t, w.WriteRoundRecords([]RoundRecord{
		{Game: 1, RoundMetric: RoundMetric{Step: 1, First: game.Paper, Second: game.Rock, Outcome: game.FirstWins}},
		{Game: 1, RoundMetric: RoundMetric{Step: 2, First: game.Rock, Second: game.Rock, Outcome: game.Tie}},
	}))

	matchups := readCSV(t, filepath.Join(w.Dir(), "matchups.csv"))
	require.Equal(t, [][]string{{"id", "first", "second"}, {"1", "adaptive", "rock"}}, matchups)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "2", games[1][2])

	rounds := readCSV(t, filepath.Join(w.Dir(), "round_records.csv"))
	require.Len(t, rounds, 3)
	require.Equal(t, []string{"1", "1", "PAPER", "ROCK", "first", "0s"}, rounds[1])
}
