package experiments

import (
	"context"
	"fmt"
	"math/rand/v2"
	"rps/engine"
	"rps/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Summary totals the games of one matchup.
type Summary struct {
	Matchup    Matchup
	Games      int
	Rounds     int
	FirstWins  int
	SecondWins int
	Ties       int
}

type gameResult struct {
	matchup int
	game    metrics.GameMetric
	rounds  []metrics.RoundMetric
}

// Run plays every configured matchup and, when an output directory is set,
// stores the game and round records as CSV.
func Run(ctx context.Context, config Config) ([]Summary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment...", config.Name)

	total := len(config.Matchups) * config.Games
	results := make([]gameResult, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(config.Goroutines, 1))
	for id := 0; id < total; id++ {
		mi := id / config.Games
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := runGame(config, mi, id)
			if err != nil {
				return fmt.Errorf("game %d: %w", id+1, err)
			}
			results[id] = result
			log.Debug().Msgf("completed matchup %d of %d game %d", mi+1, len(config.Matchups), id%config.Games+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := summarize(config, results)
	for _, s := range summaries {
		log.Info().Msgf("%s vs %s: %d-%d with %d ties over %d games",
			s.Matchup.First, s.Matchup.Second, s.FirstWins, s.SecondWins, s.Ties, s.Games)
	}
	log.Info().Msgf("completed %s experiment", config.Name)

	if config.Output == "" {
		return summaries, nil
	}
	if err := store(config, results); err != nil {
		return summaries, err
	}
	return summaries, nil
}

// runGame plays game id of matchup mi on freshly built pickers.
func runGame(config Config, mi, id int) (gameResult, error) {
	matchup := config.Matchups[mi]
	logger := log.Logger.With().Int("game", id+1).Logger()

	first, err := newPicker(matchup.First, config.Window, source(config.Seed, id, 0), logger)
	if err != nil {
		return gameResult{}, err
	}
	second, err := newPicker(matchup.Second, config.Window, source(config.Seed, id, 1), logger)
	if err != nil {
		return gameResult{}, err
	}

	match := engine.NewMatch(first, second,
		engine.WithMetrics(metrics.NewCollector()),
		engine.WithLogger(logger),
	)
	if err := match.Play(config.Rounds); err != nil {
		return gameResult{}, err
	}

	gm, rounds := match.Metrics()
	return gameResult{matchup: mi, game: gm, rounds: rounds}, nil
}

// source derives a per-game, per-seat stream from the experiment seed.
func source(seed uint64, id, seat int) rand.Source {
	if seed == 0 {
		return nil
	}
	return rand.NewPCG(seed, uint64(id)<<1|uint64(seat))
}

func summarize(config Config, results []gameResult) []Summary {
	summaries := make([]Summary, len(config.Matchups))
	for i, m := range config.Matchups {
		summaries[i].Matchup = m
	}
	for _, r := range results {
		s := &summaries[r.matchup]
		s.Games++
		s.Rounds += r.game.Rounds
		s.FirstWins += r.game.FirstWins
		s.SecondWins += r.game.SecondWins
		s.Ties += r.game.Ties
	}
	return summaries
}

func store(config Config, results []gameResult) error {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	matchups := make([]metrics.MatchupConfig, len(config.Matchups))
	for i, m := range config.Matchups {
		matchups[i] = metrics.MatchupConfig{ID: i + 1, First: m.First, Second: m.Second}
	}
	if err := writer.WriteMatchups(matchups); err != nil {
		return fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	roundRecords := []metrics.RoundRecord{}
	for i, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Matchup:    r.matchup + 1,
			GameMetric: r.game,
		})
		for _, rm := range r.rounds {
			roundRecords = append(roundRecords, metrics.RoundRecord{
				Game:        i + 1,
				RoundMetric: rm,
			})
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteRoundRecords(roundRecords); err != nil {
		return fmt.Errorf("failed to write round records: %w", err)
	}
	log.Info().Msgf("stored round records in %s", writer.Dir())
	return nil
}
