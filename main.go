package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"rps/experiments"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment file (defaults to adaptive vs every strategy)")
	rounds := flag.Int("rounds", 0, "Rounds per game")
	games := flag.Int("games", 0, "Games per matchup")
	window := flag.Int("window", 0, "Window size of the adaptive player")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a random one")
	goroutines := flag.Int("goroutines", 0, "Games played at once")
	out := flag.String("out", "", "Directory for CSV records, empty to skip")
	debug := flag.Bool("debug", false, "Log every round")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
	}

	// Flags override the file when set
	if *rounds > 0 {
		config.Rounds = *rounds
	}
	if *games > 0 {
		config.Games = *games
	}
	if *window > 0 {
		config.Window = *window
	}
	if *seed > 0 {
		config.Seed = *seed
	}
	if *goroutines > 0 {
		config.Goroutines = *goroutines
	}
	if *out != "" {
		config.Output = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := experiments.Run(ctx, config); err != nil {
		log.Error().Err(err).Msg("experiment failed")
		stop()
		os.Exit(1)
	}
}
