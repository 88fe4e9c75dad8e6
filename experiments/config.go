package experiments

import (
	"errors"
	"fmt"
	"os"
	"rps/meta"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists the names a matchup may use.
var Strategies = []string{"rock", "paper", "scissors", "random", "weighted", "adaptive"}

type Matchup struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Config describes one experiment: every matchup is played Games times,
// each game lasting Rounds rounds.
type Config struct {
	Name       string    `yaml:"name"`
	Rounds     int       `yaml:"rounds"`
	Games      int       `yaml:"games"`
	Seed       uint64    `yaml:"seed"` // 0 seeds randomly
	Window     int       `yaml:"window"`
	Goroutines int       `yaml:"goroutines"`
	Output     string    `yaml:"output"` // CSV root directory, empty to skip
	Matchups   []Matchup `yaml:"matchups"`
}

// DefaultConfig pits the adaptive player against every other strategy.
func DefaultConfig() Config {
	return Config{
		Name:       "adaptive",
		Rounds:     meta.GAME_ROUNDS,
		Games:      meta.NUM_GAMES,
		Window:     meta.WINDOW_SIZE,
		Goroutines: meta.GO_ROUTINES,
		Matchups: []Matchup{
			{First: "adaptive", Second: "rock"},
			{First: "adaptive", Second: "paper"},
			{First: "adaptive", Second: "scissors"},
			{First: "adaptive", Second: "random"},
			{First: "adaptive", Second: "weighted"},
		},
	}
}

// LoadConfig reads a YAML experiment file. Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %d", c.Window)
	}
	if len(c.Matchups) == 0 {
		return errors.New("no matchups configured")
	}
	for i, m := range c.Matchups {
		for _, name := range []string{m.First, m.Second} {
			if !slices.Contains(Strategies, name) {
				return fmt.Errorf("matchup %d: %q: %w", i+1, name, ErrUnknownStrategy)
			}
		}
	}
	return nil
}
