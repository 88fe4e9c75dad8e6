package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchupConfig names the two strategies of a matchup.
type MatchupConfig struct {
	ID     int
	First  string
	Second string
}

type GameRecord struct {
	ID      int
	Matchup int // MatchupConfig.ID
	GameMetric
}

type RoundRecord struct {
	Game int // GameRecord.ID
	RoundMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh timestamped directory for one experiment under
// root. Runs started in the same instant still get distinct directories.
func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	timestamp := time.Now().UTC().Format("20060102T150405.000000Z")
	baseDir, err := os.MkdirTemp(parent, timestamp+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(configs []MatchupConfig) error {
	header := []string{"id", "first", "second"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.First,
			config.Second,
		})
	}
	return w.write("matchups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "rounds", "first_wins", "second_wins", "ties", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.FirstWins),
			strconv.Itoa(record.SecondWins),
			strconv.Itoa(record.Ties),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	header := []string{"game", "step", "first", "second", "outcome", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.First.String(),
			record.Second.String(),
			record.Outcome.String(),
			record.Duration.String(),
		})
	}
	return w.write("round_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
