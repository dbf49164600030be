package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for experiment name under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{}
	for _, config := range configs {
		rows = append(rows, []string{strconv.Itoa(config.ID), config.Name})
	}
	err := w.writeCSV("agent_configs.csv", []string{"id", "name"}, rows)
	if err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

// WriteBattleRecords stores one row per battle of phase.
func (w *Writer) WriteBattleRecords(phase string, records []BattleMetric) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Battle),
			strconv.Itoa(record.Games),
			strconv.FormatFloat(record.CrossWins, 'f', 2, 64),
			strconv.FormatFloat(record.NaughtWins, 'f', 2, 64),
			strconv.FormatFloat(record.Draws, 'f', 2, 64),
		})
	}
	header := []string{"battle", "games", "cross_wins", "naught_wins", "draws"}
	err := w.writeCSV(phase+"_battles.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write battle records: %w", err)
	}
	return nil
}

// WriteMoveRecords stores one row per searched move.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.CacheHits, 10),
			strconv.Itoa(record.Candidates),
		})
	}
	header := []string{"game", "agent", "step", "duration", "nodes", "cache_hits", "candidates"}
	err := w.writeCSV("moves.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

// writeCSV creates name in the writer's directory and stores header and rows.
// Buffered rows are flushed before the file is closed so that every write
// error is reported.
func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
