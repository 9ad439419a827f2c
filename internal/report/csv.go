package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"voxpitch/internal/model"
)

// ResultColumns is the header of the results table.
var ResultColumns = []string{"file", "predicted", "mean_freq", "ground_truth", "correct"}

// CSVWriter persists evaluation records as a flat results table.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a writer that saves the results table at path,
// creating parent directories as needed.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write saves one row per record, in slice order. The mean_freq cell holds
// two decimals and stays empty for absent estimates, so identical record
// slices always serialize to identical bytes.
func (w *CSVWriter) Write(records []model.Record) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cw := csv.NewWriter(f)
	if err := cw.Write(ResultColumns); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.File,
			string(r.Predicted),
			FormatMeanFreq(r.Pitch),
			r.GroundTruth,
			strconv.FormatBool(r.Correct),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}

	slog.Info("Wrote results table", "path", w.path, "rows", len(records))

	return nil
}

// FormatMeanFreq renders a pitch estimate the way the results table expects:
// two decimals, or empty when absent.
func FormatMeanFreq(p model.Pitch) string {
	if !p.Voiced {
		return ""
	}
	return fmt.Sprintf("%.2f", p.Hz)
}
