// Package truth loads the ground-truth label table that predictions are
// scored against.
package truth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"voxpitch/internal/common"
)

// UnknownLabel is returned for files absent from the table. It never matches
// a predicted label, so an unlabeled file can never be scored correct.
const UnknownLabel = "unknown"

// Column names expected in the ground-truth header row.
const (
	fileColumn   = "filename"
	genderColumn = "gender"
)

// Table maps file identifiers to their expected gender labels. It is built
// once before a run and read-only afterwards, so workers may share it without
// synchronization.
type Table struct {
	labels map[string]string
}

// Load reads a ground-truth CSV with a header row. The filename column is
// required; the gender column and its per-row values are optional and default
// to the empty label. Identifiers are trimmed, labels trimmed and lowercased,
// and duplicate identifiers keep the last row seen.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("ground truth source is empty")
		}
		return nil, fmt.Errorf("failed to read ground truth header: %w", err)
	}

	fileIdx, genderIdx := -1, -1
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\uFEFF")
		}
		switch strings.TrimSpace(cell) {
		case fileColumn:
			fileIdx = i
		case genderColumn:
			genderIdx = i
		}
	}
	if fileIdx < 0 {
		return nil, fmt.Errorf("ground truth header has no %q column: %w", fileColumn, common.ErrMissingColumn)
	}

	labels := make(map[string]string)
	var skipped int
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ground truth row: %w", err)
		}

		if fileIdx >= len(row) {
			skipped++
			continue
		}
		id := strings.TrimSpace(row[fileIdx])
		if id == "" {
			skipped++
			continue
		}

		var label string
		if genderIdx >= 0 && genderIdx < len(row) {
			label = strings.ToLower(strings.TrimSpace(row[genderIdx]))
		}
		labels[id] = label
	}

	if skipped > 0 {
		slog.Warn("Skipped ground truth rows without a file identifier", "rows", skipped)
	}
	slog.Info("Loaded ground truth table", "entries", len(labels))

	return &Table{labels: labels}, nil
}

// LoadFile opens path and loads the table from it.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ground truth file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Lookup returns the expected label for a file identifier, or UnknownLabel
// when the identifier was never listed.
func (t *Table) Lookup(fileID string) string {
	if label, ok := t.labels[fileID]; ok {
		return label
	}
	return UnknownLabel
}

// Len returns the number of labeled identifiers.
func (t *Table) Len() int {
	return len(t.labels)
}
