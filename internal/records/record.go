// Package records writes, clears, reads and validates the per-model
// leaderboard record files.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dllm-bench/leaderboard/internal/leaderboard"
)

// Ext is the file extension of record files.
const Ext = ".json"

// Record is the on-disk document for one model.
type Record struct {
	Thresholds []int                             `json:"thresholds"`
	Results    map[string]*leaderboard.MetricSet `json:"results"`
}

// Summary describes one record file read back from an output directory.
type Summary struct {
	File       string `json:"file"`
	Model      string `json:"model"`
	Strategies int    `json:"strategies"`
}

// ErrInvalidRecord is returned when a record file does not match the schema.
var ErrInvalidRecord = errors.New("invalid record")

// FileName returns the record file name for a canonical model id.
func FileName(model string) string {
	return model + Ext
}

// New builds the record for one model of the aggregation.
func New(agg leaderboard.Aggregation, model string) *Record {
	return &Record{
		Thresholds: leaderboard.Thresholds(),
		Results:    agg[model],
	}
}

// Marshal serializes a record as two-space indented JSON with a trailing
// newline. Results are keyed in lexicographic order; metric sets keep their
// threshold order.
func Marshal(rec *Record) ([]byte, error) {
	if rec.Results == nil {
		rec = &Record{Thresholds: rec.Thresholds, Results: map[string]*leaderboard.MetricSet{}}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return append(data, '\n'), nil
}

// Write writes one record per model in agg to dir, in model order, and
// returns the written paths. The first failure aborts the remaining writes.
func Write(dir string, agg leaderboard.Aggregation) ([]string, error) {
	paths := make([]string, 0, len(agg))
	for _, model := range agg.Models() {
		data, err := Marshal(New(agg, model))
		if err != nil {
			return paths, fmt.Errorf("record %s: %w", model, err)
		}

		path := filepath.Join(dir, FileName(model))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("writing record file: %w", err)
		}
		slog.Debug("Wrote record", "path", path, "strategies", len(agg[model]))
		paths = append(paths, path)
	}
	return paths, nil
}

// Read loads and validates a single record file.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}

	if errs := Validate(data); len(errs) > 0 {
		return nil, fmt.Errorf("%w %s: %s", ErrInvalidRecord, path, strings.Join(errs, "; "))
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w", path, err)
	}
	return &rec, nil
}

// ReadDir reads every record file directly inside dir, sorted by file name.
func ReadDir(dir string) ([]Summary, error) {
	files, err := readRecords(dir)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, Summary{
			File:       f.name,
			Model:      strings.TrimSuffix(f.name, Ext),
			Strategies: len(f.rec.Results),
		})
	}
	return summaries, nil
}

type recordFile struct {
	name string
	rec  *Record
}

func readRecords(dir string) ([]recordFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var files []recordFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		rec, err := Read(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, recordFile{name: entry.Name(), rec: rec})
	}
	return files, nil
}
