// Package leaderboard loads a benchmark results table and groups its rows
// into per-model, per-strategy metric sets.
package leaderboard

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dllm-bench/leaderboard/internal/dataset"
	"github.com/dllm-bench/leaderboard/internal/idmap"
)

// ErrInputNotFound is returned by Load when the input table does not exist.
var ErrInputNotFound = errors.New("input table not found")

var errMissingColumn = errors.New("missing column")

// identityColumns must appear in the header of any table with data rows.
var identityColumns = []string{"model", "unmasking"}

// RawRow is one input row before identifier mapping. Identity fields missing
// from a short row decode as empty strings.
type RawRow struct {
	Model     string            `mapstructure:"model"`
	Unmasking string            `mapstructure:"unmasking"`
	Columns   map[string]string `mapstructure:",remain"`
}

// MalformedRowError reports a row whose shape or values do not match the
// fixed column set. Any such row aborts the whole load.
type MalformedRowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *MalformedRowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("row %d: column %q (value %q): %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// Result is the outcome of loading a table.
type Result struct {
	Aggregation       Aggregation
	SkippedModels     NameSet
	SkippedStrategies NameSet
	// Rows is the number of data rows read, including skipped ones.
	Rows int
}

// Load reads the tab-separated table at path and aggregates it. A missing
// file yields an error matching ErrInputNotFound. An empty file loads as a
// table with no rows.
func Load(path string) (*Result, error) {
	table, err := dataset.LoadTSV(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, err
	}

	res, err := Aggregate(table)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return res, nil
}

// Aggregate maps and groups the rows of an already parsed table. Rows with
// an unknown model or strategy are skipped and their raw names recorded,
// whatever else they hold. A header without the model or unmasking column,
// or a mapped row with a missing or non-numeric metric, fails the whole
// aggregation.
func Aggregate(table *dataset.Table) (*Result, error) {
	res := &Result{
		Aggregation:       make(Aggregation),
		SkippedModels:     make(NameSet),
		SkippedStrategies: make(NameSet),
		Rows:              len(table.Rows),
	}

	for i, row := range table.Rows {
		// Line numbers count the header as line 1.
		line := i + 2

		for _, col := range identityColumns {
			if !table.HasColumn(col) {
				return nil, &MalformedRowError{Line: line, Column: col, Err: errMissingColumn}
			}
		}

		raw, err := decodeRow(row)
		if err != nil {
			return nil, &MalformedRowError{Line: line, Err: err}
		}

		modelID, ok := idmap.Model(raw.Model)
		if !ok {
			slog.Debug("Skipping row with unmapped model", "line", line, "model", raw.Model)
			res.SkippedModels.Add(raw.Model)
			continue
		}
		strategyID, ok := idmap.Strategy(raw.Unmasking)
		if !ok {
			slog.Debug("Skipping row with unmapped strategy", "line", line, "unmasking", raw.Unmasking)
			res.SkippedStrategies.Add(raw.Unmasking)
			continue
		}

		metrics, err := raw.Metrics()
		if err != nil {
			var mre *MalformedRowError
			if errors.As(err, &mre) {
				mre.Line = line
			}
			return nil, err
		}

		if _, dup := res.Aggregation.Get(modelID, strategyID); dup {
			slog.Debug("Overwriting earlier row", "line", line, "model", modelID, "strategy", strategyID)
		}
		res.Aggregation.Set(modelID, strategyID, metrics)
	}

	return res, nil
}

// Metrics parses the threshold columns of the row into a MetricSet.
func (r RawRow) Metrics() (*MetricSet, error) {
	metrics := NewMetricSet()
	for _, th := range thresholds {
		col := Column(th)
		value, ok := r.Columns[col]
		if !ok {
			return nil, &MalformedRowError{Column: col, Err: errMissingColumn}
		}
		v, err := parseMetric(value)
		if err != nil {
			return nil, &MalformedRowError{Column: col, Value: value, Err: err}
		}
		metrics.Set(th, v)
	}
	return metrics, nil
}

func decodeRow(row dataset.Row) (RawRow, error) {
	var raw RawRow
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
		Result: &raw,
	})
	if err != nil {
		return RawRow{}, fmt.Errorf("creating row decoder: %w", err)
	}
	if err := decoder.Decode(map[string]string(row)); err != nil {
		return RawRow{}, fmt.Errorf("decoding row: %w", err)
	}
	return raw, nil
}

func parseMetric(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}
