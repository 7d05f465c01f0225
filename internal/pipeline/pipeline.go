// Package pipeline runs the table conversion end to end: load and aggregate
// the table, clear the output directory, write one record per model, then
// read the records back for reporting.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/dllm-bench/leaderboard/internal/leaderboard"
	"github.com/dllm-bench/leaderboard/internal/records"
)

//go:generate go tool mockgen -source=pipeline.go -destination=mock_reporter_test.go -package=pipeline

// Reporter receives the run summary. Calls arrive in order: Generated once,
// Skipped once, then File once per record on disk.
type Reporter interface {
	// Generated reports how many record files were produced from input.
	Generated(count int, input string)
	// Skipped reports the raw model and strategy names that had no mapping,
	// each sorted and free of duplicates.
	Skipped(models, strategies []string)
	// File reports one record file and the number of strategies it holds.
	File(name string, strategies int)
}

// Options configures a run.
type Options struct {
	// Input is the tab-separated results table.
	Input string
	// OutputDir receives one <model>.json record per model.
	OutputDir string
	// DryRun loads and reports without touching OutputDir.
	DryRun bool
}

// Outcome summarizes a completed run.
type Outcome struct {
	Input             string                  `json:"input"`
	OutputDir         string                  `json:"output_dir"`
	DryRun            bool                    `json:"dry_run,omitempty"`
	Rows              int                     `json:"rows"`
	Generated         int                     `json:"generated"`
	Removed           []string                `json:"removed,omitempty"`
	SkippedModels     []string                `json:"skipped_models,omitempty"`
	SkippedStrategies []string                `json:"skipped_strategies,omitempty"`
	Files             []records.Summary       `json:"files"`
	Aggregation       leaderboard.Aggregation `json:"-"`
}

// Run executes the conversion. Nothing in OutputDir is touched unless the
// whole table loaded successfully; after that, clearing finishes before the
// first record is written.
func Run(opts Options, r Reporter) (*Outcome, error) {
	res, err := leaderboard.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded table", "input", opts.Input, "rows", res.Rows, "models", len(res.Aggregation))

	out := &Outcome{
		Input:             opts.Input,
		OutputDir:         opts.OutputDir,
		DryRun:            opts.DryRun,
		Rows:              res.Rows,
		Generated:         len(res.Aggregation),
		SkippedModels:     res.SkippedModels.Sorted(),
		SkippedStrategies: res.SkippedStrategies.Sorted(),
		Aggregation:       res.Aggregation,
	}

	if opts.DryRun {
		out.Files = plannedFiles(res.Aggregation)
	} else {
		removed, err := records.Clear(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("clearing output directory: %w", err)
		}
		out.Removed = removed

		if _, err := records.Write(opts.OutputDir, res.Aggregation); err != nil {
			return nil, err
		}

		files, err := records.ReadDir(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("reading back records: %w", err)
		}
		out.Files = files
	}

	report(out, r)
	return out, nil
}

func plannedFiles(agg leaderboard.Aggregation) []records.Summary {
	files := make([]records.Summary, 0, len(agg))
	for _, model := range agg.Models() {
		files = append(files, records.Summary{
			File:       records.FileName(model),
			Model:      model,
			Strategies: len(agg[model]),
		})
	}
	return files
}

func report(out *Outcome, r Reporter) {
	if r == nil {
		return
	}
	r.Generated(out.Generated, out.Input)
	r.Skipped(out.SkippedModels, out.SkippedStrategies)
	for _, f := range out.Files {
		r.File(f.File, f.Strategies)
	}
}
