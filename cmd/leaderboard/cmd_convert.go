package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dllm-bench/leaderboard/internal/pipeline"
	"github.com/dllm-bench/leaderboard/internal/projectconfig"
)

type convertOptions struct {
	outputDir string
	format    string
	dryRun    bool
	quiet     bool
}

func newConvertCommand() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [table.csv]",
		Short: "Regenerate the per-model leaderboard records from a results table",
		Long: `Convert a tab-separated results table into one JSON record per model.

The table must have a header row with the columns model, unmasking, epw80,
epw75 and epw70. Rows whose model or strategy has no canonical id are skipped
and listed in the summary. A recognized row with a missing or non-numeric
metric aborts the run.

Every existing *.json file in the output directory is removed before the new
records are written, so the directory always reflects the current table. If
the table cannot be loaded, the output directory is left untouched.

With no argument, the table path comes from .leaderboard.yaml (paths.table),
defaulting to table.csv in the project root.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory (default: paths.output from .leaderboard.yaml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Summary format: text or json (default: report.format)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Load the table and report without touching the output directory")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the summary")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	input := cfg.TablePath()
	if len(args) > 0 {
		input = args[0]
	}
	outputDir := cfg.OutputDir()
	if opts.outputDir != "" {
		outputDir = opts.outputDir
	}
	format := cfg.Report.Format
	if opts.format != "" {
		format = opts.format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be text or json", format)
	}
	quiet := opts.quiet || (cfg.Report.Quiet != nil && *cfg.Report.Quiet)

	runOpts := pipeline.Options{
		Input:     input,
		OutputDir: outputDir,
		DryRun:    opts.dryRun,
	}

	if quiet || format == "json" {
		out, err := pipeline.Run(runOpts, nil)
		if err != nil {
			return err
		}
		if quiet {
			return nil
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		data = append(data, '\n')
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		return nil
	}

	reporter := newTextReporter(cmd.OutOrStdout(), opts.dryRun)
	if _, err := pipeline.Run(runOpts, reporter); err != nil {
		return err
	}
	reporter.Flush()
	return nil
}
