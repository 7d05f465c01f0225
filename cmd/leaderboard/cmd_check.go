package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dllm-bench/leaderboard/internal/projectconfig"
	"github.com/dllm-bench/leaderboard/internal/records"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate the records in an output directory",
		Long: `Validate every *.json record in an output directory against the record
schema and report the violations per file.

With no argument, checks paths.output from .leaderboard.yaml, defaulting to
data/leaderboard in the project root.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else {
		cfg, err := projectconfig.Load(".")
		if err != nil {
			return err
		}
		dir = cfg.OutputDir()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading output directory: %w", err)
	}

	w := cmd.OutOrStdout()
	checked, invalid := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != records.Ext {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading record file: %w", err)
		}
		checked++

		errs := records.Validate(data)
		if len(errs) == 0 {
			fmt.Fprintf(w, "✅ %s\n", entry.Name()) //nolint:errcheck
			continue
		}
		invalid++
		fmt.Fprintf(w, "❌ %s\n", entry.Name()) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "     %s\n", e) //nolint:errcheck
		}
	}

	fmt.Fprintf(w, "\n%d records checked, %d invalid\n", checked, invalid) //nolint:errcheck
	if invalid > 0 {
		return fmt.Errorf("%d of %d records in %s are invalid", invalid, checked, dir)
	}
	return nil
}
