package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Leaderboard - convert benchmark tables into per-model records",
		Long: `Leaderboard converts a benchmark results table into the per-model JSON
records served by the leaderboard site.

The table lists one row per (model, unmasking strategy) pair with one
metric column per accuracy threshold. Model and strategy names
are mapped to canonical ids, and each run fully regenerates the records.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newMappingsCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
