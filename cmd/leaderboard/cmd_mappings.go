package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dllm-bench/leaderboard/internal/idmap"
)

func newMappingsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "List the model and strategy identifier mappings",
		Long: `List the raw model and unmasking strategy names recognised in results
tables, together with the canonical ids used for record files and result keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				return printMappingsJSON(cmd.OutOrStdout())
			case "text":
				printMappingsTable(cmd.OutOrStdout())
				return nil
			default:
				return fmt.Errorf("unsupported format %q: must be text or json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")

	return cmd
}

type mappingsReport struct {
	Models     []idmap.Pair `json:"models"`
	Strategies []idmap.Pair `json:"strategies"`
}

func printMappingsJSON(w io.Writer) error {
	data, err := json.MarshalIndent(mappingsReport{
		Models:     idmap.Models(),
		Strategies: idmap.Strategies(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mappings: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write mappings: %w", err)
	}
	return nil
}

func printMappingsTable(w io.Writer) {
	printPairs(w, "Models", idmap.Models())
	fmt.Fprintln(w) //nolint:errcheck
	printPairs(w, "Strategies", idmap.Strategies())
}

func printPairs(w io.Writer, title string, pairs []idmap.Pair) {
	width := 0
	for _, p := range pairs {
		width = max(width, runewidth.StringWidth(p.Raw))
	}

	fmt.Fprintf(w, "%s (%d):\n", title, len(pairs)) //nolint:errcheck
	for _, p := range pairs {
		fmt.Fprintf(w, "  %s  → %s\n", padRight(p.Raw, width), p.Canonical) //nolint:errcheck
	}
}
