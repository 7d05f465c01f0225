package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// textReporter prints the run summary for humans. File lines are buffered
// so the name column can be padded to the widest file name.
type textReporter struct {
	w      io.Writer
	dryRun bool
	files  []fileLine
}

type fileLine struct {
	name       string
	strategies int
}

func newTextReporter(w io.Writer, dryRun bool) *textReporter {
	return &textReporter{w: w, dryRun: dryRun}
}

func (r *textReporter) Generated(count int, input string) {
	verb := "Generated"
	if r.dryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(r.w, "%s %d JSON files from %s\n", verb, count, input) //nolint:errcheck
}

func (r *textReporter) Skipped(models, strategies []string) {
	if len(models) > 0 {
		fmt.Fprintf(r.w, "Skipped models (unmapped): %s\n", formatSet(models)) //nolint:errcheck
	}
	if len(strategies) > 0 {
		fmt.Fprintf(r.w, "Skipped strategies (unmapped): %s\n", formatSet(strategies)) //nolint:errcheck
	}
}

func (r *textReporter) File(name string, strategies int) {
	r.files = append(r.files, fileLine{name: name, strategies: strategies})
}

// Flush writes the buffered per-file lines.
func (r *textReporter) Flush() {
	width := 0
	for _, f := range r.files {
		width = max(width, runewidth.StringWidth(f.name))
	}
	for _, f := range r.files {
		fmt.Fprintf(r.w, "  %s  %s\n", padRight(f.name, width), pluralize(f.strategies, "strategy", "strategies")) //nolint:errcheck
	}
	r.files = nil
}

// formatSet renders sorted names as {"a", "b"}.
func formatSet(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
