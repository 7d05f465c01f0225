package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	// Paths
	assertEqual(t, "Paths.Table", "table.csv", cfg.Paths.Table)
	assertEqual(t, "Paths.Output", "data/leaderboard", cfg.Paths.Output)

	// Report
	assertEqual(t, "Report.Format", "text", cfg.Report.Format)
	assertBoolPtr(t, "Report.Quiet", false, cfg.Report.Quiet)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
paths:
  table: "results/table.tsv"
  output: "site/data/leaderboard"
report:
  format: json
  quiet: true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Paths.Table", "results/table.tsv", cfg.Paths.Table)
	assertEqual(t, "Paths.Output", "site/data/leaderboard", cfg.Paths.Output)
	assertEqual(t, "Report.Format", "json", cfg.Report.Format)
	assertBoolPtr(t, "Report.Quiet", true, cfg.Report.Quiet)

	root, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "Root", root, cfg.Root)
	assertEqual(t, "TablePath()", filepath.Join(root, "results", "table.tsv"), cfg.TablePath())
	assertEqual(t, "OutputDir()", filepath.Join(root, "site", "data", "leaderboard"), cfg.OutputDir())
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
paths:
  output: "/srv/leaderboard"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Paths.Table", DefaultTablePath, cfg.Paths.Table)
	assertEqual(t, "OutputDir()", "/srv/leaderboard", cfg.OutputDir())
	assertEqual(t, "Report.Format", DefaultFormat, cfg.Report.Format)
	assertBoolPtr(t, "Report.Quiet", false, cfg.Report.Quiet)
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Should be identical to New(), rooted at dir
	defaults := New()
	assertEqual(t, "Paths.Table", defaults.Paths.Table, cfg.Paths.Table)
	assertEqual(t, "Paths.Output", defaults.Paths.Output, cfg.Paths.Output)
	assertEqual(t, "Report.Format", defaults.Report.Format, cfg.Report.Format)

	root, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "TablePath()", filepath.Join(root, "table.csv"), cfg.TablePath())
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
paths:
  table: [not valid yaml
    this is broken
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_WalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, `
paths:
  table: found-it.tsv
`)

	child := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Paths.Table", "found-it.tsv", cfg.Paths.Table)
	// Other defaults still populated
	assertEqual(t, "Paths.Output", "data/leaderboard", cfg.Paths.Output)
	// Relative paths resolve against the directory holding the file
	absRoot, err := filepath.Abs(root)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "TablePath()", filepath.Join(absRoot, "found-it.tsv"), cfg.TablePath())
}

func TestResolve(t *testing.T) {
	cfg := New()
	cfg.Root = "/project"

	assertEqual(t, "relative", filepath.Join("/project", "x.tsv"), cfg.Resolve("x.tsv"))
	assertEqual(t, "absolute", "/elsewhere/x.tsv", cfg.Resolve("/elsewhere/x.tsv"))
}

// --- test helpers ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertBoolPtr(t *testing.T, field string, want bool, got *bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want *%v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}
