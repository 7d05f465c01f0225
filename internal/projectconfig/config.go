// Package projectconfig provides the ProjectConfig struct and loader for
// .leaderboard.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".leaderboard.yaml"

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultTablePath  = "table.csv"
	DefaultOutputDir  = "data/leaderboard"
	DefaultFormat     = "text"
	maxSearchDepth    = 10
	defaultConfigRoot = "."
)

// PathsConfig holds the input table and output directory, relative to the
// project root unless absolute.
type PathsConfig struct {
	Table  string `yaml:"table,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// ReportConfig holds console summary settings.
type ReportConfig struct {
	Format string `yaml:"format,omitempty"`
	Quiet  *bool  `yaml:"quiet,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .leaderboard.yaml.
type ProjectConfig struct {
	Paths  PathsConfig  `yaml:"paths,omitempty"`
	Report ReportConfig `yaml:"report,omitempty"`

	// Root is the directory holding the config file, or the directory Load
	// started from when no file was found.
	Root string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Table:  DefaultTablePath,
			Output: DefaultOutputDir,
		},
		Report: ReportConfig{
			Format: DefaultFormat,
			Quiet:  boolPtr(false),
		},
		Root: defaultConfigRoot,
	}
}

// Load finds .leaderboard.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults rooted at startDir with a nil
// error. Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", startDir, err)
	}

	cfg := New()
	cfg.Root = absDir

	data, root, err := findConfigFile(absDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, &fileCfg)
	cfg.Root = root
	return cfg, nil
}

// Resolve returns path joined to the project root unless it is absolute.
func (c *ProjectConfig) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

// TablePath is the resolved default input table path.
func (c *ProjectConfig) TablePath() string {
	return c.Resolve(c.Paths.Table)
}

// OutputDir is the resolved output directory.
func (c *ProjectConfig) OutputDir() string {
	return c.Resolve(c.Paths.Output)
}

// findConfigFile walks up from dir looking for .leaderboard.yaml and returns
// its contents and the directory it was found in. Returns os.ErrNotExist if
// no config file is found. Propagates real I/O errors (e.g. permission
// denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, string, error) {
	for i := 0; i < maxSearchDepth; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Table != "" {
		dst.Paths.Table = src.Paths.Table
	}
	if src.Paths.Output != "" {
		dst.Paths.Output = src.Paths.Output
	}

	// Report
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
	if src.Report.Quiet != nil {
		dst.Report.Quiet = src.Report.Quiet
	}
}

func boolPtr(b bool) *bool {
	return &b
}
