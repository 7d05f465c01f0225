package records

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Clear removes every record file (*.json) directly inside dir so that the
// next Write produces exactly the current record set. Subdirectories and
// other files are left alone. A missing dir is created. It returns the names
// of the removed files.
//
// Clear must complete before the first record of a run is written.
func Clear(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		slog.Debug("Removed record", "path", path)
		removed = append(removed, entry.Name())
	}

	return removed, nil
}
