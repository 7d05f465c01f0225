package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClear(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"llada10.json", "orphan.json", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.json"), 0o755))

	removed, err := Clear(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"llada10.json", "orphan.json"}, removed)

	assert.NoFileExists(t, filepath.Join(dir, "llada10.json"))
	assert.NoFileExists(t, filepath.Join(dir, "orphan.json"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))
	assert.DirExists(t, filepath.Join(dir, "archive.json"))
}

func TestClear_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "leaderboard")

	removed, err := Clear(dir)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.DirExists(t, dir)
}

func TestClearThenWrite_RemovesOrphans(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(dir, sampleAggregation())
	require.NoError(t, err)

	next := sampleAggregation()
	delete(next, "dream")

	_, err = Clear(dir)
	require.NoError(t, err)
	_, err = Write(dir, next)
	require.NoError(t, err)

	summaries, err := ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "llada10", summaries[0].Model)
}
