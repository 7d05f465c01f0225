package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingsCommand_Text(t *testing.T) {
	out, err := runRoot(t, "mappings")
	require.NoError(t, err)

	assert.Contains(t, out, "Models (16):\n")
	assert.Contains(t, out, "Strategies (17):\n")
	assert.Contains(t, out, "  LLaDA-1.0-8B        → llada10\n")
	assert.Contains(t, out, "→ confidence-threshold-speed\n")
}

func TestMappingsCommand_JSON(t *testing.T) {
	out, err := runRoot(t, "mappings", "--format", "json")
	require.NoError(t, err)

	var report mappingsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Models, 16)
	assert.Len(t, report.Strategies, 17)
	assert.Equal(t, "DiffuCoder-7B", report.Models[0].Raw)
	assert.Equal(t, "diffucoder", report.Models[0].Canonical)
}

func TestMappingsCommand_InvalidFormat(t *testing.T) {
	_, err := runRoot(t, "mappings", "-f", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
