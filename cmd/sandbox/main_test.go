package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteFlushesLogOnFailure(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "logs", "sandbox-")
	cfgPath := filepath.Join(dir, "sandbox.yaml")
	yaml := fmt.Sprintf("logging:\n  output: file\n  path: %q\n", base)
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	// the parent directory does not exist, so writing the config fails
	out := filepath.Join(dir, "missing", "out.yaml")
	err := execute([]string{"--config", cfgPath, "config", out})
	require.Error(t, err)
	assert.Nil(t, cleanup)

	matches, err := filepath.Glob(base + "*.log")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logging to file")
	assert.Contains(t, string(data), "Command failed")
}
