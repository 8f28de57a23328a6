package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithoutTerminalKeepsLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sandbox.log")
	t.Setenv("SANDBOX_LOG_FILE", logPath)
	t.Setenv("SANDBOX_SCENE", "")
	t.Setenv("LOG_LEVEL", "info")

	// A regular file is not a terminal, so raw mode fails.
	in, err := os.Create(filepath.Join(dir, "stdin"))
	require.NoError(t, err)
	defer in.Close()

	var out, errOut bytes.Buffer
	require.Equal(t, 1, run(in, &out, &errOut))
	require.Contains(t, errOut.String(), "raw mode")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logged), "failed to enable raw mode")
}

func TestRunMissingScene(t *testing.T) {
	t.Setenv("SANDBOX_SCENE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SANDBOX_LOG_FILE", "")

	var errOut bytes.Buffer
	require.Equal(t, 1, run(os.Stdin, &bytes.Buffer{}, &errOut))
	require.Contains(t, errOut.String(), "failed to load scene")
}
