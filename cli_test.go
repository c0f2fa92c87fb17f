package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-table/source"
)

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		debugLog, outPath, genOut = "", "", "users.csv"
		genCount, genSeed = 0, 0
	})
}

func TestExecute_ClosesLogOnFailure(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "debug.log")

	err := execute([]string{"export", "--debug", logPath,
		"--out", filepath.Join(dir, "out.csv"), filepath.Join(dir, "missing.csv")})
	require.Error(t, err)
	assert.Nil(t, loggingCleanup)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "missing.csv", "error is flushed before the log closes")
}

func TestExecute_Generate(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "users.csv")

	require.NoError(t, execute([]string{"generate", "--count", "3", "--seed", "7",
		"--debug", filepath.Join(dir, "debug.log"), "--out", out}))
	assert.Nil(t, loggingCleanup)

	ds, err := source.LoadAuto(out, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}
