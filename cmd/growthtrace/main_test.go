package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFromFlags(t *testing.T) {
	out, err := execute(t, "run", "--plot=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Scenario flags")
	assert.Contains(t, out, "init    len 5, cap 0 -> 5")
	assert.Contains(t, out, "append #0: len 6, cap 5 -> 7")
	assert.Contains(t, out, "append #2: len 8, cap 7 -> 10")
	assert.NotContains(t, out, "capacity per append")
}

func TestRunPlots(t *testing.T) {
	out, err := execute(t, "run", "--initial", "0", "--appends", "200", "--allocator", "arena")
	require.NoError(t, err)
	assert.Contains(t, out, "arena")
	assert.Contains(t, out, "636/4096 slots in 1 chunks (15.5%)")
	assert.Contains(t, out, "425 slots")
	assert.Contains(t, out, "capacity per append")
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, "run", "--allocator", "pool")
	require.Error(t, err)

	_, err = execute(t, "run", "default")
	require.ErrorContains(t, err, "require --config")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInitConfigThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")

	out, err := execute(t, "init-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 5 scenarios")

	_, err = execute(t, "init-config", path)
	require.ErrorContains(t, err, "already exists")
	_, err = execute(t, "init-config", "--force", path)
	require.NoError(t, err)

	out, err = execute(t, "run", "--config", path, "--plot=false", "reserved")
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario reserved")
	assert.Contains(t, out, "reserve len 0, cap 0 -> 64")

	out, err = execute(t, "run", "--config", path, "--plot=false", "--all")
	require.NoError(t, err)
	for _, name := range []string{"default", "from-empty", "reserved", "arena", "mmap-shrink"} {
		assert.Contains(t, out, "Scenario "+name)
	}

	_, err = execute(t, "run", "--config", path, "nonexistent")
	require.ErrorContains(t, err, "not found")
}

func TestFormula(t *testing.T) {
	out, err := execute(t, "formula", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "1 2 3 4 6 9 13 19 28\n")

	out, err = execute(t, "formula", "--plot", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity per reallocation")

	_, err = execute(t, "formula", "-3")
	require.Error(t, err)
}
