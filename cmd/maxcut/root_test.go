package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func writeSquare(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "square.txt")
	doc := "4\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "solve", writeSquare(t), "--algorithm", "exact,local")
	require.NoError(t, err)

	assert.Contains(t, out, "graph square: n=4 edges=4")
	assert.Contains(t, out, "exact      cut=4 partition=1 0 1 0")
	assert.Contains(t, out, "local      cut=4 partition=1 0 1 0")
	assert.NotContains(t, out, "warning")
}

func TestSolveCommandDrawings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dot")
	out, err := execute(t, "solve", writeSquare(t), "-a", "greedy", "--dot", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "greedy")
	assert.FileExists(t, filepath.Join(dir, "square_initial.dot"))
	assert.FileExists(t, filepath.Join(dir, "square_greedy.dot"))
}

func TestSolveCommandErrors(t *testing.T) {
	_, err := execute(t, "solve")
	require.Error(t, err)

	_, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, err = execute(t, "solve", writeSquare(t), "--algorithm", "qaoa")
	require.Error(t, err)
}

func TestGenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	out, err := execute(t, "generate", "--n", "8", "--p", "0.5", "--seed", "3", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n=8")
	assert.FileExists(t, path)

	out, err = execute(t, "solve", path, "--algorithm", "all")
	require.NoError(t, err)
	for _, name := range []string{"exact", "local", "greedy", "multistart", "maxsat"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "warning")
}

func TestGenerateRequiresOut(t *testing.T) {
	_, err := execute(t, "generate", "--n", "5")
	require.Error(t, err)
}

func TestGenerateIgnoresBatchSettings(t *testing.T) {
	t.Setenv("MAXCUT_MIN_N", "10")
	t.Setenv("MAXCUT_MAX_N", "1")
	t.Setenv("MAXCUT_PARALLELISM", "0")

	path := filepath.Join(t.TempDir(), "g.txt")
	out, err := execute(t, "generate", "--n", "6", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n=6")

	_, err = execute(t, "batch", "--out", t.TempDir())
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestGenerateValidatesProbability(t *testing.T) {
	t.Setenv("MAXCUT_P", "1.5")

	_, err := execute(t, "generate", "--n", "6", "--out", filepath.Join(t.TempDir(), "g.txt"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "batch",
		"--graphs", "2", "--min-n", "4", "--max-n", "6",
		"--algorithms", "exact,greedy", "--out", dir, "--parallelism", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "[graph_000_n")
	assert.Contains(t, out, "[graph_001_n")
	assert.FileExists(t, filepath.Join(dir, "results.csv"))
	assert.FileExists(t, filepath.Join(dir, "compare.csv"))
}

func TestBatchConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "maxcut.yaml")
	doc := "graphs: 1\nmin-n: 3\nmax-n: 3\nalgorithms: [local]\nrender: false\nout: " + dir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))

	out, err := execute(t, "batch", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[graph_000_n3] local")
	assert.NoFileExists(t, filepath.Join(dir, "graph_000_n3_initial.dot"))
}
