package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRandomCommandWritesText(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none")

	out, err := runCLI(t, "random", "--config", missing, "-n", "5", "--seed", "3", "-w", "3", "-f", "txt", "-o", "")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.LessOrEqual(t, len(lines), 3)
	for _, line := range lines {
		assert.LessOrEqual(t, len(strings.Fields(line)), 3)
	}
}

func TestRandomCommandIsDeterministicForSeed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none")
	args := []string{"random", "--config", missing, "-n", "8", "--seed", "21", "-w", "0", "-f", "svg", "-o", ""}

	first, err := runCLI(t, args...)
	require.NoError(t, err)
	second, err := runCLI(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "<svg")
}

func TestRandomCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art.png")

	_, err := runCLI(t, "random", "--config", filepath.Join(dir, "none"), "-n", "4", "--seed", "8", "-w", "0", "-f", "png", "-o", path)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRandomCommandLeavesNoFileForEmptyBoard(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "shapegridrc")
	require.NoError(t, os.WriteFile(config, []byte("density: {5: 0}\n"), 0644))
	path := filepath.Join(dir, "art.svg")

	_, err := runCLI(t, "random", "--config", config, "-n", "5", "--seed", "4", "-w", "5", "-f", "svg", "-o", path)

	assert.ErrorIs(t, err, ErrEmptyExport)
	assert.NoFileExists(t, path)
}

func TestRandomCommandReportsUnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "art.svg")

	_, err := runCLI(t, "random", "--config", filepath.Join(t.TempDir(), "none"), "-n", "5", "--seed", "4", "-w", "0", "-f", "svg", "-o", path)

	assert.ErrorContains(t, err, "write output")
}

func TestRandomCommandRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "random", "--config", filepath.Join(t.TempDir(), "none"), "-n", "5", "--seed", "1", "-w", "0", "-f", "gif", "-o", "")

	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "shapegrid "+version+"\n", out)
}
