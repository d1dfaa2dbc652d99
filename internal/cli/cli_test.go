package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommandEasy(t *testing.T) {
	out, err := runCommand(t, "solve", "--puzzle", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, "easy puzzle (30 givens)")
	assert.Contains(t, out, "solved in")
}

func TestSolveCommandTechniquesOff(t *testing.T) {
	out, err := runCommand(t, "solve", "--puzzle", "easy",
		"--no-mrv", "--no-forward-checking", "--no-ac3", "--no-lcv")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")
}

func TestSolveCommandSaves(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "solve", "--puzzle", "easy", "--save-dir", dir)
	require.NoError(t, err)

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, ".json", filepath.Ext(ents[0].Name()))

	out, err := runCommand(t, "list", "--save-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "solved")
}

func TestSolveCommandUnknownPuzzle(t *testing.T) {
	_, err := runCommand(t, "solve", "--puzzle", "medium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown puzzle")
}

func TestUniqueCommand(t *testing.T) {
	out, err := runCommand(t, "unique", "--puzzle", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, "exactly one solution")
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	_, err := runCommand(t, "solve", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestListEmptyDir(t *testing.T) {
	out, err := runCommand(t, "list", "--save-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "no saved results")
}
