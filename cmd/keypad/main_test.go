package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisem/keypad"
)

const example = "029A\n980A\n179A\n456A\n379A\n"

// run executes the CLI with args and stdin, isolated from any user config.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestScoreStdin(t *testing.T) {
	out, _, err := run(t, example, "score")
	require.NoError(t, err)
	assert.Equal(t, "robots=2: 126384\nrobots=25: 154115708116294\n", out)
}

func TestScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o644))

	out, _, err := run(t, "", "score", "--robots", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "robots=2: 126384\n", out)
}

func TestScoreParallelAndMetrics(t *testing.T) {
	out, errOut, err := run(t, example, "score", "--robots", "2,25", "--parallel", "--metrics")
	require.NoError(t, err)
	assert.Equal(t, "robots=2: 126384\nrobots=25: 154115708116294\n", out)
	assert.Contains(t, errOut, "keypad_cache_fills_total")
}

func TestScoreCacheDB(t *testing.T) {
	db := filepath.Join(t.TempDir(), "costs.db")
	for i := 0; i < 2; i++ {
		out, _, err := run(t, example, "score", "--robots", "25", "--cache-db", db)
		require.NoError(t, err)
		assert.Equal(t, "robots=25: 154115708116294\n", out)
	}
	_, err := os.Stat(db)
	assert.NoError(t, err)
}

func TestScoreConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "keypad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("robots: [0, 1]\n"), 0o644))

	out, _, err := run(t, "029A\n", "--config", cfg, "score")
	require.NoError(t, err)
	assert.Equal(t, "robots=0: 348\nrobots=1: 812\n", out)
}

func TestScoreInvalidCode(t *testing.T) {
	_, _, err := run(t, "029A\n02X9A\n", "score", "--robots", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, keypad.ErrInvalidCode)
}

func TestCost(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"cost", "A", "0", "--levels", "0"}, "1"},
		{[]string{"cost", "A", "0", "--levels", "1"}, "2"},
		{[]string{"cost", "7", "7", "--levels", "26"}, "1"},
		{[]string{"cost", "A", "<", "--pad", "directional", "--levels", "1"}, "4"},
		{[]string{"cost", "A", "<", "--pad", "dir", "--robots", "0"}, "4"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "", tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want+"\n", out, "%v", tt.args)
	}
}

func TestCostErrors(t *testing.T) {
	_, _, err := run(t, "", "cost", "A", "^")
	assert.ErrorIs(t, err, keypad.ErrUnknownButton)

	_, _, err = run(t, "", "cost", "AB", "0")
	assert.Error(t, err)

	_, _, err = run(t, "", "cost", "A", "0", "--pad", "qwerty")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "", "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "example robots=25: 154115708116294 ✅")
	assert.NotContains(t, out, "❌")
}
