package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app with the given arguments and captured streams.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"lvcover"}, args...))

	return stdout.String(), stderr.String(), err
}

func TestCoverCommand(t *testing.T) {
	out, _, err := run(t, "", "cover", "--gen", "cycle:4", "--strategy", "konig")
	require.NoError(t, err)
	assert.Contains(t, out, "konig")
	assert.Contains(t, out, "{0, 2}")
	assert.Contains(t, out, "Matching:")

	out, _, err = run(t, "", "cover", "--gen", "star:4", "-s", "approx")
	require.NoError(t, err)
	assert.Contains(t, out, "{0, 1}")
	assert.Contains(t, out, "false")
}

func TestCoverCommand_AllStrategies(t *testing.T) {
	out, stderr, err := run(t, "", "--log", "warning", "cover", "--gen", "complete:4", "--strategy", "all")
	require.NoError(t, err)
	for _, name := range []string{"exact", "konig", "approx", "maxsat"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "same side")
	assert.Contains(t, stderr, "strategy konig")
}

func TestCoverCommand_Errors(t *testing.T) {
	_, _, err := run(t, "", "cover")
	assert.ErrorIs(t, err, errNoSource)

	_, _, err = run(t, "", "cover", "--gen", "path:3", "--graph", "-")
	assert.ErrorIs(t, err, errBothSources)

	_, _, err = run(t, "", "cover", "--gen", "path:3", "--strategy", "magic")
	assert.Error(t, err)
}

func TestCliqueCommand(t *testing.T) {
	out, _, err := run(t, "", "clique", "--gen", "wheel:5", "--min", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "pivot")
	assert.Contains(t, out, "Max size:")
	assert.Contains(t, out, "{0, 1, 2}")

	_, _, err = run(t, "", "clique", "--gen", "path:3", "--algorithm", "greedy")
	assert.Error(t, err)
}

func TestIndependentCommand(t *testing.T) {
	out, _, err := run(t, "", "mis", "--gen", "star:4")
	require.NoError(t, err)
	assert.Contains(t, out, "{1, 2, 3}")
	assert.Contains(t, out, "{0}")
}

func TestBipartiteCommand(t *testing.T) {
	out, _, err := run(t, "", "bipartite", "--gen", "cycle:6")
	require.NoError(t, err)
	assert.Contains(t, out, "[0 2 4]")
	assert.Contains(t, out, "[1 3 5]")

	_, _, err = run(t, "", "bipartite", "--gen", "cycle:5")
	assert.Error(t, err)
}

func TestGenerateThenRead(t *testing.T) {
	doc, _, err := run(t, "", "generate", "--gen", "sparse:8,0.4", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, doc, "order: 8")

	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	fromFile, _, err := run(t, "", "mis", "--graph", path)
	require.NoError(t, err)
	fromStdin, _, err := run(t, doc, "mis", "--graph", "-")
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromStdin)
}
