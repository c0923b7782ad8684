package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/builder"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		recipe string
		wantV  int
		wantE  int
	}{
		{"empty:3", 3, 0},
		{"path:4", 4, 3},
		{"cycle:5", 5, 5},
		{"star:4", 4, 3},
		{"wheel:5", 5, 8},
		{"complete:4", 4, 6},
		{"kbip:2,3", 5, 6},
		{"sparse:6,1", 6, 15},
		{"bipartite:2,2,1", 4, 4},
		{"regular:6,2", 6, 6},
		{"cycle:4 + star:3", 7, 6},
		{"CYCLE:3", 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.recipe, func(t *testing.T) {
			g, err := generate(tc.recipe, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		recipe string
		want   error
	}{
		{"hexagon:6", errBadGenerator},
		{"cycle", errBadGenerator},
		{"cycle:x", errBadGenerator},
		{"cycle:4,5", errBadGenerator},
		{"sparse:4,abc", errBadGenerator},
		{"kbip:2", errBadGenerator},
		{"cycle:2", builder.ErrTooFewVertices},
		{"sparse:4,2", builder.ErrInvalidProbability},
	}
	for _, tc := range tests {
		t.Run(tc.recipe, func(t *testing.T) {
			_, err := generate(tc.recipe, 1)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadGraph_Stdin(t *testing.T) {
	g, err := readGraph(strings.NewReader("order: 3\nedges: [[0, 1], [1, 2]]\n"), "-")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.EdgeCount())

	_, err = readGraph(nil, "/nonexistent/graph.yaml")
	assert.Error(t, err)
}
