package clique_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvcover/clique"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

func mustGraph(t testing.TB, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

func cycle4(t testing.TB) *core.Graph {
	return mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3}, core.Edge{From: 3, To: 0})
}

func complete(t testing.TB, n int) *core.Graph {
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, core.Edge{From: u, To: v})
		}
	}

	return mustGraph(t, n, edges...)
}

func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, core.Edge{From: u, To: v})
			}
		}
	}

	return mustGraph(t, n, edges...)
}

// keys renders each set sorted, so results can be compared ignoring order.
func keys(sets []*vset.Set) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = fmt.Sprint(s.Sorted())
	}

	return out
}

func TestValidation(t *testing.T) {
	_, err := clique.Maximal(nil)
	require.ErrorIs(t, err, clique.ErrGraphNil)
	require.ErrorIs(t, err, core.ErrGraphNil)

	d, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	_, err = clique.All(d)
	require.ErrorIs(t, err, clique.ErrDirected)
	require.ErrorIs(t, err, core.ErrDirected)
	_, err = clique.Maximum(d)
	require.ErrorIs(t, err, clique.ErrDirected)

	_, err = clique.Maximal(cycle4(t), clique.WithLimit(-1))
	require.ErrorIs(t, err, clique.ErrOptionViolation)
}

func TestMaximal_Cycle4(t *testing.T) {
	got, err := clique.Maximal(cycle4(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"[0 1]", "[0 3]", "[1 2]", "[2 3]"}, keys(got))

	best, err := clique.Maximum(cycle4(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, best.Vertices(), "first maximum found wins")
}

func TestMaximal_K4(t *testing.T) {
	got, err := clique.Maximal(complete(t, 4))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, got[0].Sorted())
}

// TestSingletonsAreCliques pins the convention for edgeless graphs.
func TestSingletonsAreCliques(t *testing.T) {
	g := mustGraph(t, 5)
	got, err := clique.Maximal(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"[0]", "[1]", "[2]", "[3]", "[4]"}, keys(got))

	best, err := clique.Maximum(g)
	require.NoError(t, err)
	assert.Equal(t, 1, best.Len())
}

func TestEmptyGraph(t *testing.T) {
	g := mustGraph(t, 0)
	all, err := clique.All(g)
	require.NoError(t, err)
	assert.Empty(t, all)

	maximal, err := clique.Maximal(g)
	require.NoError(t, err)
	assert.Empty(t, maximal)

	best, err := clique.Maximum(g)
	require.NoError(t, err)
	assert.Equal(t, 0, best.Len())
}

func TestAll_ReportsNonMaximal(t *testing.T) {
	got, err := clique.All(complete(t, 3))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"[0]", "[0 1]", "[0 1 2]", "[0 2]", "[1]", "[1 2]", "[2]"},
		keys(got))

	c4, err := clique.All(cycle4(t))
	require.NoError(t, err)
	assert.Len(t, c4, 8, "four singletons and four edges")
}

// TestEveryReportedSetIsAClique checks pairwise adjacency on random graphs.
func TestEveryReportedSetIsAClique(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		g := randomGraph(t, rng, 9, 0.5)

		all, err := clique.All(g)
		require.NoError(t, err)
		maximal, err := clique.Maximal(g)
		require.NoError(t, err)

		for _, c := range append(all, maximal...) {
			require.True(t, clique.IsClique(g, c.Vertices()), "not a clique: %v", c)
		}
		// every maximal clique is also reached by the exhaustive search
		allKeys := keys(all)
		for _, k := range keys(maximal) {
			require.Contains(t, allKeys, k)
		}
	}
}

// TestMaximal_AgreesWithGonum cross-checks against gonum's Bron–Kerbosch.
func TestMaximal_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		n := 4 + rng.Intn(9)
		g := randomGraph(t, rng, n, 0.45)

		ug := simple.NewUndirectedGraph()
		for v := 0; v < n; v++ {
			ug.AddNode(simple.Node(v))
		}
		for _, e := range g.Edges() {
			ug.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
		want := gonumKeys(topo.BronKerbosch(ug))

		got, err := clique.Maximal(g)
		require.NoError(t, err)
		require.ElementsMatch(t, want, keys(got), "graph %d: %v", i, g.Edges())
	}
}

func gonumKeys(cliques [][]graph.Node) []string {
	out := make([]string, len(cliques))
	for i, c := range cliques {
		ids := make([]int, len(c))
		for j, node := range c {
			ids[j] = int(node.ID())
		}
		sort.Ints(ids)
		out[i] = fmt.Sprint(ids)
	}

	return out
}

func TestOptions(t *testing.T) {
	g := mustGraph(t, 5)

	limited, err := clique.Maximal(g, clique.WithLimit(2))
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	var seen [][]int
	_, err = clique.Maximal(g, clique.WithOnClique(func(vs []int) error {
		seen = append(seen, vs)
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, seen, 5)

	stop := errors.New("stop")
	_, err = clique.All(g, clique.WithOnClique(func([]int) error { return stop }))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.Maximal(g, clique.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze(t *testing.T) {
	k4 := complete(t, 4)

	sum, err := clique.Analyze(k4, clique.Exhaustive, 3)
	require.NoError(t, err)
	assert.Equal(t, 15, sum.Count)
	assert.Equal(t, 4, sum.MaxSize)
	assert.Len(t, sum.Cliques, 5, "four triangles and K4 itself")

	sum, err = clique.Analyze(k4, clique.Pivot, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
	assert.Equal(t, clique.Pivot, sum.Algorithm)

	_, err = clique.Analyze(k4, clique.Algorithm(9), 3)
	require.ErrorIs(t, err, clique.ErrUnknownAlgorithm)
	_, err = clique.Analyze(k4, clique.Pivot, -1)
	require.ErrorIs(t, err, clique.ErrOptionViolation)
}

func TestIsClique(t *testing.T) {
	g := cycle4(t)
	assert.True(t, clique.IsClique(g, []int{0, 1}))
	assert.True(t, clique.IsClique(g, []int{2}))
	assert.True(t, clique.IsClique(g, nil))
	assert.False(t, clique.IsClique(g, []int{0, 2}))
	assert.False(t, clique.IsClique(g, []int{0, 9}))
	assert.False(t, clique.IsClique(nil, []int{0}))
}
