package matching_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/bipartite"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/matching"
)

func mustGraph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

func TestHopcroftKarp_Reroutes(t *testing.T) {
	// 0 takes 2 first; the second phase moves it to 3 so 1 can take 2.
	g := mustGraph(t, 4, core.Edge{From: 0, To: 2}, core.Edge{From: 0, To: 3}, core.Edge{From: 1, To: 2})
	m, err := matching.HopcroftKarp(g, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 2, m.Phases)
	assert.Equal(t, []core.Edge{{From: 0, To: 3}, {From: 1, To: 2}}, m.Pairs())
	require.NoError(t, m.Validate(g))

	p, ok := m.Partner(2)
	assert.True(t, ok)
	assert.Equal(t, 1, p)
	p, ok = m.Partner(0)
	assert.True(t, ok)
	assert.Equal(t, 3, p)
	_, ok = m.Partner(7)
	assert.False(t, ok)
}

func TestMaximumBipartite_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		size int
	}{
		{"cycle4", mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3}, core.Edge{From: 3, To: 0}), 2},
		{"star", mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 0, To: 2}, core.Edge{From: 0, To: 3}), 1},
		{"edgeless", mustGraph(t, 5), 0},
		{"empty", mustGraph(t, 0), 0},
		{"path5", mustGraph(t, 5, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3}, core.Edge{From: 3, To: 4}), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, sides, err := matching.MaximumBipartite(tc.g)
			require.NoError(t, err)
			require.NotNil(t, sides)
			assert.Equal(t, tc.size, m.Size)
			require.NoError(t, m.Validate(tc.g))
		})
	}
}

func TestMaximumBipartite_Star(t *testing.T) {
	g := mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 0, To: 2}, core.Edge{From: 0, To: 3})
	m, _, err := matching.MaximumBipartite(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, m.Pairs())
	assert.Equal(t, []int{0, matching.Unmatched, matching.Unmatched}, m.PairRight)
}

// TestHopcroftKarp_MatchesAugmentingPathOracle compares against a simple
// single-path augmenting search on random bipartite graphs.
func TestHopcroftKarp_MatchesAugmentingPathOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 40; round++ {
		nl, nr := 1+rng.Intn(7), 1+rng.Intn(7)
		g, err := core.NewGraph(nl + nr)
		require.NoError(t, err)
		left, right := make([]int, nl), make([]int, nr)
		for i := range left {
			left[i] = i
		}
		for j := range right {
			right[j] = nl + j
		}
		for _, u := range left {
			for _, v := range right {
				if rng.Float64() < 0.35 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}

		m, err := matching.HopcroftKarp(g, left, right)
		require.NoError(t, err)
		require.NoError(t, m.Validate(g))
		require.Equal(t, kuhn(g, left, right), m.Size, "round %d", round)

		greedy, err := matching.Greedy(g)
		require.NoError(t, err)
		require.LessOrEqual(t, len(greedy), m.Size)
		require.GreaterOrEqual(t, 2*len(greedy), m.Size, "maximal matching is a 2-approximation")
	}
}

// kuhn is the textbook O(V·E) augmenting-path matcher.
func kuhn(g *core.Graph, left, right []int) int {
	owner := make(map[int]int)
	var try func(u int, seen map[int]bool) bool
	try = func(u int, seen map[int]bool) bool {
		for _, v := range right {
			if !g.HasEdge(u, v) || seen[v] {
				continue
			}
			seen[v] = true
			if w, ok := owner[v]; !ok || try(w, seen) {
				owner[v] = u
				return true
			}
		}
		return false
	}
	size := 0
	for _, u := range left {
		if try(u, map[int]bool{}) {
			size++
		}
	}

	return size
}

func TestHopcroftKarp_Errors(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{From: 0, To: 1})

	_, err := matching.HopcroftKarp(nil, nil, nil)
	require.ErrorIs(t, err, core.ErrGraphNil)

	d, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	_, err = matching.HopcroftKarp(d, []int{0}, []int{1})
	require.ErrorIs(t, err, matching.ErrDirected)

	_, err = matching.HopcroftKarp(g, []int{0, 1}, []int{1})
	require.ErrorIs(t, err, matching.ErrOverlappingSides)
	_, err = matching.HopcroftKarp(g, []int{0, 0}, []int{1})
	require.ErrorIs(t, err, matching.ErrOverlappingSides)
	_, err = matching.HopcroftKarp(g, []int{0}, []int{3})
	require.ErrorIs(t, err, matching.ErrVertexOutOfRange)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = matching.HopcroftKarp(g, []int{0}, []int{1}, matching.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	tri := mustGraph(t, 3, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 0})
	_, _, err = matching.MaximumBipartite(tri)
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)
}

func TestValidate_DetectsTampering(t *testing.T) {
	g := mustGraph(t, 4, core.Edge{From: 0, To: 2}, core.Edge{From: 0, To: 3}, core.Edge{From: 1, To: 2})
	m, err := matching.HopcroftKarp(g, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)

	broken := *m
	broken.PairRight = []int{1, matching.Unmatched}
	require.ErrorIs(t, broken.Validate(g), matching.ErrInconsistentPairing)

	swapped := *m
	swapped.PairLeft = []int{0, 1}
	swapped.PairRight = []int{0, 1}
	require.ErrorIs(t, swapped.Validate(g), matching.ErrNotAnEdge)

	wrongSize := *m
	wrongSize.Size = 1
	require.ErrorIs(t, wrongSize.Validate(g), matching.ErrInconsistentPairing)

	require.ErrorIs(t, m.Validate(nil), matching.ErrGraphNil)
}

func TestGreedy(t *testing.T) {
	path := mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3})
	got, err := matching.Greedy(path)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 2, To: 3}}, got)

	star := mustGraph(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 0, To: 2}, core.Edge{From: 0, To: 3})
	got, err = matching.Greedy(star)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, got)

	got, err = matching.Greedy(mustGraph(t, 0))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = matching.Greedy(nil)
	require.ErrorIs(t, err, matching.ErrGraphNil)
	assert.EqualError(t, err, "Greedy: matching: core: graph is nil")
}

// TestGreedy_IsMaximal checks that no edge joins two free vertices.
func TestGreedy_IsMaximal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 30; round++ {
		n := rng.Intn(12)
		g, err := core.NewGraph(n)
		require.NoError(t, err)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Intn(3) == 0 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}
		pairs, err := matching.Greedy(g)
		require.NoError(t, err)

		used := make([]bool, n)
		for _, e := range pairs {
			require.True(t, g.HasEdge(e.From, e.To))
			require.False(t, used[e.From] || used[e.To], "endpoints must be disjoint")
			used[e.From], used[e.To] = true, true
		}
		for _, e := range g.Edges() {
			require.True(t, used[e.From] || used[e.To], "edge %v joins two free vertices", e)
		}
	}
}
