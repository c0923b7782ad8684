// Package independent builds complement graphs and solves maximum independent
// set by reduction to maximum clique.
//
// Reduction chain:
//
//	MIS(G)  = MaxClique(complement(G))
//	MVC(G)  = V \ MIS(G)
//
// Complement preserves vertex indices, so clique results refer directly to
// vertices of the input graph. The input graph is only ever read.
//
// Complexity: Complement is O(n²); the solvers inherit the exponential cost
// of clique.Maximum.
package independent

import (
	"fmt"

	"github.com/katalvlaran/lvcover/clique"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("independent: %w", core.ErrGraphNil)

	// ErrDirected is returned for directed input.
	ErrDirected = fmt.Errorf("independent: %w", core.ErrDirected)
)

// Complement returns a new undirected graph of the same order in which u–v is
// an edge iff u ≠ v and u–v is not an edge of g.
//
// Errors: ErrGraphNil, ErrDirected.
func Complement(g *core.Graph) (*core.Graph, error) {
	if err := validate("Complement", g); err != nil {
		return nil, err
	}
	adj := g.Snapshot()
	for u := range adj {
		for v := range adj[u] {
			adj[u][v] = u != v && !adj[u][v]
		}
	}

	return core.FromAdjacency(adj)
}

// MaximumIndependentSet returns a largest set of pairwise non-adjacent
// vertices, computed as the maximum clique of the complement. Options are
// forwarded to clique.Maximum.
//
// n == 0 yields an empty set; an edgeless graph yields every vertex.
func MaximumIndependentSet(g *core.Graph, opts ...clique.Option) (*vset.Set, error) {
	comp, err := Complement(g)
	if err != nil {
		return nil, fmt.Errorf("MaximumIndependentSet: %w", err)
	}
	mis, err := clique.Maximum(comp, opts...)
	if err != nil {
		return nil, fmt.Errorf("MaximumIndependentSet: %w", err)
	}

	return mis, nil
}

// MinimumVertexCover returns V \ MaximumIndependentSet(g) in ascending order.
// Every edge keeps at least one endpoint in the result, because both endpoints
// outside it would put two adjacent vertices in the independent set.
func MinimumVertexCover(g *core.Graph, opts ...clique.Option) (*vset.Set, error) {
	mis, err := MaximumIndependentSet(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("MinimumVertexCover: %w", err)
	}
	n := g.Order()
	in := mis.Mask(n)
	cover, err := vset.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if !in[v] {
			cover.Add(v)
		}
	}

	return cover, nil
}

// IsIndependent reports whether no two vertices of vs are adjacent in g.
// Out-of-range vertices make the answer false.
func IsIndependent(g *core.Graph, vs []int) bool {
	if g == nil {
		return false
	}
	n := g.Order()
	for i, u := range vs {
		if u < 0 || u >= n {
			return false
		}
		for _, v := range vs[i+1:] {
			if g.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

func validate(method string, g *core.Graph) error {
	return core.CheckUndirected(method, g, ErrGraphNil, ErrDirected)
}
