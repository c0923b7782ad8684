// SPDX-License-Identifier: MIT
//
// File: strategies.go
// Role: The four vertex cover constructions. Each validates its input, reads
// a snapshot of the graph and returns a fresh vset.Set of capacity n.

package cover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcover/bipartite"
	"github.com/katalvlaran/lvcover/clique"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/independent"
	"github.com/katalvlaran/lvcover/matching"
	"github.com/katalvlaran/lvcover/vset"
)

// ExactViaMIS returns V \ MIS(g), a minimum vertex cover in ascending order.
//
// Errors: ErrGraphNil, ErrDirected.
// Complexity: exponential (maximum clique of the complement).
func ExactViaMIS(g *core.Graph) (*vset.Set, error) {
	return exactViaMIS(context.Background(), g)
}

// BipartiteKonig returns a minimum vertex cover of a bipartite graph, built
// from a maximum matching by König's alternating search. Left vertices come
// first, then right ones, each in ascending order.
//
// Errors: ErrGraphNil, ErrDirected, bipartite.ErrNotBipartite (via *bipartite.ConflictError).
// Complexity: O(E·√V) for the matching plus O(n²) for the search.
func BipartiteKonig(g *core.Graph) (*vset.Set, error) {
	c, _, err := konig(context.Background(), g)

	return c, err
}

// Approx returns both endpoints of every edge in matching.Greedy(g), in pick
// order. The result is a cover because the matching is maximal, and at most
// twice the minimum because the matched edges are disjoint.
//
// Errors: ErrGraphNil, ErrDirected.
// Complexity: O(n²).
func Approx(g *core.Graph) (*vset.Set, error) {
	c, _, err := approx(g)

	return c, err
}

func exactViaMIS(ctx context.Context, g *core.Graph) (*vset.Set, error) {
	if err := validate("ExactViaMIS", g); err != nil {
		return nil, err
	}
	c, err := independent.MinimumVertexCover(g, clique.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("ExactViaMIS: %w", err)
	}

	return c, nil
}

// queued is one entry of the alternating search: a side and a position on it.
type queued struct {
	side bipartite.Side
	pos  int
}

func konig(ctx context.Context, g *core.Graph) (*vset.Set, *matching.Matching, error) {
	if err := validate("BipartiteKonig", g); err != nil {
		return nil, nil, err
	}
	m, _, err := matching.MaximumBipartite(g, matching.WithContext(ctx))
	if err != nil {
		return nil, nil, fmt.Errorf("BipartiteKonig: %w", err)
	}

	adj := g.Snapshot()
	visitedL := make([]bool, len(m.Left))
	visitedR := make([]bool, len(m.Right))
	queue := make([]queued, 0, len(m.Left)+len(m.Right))
	for i, j := range m.PairLeft {
		if j == matching.Unmatched {
			visitedL[i] = true
			queue = append(queue, queued{side: bipartite.Left, pos: i})
		}
	}

	for head := 0; head < len(queue); head++ {
		q := queue[head]
		if q.side == bipartite.Right {
			// right → left along the matching edge only
			if i := m.PairRight[q.pos]; i != matching.Unmatched && !visitedL[i] {
				visitedL[i] = true
				queue = append(queue, queued{side: bipartite.Left, pos: i})
			}
			continue
		}
		// left → right along non-matching edges only
		u := m.Left[q.pos]
		for j, v := range m.Right {
			if adj.Has(u, v) && !visitedR[j] && m.PairLeft[q.pos] != j {
				visitedR[j] = true
				queue = append(queue, queued{side: bipartite.Right, pos: j})
			}
		}
	}

	c, err := vset.New(adj.Order())
	if err != nil {
		return nil, nil, err
	}
	for i, u := range m.Left {
		if !visitedL[i] {
			c.Add(u)
		}
	}
	for j, v := range m.Right {
		if visitedR[j] {
			c.Add(v)
		}
	}

	return c, m, nil
}

func approx(g *core.Graph) (*vset.Set, int, error) {
	if err := validate("Approx", g); err != nil {
		return nil, 0, err
	}
	pairs, err := matching.Greedy(g)
	if err != nil {
		return nil, 0, fmt.Errorf("Approx: %w", err)
	}
	c, err := vset.New(g.Order())
	if err != nil {
		return nil, 0, err
	}
	for _, e := range pairs {
		c.Add(e.From)
		c.Add(e.To)
	}

	return c, len(pairs), nil
}

func validate(method string, g *core.Graph) error {
	return core.CheckUndirected(method, g, ErrGraphNil, ErrDirected)
}
