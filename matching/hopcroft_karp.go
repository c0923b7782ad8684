// SPDX-License-Identifier: MIT
//
// File: hopcroft_karp.go
// Role: Maximum bipartite matching by layered augmenting paths.
// Determinism:
//   - Left vertices are tried in list order, their neighbors in Right list order.

package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcover/bipartite"
	"github.com/katalvlaran/lvcover/core"
)

const infDistance = math.MaxInt

// hk is the working state of one HopcroftKarp call.
type hk struct {
	adj       [][]int // adj[i] lists Right positions adjacent to Left[i]
	pairLeft  []int
	pairRight []int
	dist      []int
	queue     []int
}

// HopcroftKarp computes a maximum matching between left and right, using only
// the edges of g that cross the two lists.
//
// Implementation:
//   - Layering: every free left vertex starts at distance 0. Scanning an edge
//     to a free right vertex records that an augmenting path exists; an edge to
//     a matched right vertex labels its partner dist+1 if still unlabeled.
//     No such event ends the algorithm.
//   - Augmentation: a DFS from each free left vertex descends only into
//     partners labeled exactly one deeper. Reaching a free right vertex flips
//     the path. A left vertex whose DFS fails is relabeled unreachable so it is
//     not retried in the same phase.
//
// Errors:
//   - ErrGraphNil, ErrDirected.
//   - ErrVertexOutOfRange, ErrOverlappingSides for malformed lists.
//   - ctx.Err() when cancelled between phases.
//
// Complexity: O(E·√V) over the bipartite subgraph, plus O(|L|·|R|) to build
// the adjacency lists.
func HopcroftKarp(g *core.Graph, left, right []int, opts ...Option) (*Matching, error) {
	if err := core.CheckUndirected("HopcroftKarp", g, ErrGraphNil, ErrDirected); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	adj := g.Snapshot()
	if err := checkSides(adj.Order(), left, right); err != nil {
		return nil, err
	}

	st := &hk{
		adj:       make([][]int, len(left)),
		pairLeft:  make([]int, len(left)),
		pairRight: make([]int, len(right)),
		dist:      make([]int, len(left)),
		queue:     make([]int, 0, len(left)),
	}
	for i, u := range left {
		for j, v := range right {
			if adj[u][v] {
				st.adj[i] = append(st.adj[i], j)
			}
		}
		st.pairLeft[i] = Unmatched
	}
	for j := range st.pairRight {
		st.pairRight[j] = Unmatched
	}

	m := &Matching{
		Left:  append([]int(nil), left...),
		Right: append([]int(nil), right...),
	}
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if !st.layer() {
			break
		}
		m.Phases++
		for u := range st.pairLeft {
			if st.pairLeft[u] == Unmatched && st.augment(u) {
				m.Size++
			}
		}
	}
	m.PairLeft, m.PairRight = st.pairLeft, st.pairRight

	return m, nil
}

// MaximumBipartite partitions g and matches its two sides.
//
// Errors: those of bipartite.Partition (ErrNotBipartite via *ConflictError) and HopcroftKarp.
func MaximumBipartite(g *core.Graph, opts ...Option) (*Matching, *bipartite.Sides, error) {
	sides, err := bipartite.Partition(g)
	if err != nil {
		return nil, nil, fmt.Errorf("MaximumBipartite: %w", err)
	}
	m, err := HopcroftKarp(g, sides.LeftVertices(), sides.RightVertices(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("MaximumBipartite: %w", err)
	}

	return m, sides, nil
}

// layer labels left vertices by BFS distance and reports whether a free right
// vertex was reached.
func (st *hk) layer() bool {
	st.queue = st.queue[:0]
	for u, j := range st.pairLeft {
		if j == Unmatched {
			st.dist[u] = 0
			st.queue = append(st.queue, u)
		} else {
			st.dist[u] = infDistance
		}
	}

	found := false
	for head := 0; head < len(st.queue); head++ {
		u := st.queue[head]
		for _, j := range st.adj[u] {
			pu := st.pairRight[j]
			if pu == Unmatched {
				found = true
			} else if st.dist[pu] == infDistance {
				st.dist[pu] = st.dist[u] + 1
				st.queue = append(st.queue, pu)
			}
		}
	}

	return found
}

// augment searches an augmenting path from left position u along the layering.
func (st *hk) augment(u int) bool {
	for _, j := range st.adj[u] {
		pu := st.pairRight[j]
		if pu == Unmatched || (st.dist[pu] == st.dist[u]+1 && st.augment(pu)) {
			st.pairLeft[u] = j
			st.pairRight[j] = u
			return true
		}
	}
	st.dist[u] = infDistance

	return false
}

// checkSides rejects out-of-range ids and any id listed more than once.
func checkSides(n int, left, right []int) error {
	seen := make([]bool, n)
	for _, side := range [2][]int{left, right} {
		for _, v := range side {
			if v < 0 || v >= n {
				return fmt.Errorf("HopcroftKarp: vertex %d, n=%d: %w", v, n, ErrVertexOutOfRange)
			}
			if seen[v] {
				return fmt.Errorf("HopcroftKarp: vertex %d: %w", v, ErrOverlappingSides)
			}
			seen[v] = true
		}
	}

	return nil
}
