// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors from raw adjacency and read-only getters.
// Policy:
//   - No algorithms here.
//   - Flags are immutable after construction and read without locking.

package core

import "fmt"

// FromAdjacency builds a Graph from a square boolean matrix.
//
// Implementation:
//   - Stage 1: Apply options so that directedness is known.
//   - Stage 2: Validate shape (n×n), diagonal (all false) and, for undirected
//     graphs, symmetry.
//   - Stage 3: Deep-copy rows; the caller keeps ownership of adj.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(adj).
//   - ErrLoopNotAllowed if adj[i][i] is true.
//   - ErrAsymmetric for undirected graphs when adj[i][j] != adj[j][i].
//   - ErrBidirectionalNotAllowed for directed graphs without WithBidirectional
//     when both adj[i][j] and adj[j][i] are set.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromAdjacency(adj [][]bool, opts ...GraphOption) (*Graph, error) {
	n := len(adj)
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(adj[i]) != n {
			return nil, fmt.Errorf("FromAdjacency: row %d has %d columns, want %d: %w", i, len(adj[i]), n, ErrNonSquare)
		}
	}
	for i = 0; i < n; i++ {
		if adj[i][i] {
			return nil, fmt.Errorf("FromAdjacency: vertex %d: %w", i, ErrLoopNotAllowed)
		}
		for j = i + 1; j < n; j++ {
			if adj[i][j] == adj[j][i] {
				if adj[i][j] && g.directed && !g.bidirectional {
					return nil, fmt.Errorf("FromAdjacency: arcs %d↔%d: %w", i, j, ErrBidirectionalNotAllowed)
				}
				continue
			}
			if !g.directed {
				return nil, fmt.Errorf("FromAdjacency: %d–%d: %w", i, j, ErrAsymmetric)
			}
		}
		copy(g.adj[i], adj[i])
	}

	return g, nil
}

// FromEdges builds a Graph with n vertices and the given edges.
// Each edge goes through AddEdge, so the same validation applies.
//
// Complexity: O(n² + |edges|).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Directed reports whether edges are one-way arcs.
func (g *Graph) Directed() bool {
	return g.directed
}

// Bidirectional reports whether a directed graph accepts opposite arcs.
func (g *Graph) Bidirectional() bool {
	return g.bidirectional
}

// inRange reports whether v is a valid index for a graph of order n.
func inRange(v, n int) bool {
	return v >= 0 && v < n
}
