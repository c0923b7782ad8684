// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Concurrency:
//   - AddEdge/RemoveEdge take the write lock; queries take the read lock.

package core

import "fmt"

// AddEdge inserts u→v (and v→u for undirected graphs).
// Re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is not in 0..n-1.
//   - ErrLoopNotAllowed if u == v.
//   - ErrBidirectionalNotAllowed for directed graphs without WithBidirectional
//     when v→u is already present.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if !inRange(u, n) || !inRange(v, n) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.directed {
		if g.adj[v][u] && !g.adj[u][v] && !g.bidirectional {
			return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrBidirectionalNotAllowed)
		}
		g.adj[u][v] = true
		return nil
	}
	g.adj[u][v] = true
	g.adj[v][u] = true

	return nil
}

// RemoveEdge deletes u→v (and v→u for undirected graphs).
// Removing an absent edge is a no-op.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if !inRange(u, n) || !inRange(v, n) {
		return fmt.Errorf("RemoveEdge(%d,%d): n=%d: %w", u, v, n, ErrVertexOutOfRange)
	}
	g.adj[u][v] = false
	if !g.directed {
		g.adj[v][u] = false
	}

	return nil
}

// HasEdge reports whether u→v exists. Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	if !inRange(u, n) || !inRange(v, n) {
		return false
	}

	return g.adj[u][v]
}

// EdgeCount returns the number of edges (undirected) or arcs (directed).
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}

// Edges returns all edges in lexicographic (From, To) order.
// Undirected edges are reported once with From < To.
//
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		out  []Edge
		u, v int
		n    = len(g.adj)
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if !g.adj[u][v] {
				continue
			}
			if !g.directed && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}
