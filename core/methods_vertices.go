// File: methods_vertices.go
// Role: Vertex growth and per-vertex queries.

package core

import "fmt"

// AddVertex appends an isolated vertex and returns its index.
//
// Errors: ErrOrderTooLarge once the graph already has MaxOrder vertices.
// Complexity: O(n) (one cell per existing row plus a new row).
func (g *Graph) AddVertex() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if n >= MaxOrder {
		return 0, fmt.Errorf("AddVertex: n=%d: %w", n, ErrOrderTooLarge)
	}
	for i := 0; i < n; i++ {
		g.adj[i] = append(g.adj[i], false)
	}
	g.adj = append(g.adj, make([]bool, n+1))

	return n, nil
}

// Neighbors returns the out-neighbors of u in ascending index order.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(n).
func (g *Graph) Neighbors(u int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	if !inRange(u, n) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", u, n, ErrVertexOutOfRange)
	}
	out := make([]int, 0, n)
	for v, ok := range g.adj[u] {
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Degree returns the out-degree of u (the degree for undirected graphs).
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(n).
func (g *Graph) Degree(u int) (int, error) {
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}
