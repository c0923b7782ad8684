// File: methods_clone.go
// Role: Equality and the read-only Adjacency snapshot used by algorithms.
// Concurrency:
//   - Read lock for the duration of the copy only; the source is never mutated.

package core

// Adjacency is a private, read-only copy of a Graph's adjacency matrix.
// Algorithms take one Snapshot per call and never write to it.
type Adjacency [][]bool

// Order returns the number of vertices in the snapshot.
func (a Adjacency) Order() int {
	return len(a)
}

// Has reports whether u→v exists. Indices must be in range.
func (a Adjacency) Has(u, v int) bool {
	return a[u][v]
}

// Neighbors returns the out-neighbors of u in ascending order.
func (a Adjacency) Neighbors(u int) []int {
	out := make([]int, 0, len(a))
	for v, ok := range a[u] {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// Snapshot returns a deep copy of the adjacency matrix.
//
// Complexity: O(n²).
func (g *Graph) Snapshot() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	rows := newMatrix(n)
	for i := 0; i < n; i++ {
		copy(rows[i], g.adj[i])
	}

	return Adjacency(rows)
}

// Equal reports whether g and h have the same order, the same directedness
// and identical adjacency. Self-loops never exist, so the diagonal always agrees.
//
// Complexity: O(n²).
func (g *Graph) Equal(h *Graph) bool {
	if g == nil || h == nil {
		return g == h
	}
	if g.directed != h.directed {
		return false
	}
	a, b := g.Snapshot(), h.Snapshot()
	if len(a) != len(b) {
		return false
	}
	var u, v int
	for u = range a {
		for v = range a[u] {
			if a[u][v] != b[u][v] {
				return false
			}
		}
	}

	return true
}
