// Package bipartite 2-colors a simple undirected core.Graph by breadth-first search.
//
// What
//
//   - Partition runs one BFS per connected component, roots taken in index
//     order. Each root goes to the Left side and every newly discovered
//     neighbor takes the side opposite to its discoverer.
//   - Isolated vertices are roots of their own component and therefore Left.
//   - The first edge seen between two vertices of the same side aborts the
//     search with a *ConflictError naming that edge. No Sides are returned.
//
// Determinism
//
//	Neighbors are scanned in ascending index order, so the coloring and the
//	reported conflict depend only on the graph.
//
// Complexity
//
//	Time O(n²) on the dense adjacency, memory O(n).
package bipartite
