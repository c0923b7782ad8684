// Package core provides the dense, thread-safe Graph consumed by every
// algorithm in lvcover.
//
// A Graph G = (V,E) is an n×n boolean adjacency relation over the vertex
// indices 0..n-1 plus two configuration flags:
//
//   - Directed vs. undirected (WithDirected). Undirected graphs mirror every
//     edge so that adj[u][v] == adj[v][u] always holds.
//   - Bidirectional arcs (WithBidirectional). Only meaningful for directed
//     graphs: without it, adding v→u when u→v exists is rejected.
//
// Self-loops are never stored; the adjacency diagonal is always false.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency rows. Mutators (AddVertex,
//	AddEdge, RemoveEdge) take the write lock; queries take the read lock.
//	Algorithms never hold the lock while they run: they call Snapshot() once,
//	receive a private Adjacency copy, and work on that. The input graph is
//	therefore never mutated by an algorithm, and concurrent algorithm calls on
//	one shared Graph are safe.
//
// Core Methods:
//
//	NewGraph(n, opts...)        // O(n²), n ≤ MaxOrder
//	FromAdjacency(adj, opts...) // O(n²), validates shape/diagonal/symmetry
//	AddVertex() (int, error)    // O(n)
//	AddEdge(u, v) error         // O(1)
//	RemoveEdge(u, v) error      // O(1)
//	HasEdge(u, v) bool          // O(1)
//	Neighbors(u) ([]int, error) // O(n), ascending
//	Degree(u) (int, error)      // O(n)
//	EdgeCount() int             // O(n²)
//	Edges() []Edge              // O(n²), lexicographic
//	Snapshot() Adjacency        // O(n²)
//	CheckUndirected(method, g, nilErr, directedErr) error
//
// Errors:
//
//	ErrGraphNil, ErrDirected, ErrNegativeOrder, ErrOrderTooLarge, ErrVertexOutOfRange,
//	ErrLoopNotAllowed, ErrBidirectionalNotAllowed, ErrNonSquare, ErrAsymmetric.
package core
