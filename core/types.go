// Package core defines the dense Graph type, its options and sentinel errors.
//
// Errors:
//
//	ErrGraphNil                - graph pointer is nil.
//	ErrDirected                - an operation requires an undirected graph.
//	ErrNegativeOrder           - requested vertex count is negative.
//	ErrOrderTooLarge           - requested vertex count exceeds MaxOrder.
//	ErrVertexOutOfRange        - vertex index outside 0..n-1.
//	ErrLoopNotAllowed          - self-loop requested or present on the diagonal.
//	ErrBidirectionalNotAllowed - reverse arc in a directed graph without WithBidirectional.
//	ErrNonSquare               - adjacency input is not n×n.
//	ErrAsymmetric              - undirected adjacency input is not symmetric.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrDirected indicates an operation that requires an undirected graph
	// received a directed one.
	ErrDirected = errors.New("core: graph is directed")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrOrderTooLarge indicates a vertex count above MaxOrder.
	ErrOrderTooLarge = errors.New("core: vertex count exceeds MaxOrder")

	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop; simple graphs never store them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBidirectionalNotAllowed indicates v→u was added while u→v exists
	// in a directed graph built without WithBidirectional.
	ErrBidirectionalNotAllowed = errors.New("core: bidirectional arcs not allowed")

	// ErrNonSquare indicates an adjacency input whose rows are not all of length n.
	ErrNonSquare = errors.New("core: adjacency is not square")

	// ErrAsymmetric indicates an undirected adjacency input with adj[u][v] != adj[v][u].
	ErrAsymmetric = errors.New("core: undirected adjacency is not symmetric")
)

// MaxOrder is the largest vertex count a Graph accepts. The adjacency matrix
// takes MaxOrder² bytes (256 MiB) at the limit.
const MaxOrder = 1 << 14

// Edge is an ordered pair of vertex indices. For undirected graphs Edges()
// always reports From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way arcs (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithBidirectional permits both u→v and v→u in a directed graph.
func WithBidirectional() GraphOption {
	return func(g *Graph) { g.bidirectional = true }
}

// Graph is a simple graph stored as a dense boolean adjacency matrix.
//
// mu guards adj. The flags are immutable after construction and therefore
// read without locking.
type Graph struct {
	mu sync.RWMutex

	directed      bool
	bidirectional bool

	// adj[u][v] reports the arc u→v (mirrored for undirected graphs).
	adj [][]bool
}

// NewGraph creates a Graph with n isolated vertices.
// By default the graph is undirected.
//
// Errors: ErrNegativeOrder if n < 0, ErrOrderTooLarge if n > MaxOrder.
// Complexity: O(n²) time and space.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("NewGraph(%d): max=%d: %w", n, MaxOrder, ErrOrderTooLarge)
	}
	g := &Graph{adj: newMatrix(n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// RequireUndirected reports ErrGraphNil or ErrDirected when g cannot be fed
// to an undirected-only algorithm.
func RequireUndirected(g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.directed {
		return ErrDirected
	}

	return nil
}

// CheckUndirected runs RequireUndirected and reports nilErr or directedErr in
// place of the core sentinel, prefixed with method. Algorithm packages pass
// their own sentinels, which wrap the core ones.
func CheckUndirected(method string, g *Graph, nilErr, directedErr error) error {
	switch err := RequireUndirected(g); {
	case err == nil:
		return nil
	case errors.Is(err, ErrGraphNil):
		return fmt.Errorf("%s: %w", method, nilErr)
	default:
		return fmt.Errorf("%s: %w", method, directedErr)
	}
}

// newMatrix allocates an n×n false matrix backed by a single slab.
func newMatrix(n int) [][]bool {
	rows := make([][]bool, n)
	slab := make([]bool, n*n)
	for i := range rows {
		rows[i] = slab[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}
