// Package matching provides options, result types and errors for bipartite
// and greedy matchings over an undirected core.Graph.
package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Unmatched marks a free position in PairLeft / PairRight.
const Unmatched = -1

// Sentinel errors for matching.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("matching: %w", core.ErrGraphNil)

	// ErrDirected is returned for directed input.
	ErrDirected = fmt.Errorf("matching: %w", core.ErrDirected)

	// ErrVertexOutOfRange is returned when a side lists an index outside 0..n-1.
	ErrVertexOutOfRange = fmt.Errorf("matching: %w", core.ErrVertexOutOfRange)

	// ErrOverlappingSides is returned when a vertex is listed twice, on either side.
	ErrOverlappingSides = errors.New("matching: sides overlap")

	// ErrInconsistentPairing is returned by Validate when PairLeft and PairRight disagree.
	ErrInconsistentPairing = errors.New("matching: inconsistent pairing")

	// ErrNotAnEdge is returned by Validate when a matched pair is not adjacent.
	ErrNotAnEdge = errors.New("matching: matched pair is not an edge")
)

// Option configures HopcroftKarp.
type Option func(*Options)

// Options holds matching parameters.
type Options struct {
	// Ctx is checked once per phase.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Matching is a maximum matching between two disjoint vertex lists.
//
// Positions, not vertex ids, index the pair arrays: PairLeft[i] = j means
// Left[i] is matched to Right[j], and then PairRight[j] = i.
type Matching struct {
	Left      []int
	Right     []int
	PairLeft  []int
	PairRight []int
	// Size is the number of matched pairs.
	Size int
	// Phases counts the layering rounds that found at least one augmenting path.
	Phases int
}

// Pairs returns the matched edges as original vertex ids, ordered by left position.
func (m *Matching) Pairs() []core.Edge {
	out := make([]core.Edge, 0, m.Size)
	for i, j := range m.PairLeft {
		if j != Unmatched {
			out = append(out, core.Edge{From: m.Left[i], To: m.Right[j]})
		}
	}

	return out
}

// Partner returns the vertex matched to v, searching both sides.
func (m *Matching) Partner(v int) (int, bool) {
	for i, u := range m.Left {
		if u == v {
			if j := m.PairLeft[i]; j != Unmatched {
				return m.Right[j], true
			}
			return 0, false
		}
	}
	for j, u := range m.Right {
		if u == v {
			if i := m.PairRight[j]; i != Unmatched {
				return m.Left[i], true
			}
			return 0, false
		}
	}

	return 0, false
}

// Validate checks that the pairing is symmetric, that Size agrees with it and
// that every matched pair is an edge of g.
func (m *Matching) Validate(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("Validate: %w", ErrGraphNil)
	}
	if err := consistentPairing(m.PairLeft, m.PairRight); err != nil {
		return err
	}
	if err := consistentPairing(m.PairRight, m.PairLeft); err != nil {
		return err
	}
	pairs := m.Pairs()
	if len(pairs) != m.Size {
		return fmt.Errorf("Validate: %d pairs but Size=%d: %w", len(pairs), m.Size, ErrInconsistentPairing)
	}
	for _, e := range pairs {
		if !g.HasEdge(e.From, e.To) {
			return fmt.Errorf("Validate: %d–%d: %w", e.From, e.To, ErrNotAnEdge)
		}
	}

	return nil
}

func consistentPairing(a, b []int) error {
	for i, j := range a {
		if j == Unmatched {
			continue
		}
		if j < 0 || j >= len(b) || b[j] != i {
			return fmt.Errorf("Validate: %d→%d not mirrored: %w", i, j, ErrInconsistentPairing)
		}
	}

	return nil
}
