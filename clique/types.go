// Package clique provides options, results and error definitions for clique
// enumeration over an undirected core.Graph.
package clique

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

// Sentinel errors for clique enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("clique: %w", core.ErrGraphNil)

	// ErrDirected is returned for directed input; cliques are defined on undirected graphs only.
	ErrDirected = fmt.Errorf("clique: %w", core.ErrDirected)

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Analyze for an Algorithm it does not know.
	ErrUnknownAlgorithm = errors.New("clique: unknown algorithm")
)

// Algorithm selects the enumeration strategy used by Analyze.
type Algorithm int

const (
	// Exhaustive reports every non-empty clique reached by plain backtracking,
	// including non-maximal ones and repeats.
	Exhaustive Algorithm = iota + 1

	// Pivot reports exactly the maximal cliques (Bron–Kerbosch with pivoting).
	Pivot
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case Pivot:
		return "pivot"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Option configures enumeration via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on the call.
type Option func(*Options)

// Options holds the knobs shared by All, Maximal, Maximum and Analyze.
type Options struct {
	// Ctx is checked once per search frame; cancellation aborts with ctx.Err().
	Ctx context.Context

	// OnClique is called with each reported clique (a private copy, insertion
	// order). A non-nil error aborts the enumeration and is returned as is.
	OnClique func(vertices []int) error

	// Limit, if > 0, stops enumeration quietly after that many cliques.
	Limit int

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook and no limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnClique: func([]int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnClique registers a callback invoked for every reported clique.
func WithOnClique(fn func(vertices []int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClique = fn
		}
	}
}

// WithLimit caps the number of reported cliques.
//
//	n > 0:  stop after n cliques
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// Summary is the outcome of Analyze.
type Summary struct {
	Algorithm Algorithm
	// Count is the number of cliques reported by the algorithm, repeats included.
	Count int
	// MaxSize is the size of the largest reported clique (0 for n == 0).
	MaxSize int
	// Cliques holds the reported cliques with at least MinSize members, in discovery order.
	Cliques []*vset.Set
	MinSize int
}
