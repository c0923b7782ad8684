// Package cover provides strategies, options, results and errors for
// minimum vertex cover construction.
package cover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

// Sentinel errors for cover construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("cover: %w", core.ErrGraphNil)

	// ErrDirected is returned for directed input.
	ErrDirected = fmt.Errorf("cover: %w", core.ErrDirected)

	// ErrUnsupportedStrategy is returned by Solve and ParseStrategy for unknown strategies.
	ErrUnsupportedStrategy = errors.New("cover: unsupported strategy")

	// ErrNotACover is returned by Verify when some edge has no endpoint in the set.
	ErrNotACover = errors.New("cover: set does not cover every edge")

	// ErrSolverFailed is returned when the MaxSAT solver reports no model.
	ErrSolverFailed = errors.New("cover: maxsat solver found no model")
)

// UncoveredEdgeError names the first edge (in Edges() order) left uncovered.
// It unwraps to ErrNotACover.
type UncoveredEdgeError struct {
	U, V int
}

func (e *UncoveredEdgeError) Error() string {
	return fmt.Sprintf("cover: edge %d–%d has no endpoint in the cover", e.U, e.V)
}

// Unwrap lets errors.Is match ErrNotACover.
func (e *UncoveredEdgeError) Unwrap() error {
	return ErrNotACover
}

// Strategy selects how Solve builds the cover.
type Strategy int

const (
	// StrategyExact complements the maximum independent set. Exponential, optimal.
	StrategyExact Strategy = iota + 1
	// StrategyKonig derives the cover from a maximum matching. Bipartite graphs only, optimal.
	StrategyKonig
	// StrategyApprox takes both endpoints of a greedy maximal matching. O(n²), within 2× optimal.
	StrategyApprox
	// StrategyMaxSAT encodes the problem as weighted MaxSAT. Exponential worst case, optimal.
	StrategyMaxSAT
)

var strategyNames = map[Strategy]string{
	StrategyExact:  "exact",
	StrategyKonig:  "konig",
	StrategyApprox: "approx",
	StrategyMaxSAT: "maxsat",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Optimal reports whether the strategy always returns a minimum cover.
func (s Strategy) Optimal() bool {
	return s == StrategyExact || s == StrategyKonig || s == StrategyMaxSAT
}

// ParseStrategy maps a case-insensitive name ("exact", "konig", "approx",
// "maxsat") to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnsupportedStrategy)
}

// Logger is the subset of a leveled logger Solve writes to.
// *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Options configures Solve.
//   - Strategy: which construction to run (default StrategyExact).
//   - Ctx: cancellation for the exponential and phase-based strategies.
//   - Logger: receives one line per stage; nil keeps Solve silent.
type Options struct {
	Strategy Strategy
	Ctx      context.Context
	Logger   Logger
}

// DefaultOptions returns the exact strategy with a background context and no logging.
func DefaultOptions() Options {
	return Options{Strategy: StrategyExact, Ctx: context.Background()}
}

// Result is the outcome of Solve.
type Result struct {
	// Cover holds vertex ids; every edge has at least one endpoint in it.
	Cover    *vset.Set
	Strategy Strategy
	// MatchingSize is the matching the cover was derived from (König, approx), else 0.
	MatchingSize int
	// Optimal reports whether Cover is guaranteed minimum.
	Optimal bool
}
