// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its vertices after the ones already present,
//     so several constructors compose into a disjoint union.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors, never panics.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever a constructor returns (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, appending to it.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices appends n isolated vertices and returns the index of the first.
// The order limit is checked up front so a failing call leaves g untouched.
func addVertices(g *core.Graph, method string, n int) (int, error) {
	base := g.Order()
	if n < 0 || n > core.MaxOrder-base { // n < 0 only after n1+n2 overflows
		return 0, fmt.Errorf("%s: order %d+%d > max=%d: %w", method, base, n, core.MaxOrder, core.ErrOrderTooLarge)
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(); err != nil {
			return 0, fmt.Errorf("%s: %w", method, err)
		}
	}

	return base, nil
}

// connect adds u→v, plus v→u when a directed graph accepts opposite arcs.
func connect(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	if g.Directed() && g.Bidirectional() {
		if err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, v, u, err)
		}
	}

	return nil
}
