// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_basic.go - Empty(n), Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Vertices are appended at base = g.Order(); vertex i of the fixture is base+i.
//   - Edges are emitted in ascending i: (i, i+1), then the closing (n-1, 0) for Cycle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodEmpty = "Empty"
	methodPath  = "Path"
	methodCycle = "Cycle"

	minPathNodes  = 2
	minCycleNodes = 3
)

// Empty appends n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		if _, err := addVertices(g, methodEmpty, n); err != nil {
			return err
		}

		return nil
	}
}

// Path appends the path P_n: 0–1–…–(n-1) (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle appends the cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
