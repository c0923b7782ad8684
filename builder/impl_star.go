// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - The hub is the first appended vertex (base); leaves follow as base+1..base+n-1.
//   - Star emits spokes hub→leaf in ascending leaf order.
//   - Wheel emits the rim cycle over the leaves first, then the spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodStar  = "Star"
	methodWheel = "Wheel"

	minStarNodes  = 2
	minWheelNodes = 4
)

// Star appends K_{1,n-1}: one hub plus n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel appends W_n: a hub joined to every vertex of the rim C_{n-1} (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, err := addVertices(g, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := hub+1+i, hub+1+(i+1)%rim
			if err := connect(g, methodWheel, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := connect(g, methodWheel, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
