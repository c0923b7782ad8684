// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Contract:
//   - Complete emits (i, j) for i < j in lexicographic order.
//   - CompleteBipartite appends the left side first (base..base+n1-1), then the
//     right side, and emits left[i]–right[j] row by row.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"

	minCompleteNodes  = 1
	minPartitionNodes = 1
)

// Complete appends the complete graph K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite appends K_{n1,n2} (n1, n2 ≥ 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		left, err := addVertices(g, methodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(g, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
