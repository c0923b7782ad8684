// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random.go - RandomSparse(n, p), RandomBipartite(n1, n2, p) and
// RandomRegular(n, d) constructors.
//
// Contract:
//   - Parameters and the rng are validated before any vertex is appended.
//   - Trial order is fixed (i asc, j asc), so a seed fully determines the graph.
//   - RandomRegular pairs shuffled stubs and rejects pairings with loops or
//     repeated pairs; after cfg.regularAttempts rejections it fails with
//     ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomBipartite = "RandomBipartite"
	methodRandomRegular   = "RandomRegular"

	minRandomSparseNodes = 1
	minRegularNodes      = 1
	probMin              = 0.0
	probMax              = 1.0
)

// checkProbability validates p and demands an rng when 0 < p < 1.
func checkProbability(method string, p float64, cfg builderConfig) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial reports whether an edge with probability p is included.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}

// RandomSparse samples G(n, p): every pair i<j is joined independently with
// probability p. On directed graphs the ordered pairs (i, j), i≠j, are tried
// instead; an arc whose reverse already exists is skipped unless the graph
// was built WithBidirectional.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg); err != nil {
			return err
		}

		base, err := addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				u, v := base+i, base+j
				if directed && !g.Bidirectional() && g.HasEdge(v, u) {
					continue
				}
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}

// RandomBipartite appends n1 left and n2 right vertices and joins every
// left–right pair independently with probability p. The result is bipartite
// by construction.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodRandomBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomBipartite, p, cfg); err != nil {
			return err
		}

		left, err := addVertices(g, methodRandomBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := connect(g, methodRandomBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular samples an undirected d-regular simple graph on n vertices
// by stub matching. Requires 0 ≤ d < n and n·d even.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w", methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRegularNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRegularNodes, ErrTooFewVertices)
		}
		if n > core.MaxOrder {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodRandomRegular, n, core.MaxOrder, core.ErrOrderTooLarge)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		pairs, ok := pairStubs(cfg, stubs)
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, cfg.regularAttempts, ErrConstructFailed)
		}

		base, err := addVertices(g, methodRandomRegular, n)
		if err != nil {
			return err
		}
		for _, e := range pairs {
			if err := connect(g, methodRandomRegular, base+e.From, base+e.To); err != nil {
				return err
			}
		}

		return nil
	}
}

// pairStubs shuffles stubs until consecutive pairs form a simple graph.
func pairStubs(cfg builderConfig, stubs []int) ([]core.Edge, bool) {
	if len(stubs) == 0 {
		return nil, true
	}
	seen := make(map[core.Edge]struct{}, len(stubs)/2)
	pairs := make([]core.Edge, 0, len(stubs)/2)

attempts:
	for attempt := 0; attempt < cfg.regularAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		clear(seen)
		pairs = pairs[:0]
		for i := 0; i < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				continue attempts
			}
			if u > v {
				u, v = v, u
			}
			e := core.Edge{From: u, To: v}
			if _, dup := seen[e]; dup {
				continue attempts
			}
			seen[e] = struct{}{}
			pairs = append(pairs, e)
		}

		return pairs, true
	}

	return nil, false
}
