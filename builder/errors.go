// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a vertex count (n, n1, n2) is smaller than
// the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidDegree indicates a RandomRegular degree outside [0,n) or an odd n·d.
var ErrInvalidDegree = errors.New("builder: invalid degree")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor cannot run on this graph
// mode (e.g. RandomRegular on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder exhausted its attempts or was
// handed a nil graph or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
