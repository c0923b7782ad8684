// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// config.go - internal configuration, functional options and deterministic defaults.
//
// Deterministic defaults:
//   • rng = nil (pure/deterministic unless seeded)
//   • regularAttempts = defaultRegularAttempts

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Upper bound on stub reshuffles in RandomRegular.
	regularAttempts int
}

const defaultRegularAttempts = 256

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{regularAttempts: defaultRegularAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRegularAttempts bounds the reshuffles RandomRegular may try.
// Panics if n < 1.
func WithRegularAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithRegularAttempts(n < 1)")
	}
	return func(c *builderConfig) {
		c.regularAttempts = n
	}
}
