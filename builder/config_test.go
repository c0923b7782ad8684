// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	assert.Nil(t, cfgDefault.rng, "default rng must be nil")
	assert.Equal(t, defaultRegularAttempts, cfgDefault.regularAttempts)

	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	assert.Same(t, expRNG, cfgWithRand.rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())

	// last option wins
	cfgOverride := newBuilderConfig(WithRand(expRNG), WithSeed(1))
	assert.NotSame(t, expRNG, cfgOverride.rng)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithRegularAttempts(0) })
	assert.NotPanics(t, func() { WithRegularAttempts(1) })
	assert.Equal(t, 9, newBuilderConfig(WithRegularAttempts(9)).regularAttempts)
}

func TestPairStubsExhaustsAttempts(t *testing.T) {
	t.Parallel()

	// two stubs of the same vertex can only pair into a loop
	cfg := newBuilderConfig(WithSeed(3), WithRegularAttempts(4))
	pairs, ok := pairStubs(cfg, []int{0, 0})
	assert.False(t, ok)
	assert.Nil(t, pairs)

	pairs, ok = pairStubs(cfg, nil)
	assert.True(t, ok)
	assert.Empty(t, pairs)
}
