package cover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/matching"
	"github.com/katalvlaran/lvcover/vset"
)

// Solve runs the strategy named in opts and checks the result with Verify
// before returning it. A zero Strategy means StrategyExact; a nil Ctx means
// context.Background().
//
// Errors: ErrGraphNil, ErrDirected, ErrUnsupportedStrategy, the strategy's own
// errors, or ErrNotACover if a construction ever breaks its contract.
func Solve(g *core.Graph, opts Options) (Result, error) {
	if opts.Strategy == 0 {
		opts.Strategy = StrategyExact
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if err := validate("Solve", g); err != nil {
		return Result{}, err
	}
	opts.debugf("cover: strategy=%s n=%d edges=%d", opts.Strategy, g.Order(), g.EdgeCount())

	res := Result{Strategy: opts.Strategy, Optimal: opts.Strategy.Optimal()}
	var err error
	switch opts.Strategy {
	case StrategyExact:
		res.Cover, err = exactViaMIS(opts.Ctx, g)
	case StrategyKonig:
		var m *matching.Matching
		if res.Cover, m, err = konig(opts.Ctx, g); err == nil {
			res.MatchingSize = m.Size
		}
	case StrategyApprox:
		res.Cover, res.MatchingSize, err = approx(g)
	case StrategyMaxSAT:
		res.Cover, err = MaxSAT(g)
	default:
		return Result{}, fmt.Errorf("Solve: %v: %w", opts.Strategy, ErrUnsupportedStrategy)
	}
	if err != nil {
		opts.debugf("cover: strategy=%s failed: %v", opts.Strategy, err)
		return Result{}, err
	}
	if err = Verify(g, res.Cover.Vertices()); err != nil {
		return Result{}, fmt.Errorf("Solve: %v: %w", opts.Strategy, err)
	}
	opts.debugf("cover: strategy=%s size=%d matching=%d cover=%v",
		opts.Strategy, res.Cover.Len(), res.MatchingSize, res.Cover)

	return res, nil
}

func (o Options) debugf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Debugf(format, args...)
	}
}

// Verify checks that every edge of g has at least one endpoint in c.
//
// Errors:
//   - ErrGraphNil.
//   - core.ErrVertexOutOfRange if c lists an id outside 0..n-1.
//   - *UncoveredEdgeError (errors.Is ErrNotACover) for the first uncovered edge.
func Verify(g *core.Graph, c []int) error {
	if g == nil {
		return fmt.Errorf("Verify: %w", ErrGraphNil)
	}
	n := g.Order()
	in := make([]bool, n)
	for _, v := range c {
		if v < 0 || v >= n {
			return fmt.Errorf("Verify: vertex %d, n=%d: %w", v, n, core.ErrVertexOutOfRange)
		}
		in[v] = true
	}
	for _, e := range g.Edges() {
		if !in[e.From] && !in[e.To] {
			return &UncoveredEdgeError{U: e.From, V: e.To}
		}
	}

	return nil
}

// IsCover reports whether Verify(g, c.Vertices()) succeeds.
func IsCover(g *core.Graph, c *vset.Set) bool {
	return c != nil && Verify(g, c.Vertices()) == nil
}
