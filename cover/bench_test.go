package cover_test

import (
	"testing"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/cover"
)

// BenchmarkSolve compares every strategy on the same bipartite G(12+12, 0.3).
func BenchmarkSolve(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomBipartite(12, 12, 0.3))
	if err != nil {
		b.Fatal(err)
	}

	for _, s := range []cover.Strategy{cover.StrategyExact, cover.StrategyKonig, cover.StrategyApprox, cover.StrategyMaxSAT} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = cover.Solve(g, cover.Options{Strategy: s})
			}
		})
	}
}
