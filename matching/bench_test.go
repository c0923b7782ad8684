package matching_test

import (
	"testing"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/matching"
)

// BenchmarkMaximumBipartite measures partition + Hopcroft–Karp on a sparse 200+200 graph.
func BenchmarkMaximumBipartite(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomBipartite(200, 200, 0.02))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = matching.MaximumBipartite(g)
	}
}
