package clique_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcover/clique"
)

// BenchmarkMaximal_Random measures Bron–Kerbosch on G(30, 0.5).
func BenchmarkMaximal_Random(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), 30, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clique.Maximal(g)
	}
}

// BenchmarkAll_Random measures the exhaustive enumerator on a smaller G(16, 0.5).
func BenchmarkAll_Random(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), 16, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clique.All(g)
	}
}
