package centrality_test

import (
	"testing"

	"github.com/katalvlaran/genregraph/builder"
	"github.com/katalvlaran/genregraph/centrality"
	"github.com/katalvlaran/genregraph/core"
)

func genreGraph(b *testing.B, n, genres int) *core.Graph {
	b.Helper()
	records, err := builder.RandomGenres(n, genres, 2, builder.WithSeed(1), builder.WithUniformLength(100, 400))
	if err != nil {
		b.Fatal(err)
	}
	g, err := core.Build(records)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkCompute_Closeness runs all-sources Dijkstra over 300 artists.
func BenchmarkCompute_Closeness(b *testing.B) {
	g := genreGraph(b, 300, 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Closeness)
	}
}

// BenchmarkCompute_BlendedDepth2 runs the blended traversal with MaxDepth 2.
func BenchmarkCompute_BlendedDepth2(b *testing.B) {
	g := genreGraph(b, 300, 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Blended, centrality.WithMaxDepth(2))
	}
}
