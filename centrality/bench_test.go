package centrality_test

import (
	"testing"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/centrality"
)

// BenchmarkBetweenness_Random measures Brandes on a seeded G(200, 0.05),
// the upper end of a typical dashboard snapshot.
func BenchmarkBetweenness_Random(b *testing.B) {
	adj := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomSparse(200, 0.05),
	).Adjacency()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = centrality.Betweenness(adj)
	}
}

// BenchmarkBetweenness_Grid measures Brandes on a 20×20 grid with many tied geodesics.
func BenchmarkBetweenness_Grid(b *testing.B) {
	adj := builder.MustBuild(nil, builder.Grid(20, 20)).Adjacency()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = centrality.Betweenness(adj)
	}
}
