package summary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/core"
	"github.com/katalvlaran/peertopo/summary"
)

func TestSummarize_Empty(t *testing.T) {
	want := summary.Summary{IsConnected: true}
	assert.Equal(t, want, summary.Summarize(core.BuildAdjacency(nil, nil)))
	assert.Equal(t, want, summary.Summarize(nil))
}

func TestSummarize_Single(t *testing.T) {
	got := summary.Summarize(core.BuildAdjacency([]string{"A"}, nil))
	assert.Equal(t, summary.Summary{NodeCount: 1, IsConnected: true}, got)
}

func TestSummarize_Complete(t *testing.T) {
	got := summary.Summarize(builder.MustBuild(nil, builder.Complete(5)).Adjacency())
	assert.Equal(t, 5, got.NodeCount)
	assert.Equal(t, 10, got.EdgeCount)
	assert.InDelta(t, 4.0, got.AvgDegree, 1e-12)
	assert.Equal(t, 4, got.MaxDegree)
	assert.Equal(t, 4, got.MinDegree)
	assert.Equal(t, 1.0, got.Diameter)
	assert.InDelta(t, 1.0, got.GlobalClusteringCoefficient, 1e-12)
	assert.True(t, got.IsConnected)
}

func TestSummarize_Star(t *testing.T) {
	got := summary.Summarize(builder.MustBuild(nil, builder.Star(6)).Adjacency())
	assert.Equal(t, summary.Summary{
		NodeCount: 6, EdgeCount: 5, AvgDegree: 10.0 / 6.0,
		MaxDegree: 5, MinDegree: 1, Diameter: 2,
		GlobalClusteringCoefficient: 0, IsConnected: true,
	}, got)
}

func TestSummarize_Disconnected(t *testing.T) {
	adj := core.BuildAdjacency([]string{"A", "B", "C"}, []core.Edge{{From: "A", To: "B"}})
	got := summary.Summarize(adj)
	assert.False(t, got.IsConnected)
	assert.True(t, math.IsInf(got.Diameter, 1))
	assert.Equal(t, 0, got.MinDegree)
	assert.Equal(t, 1, got.EdgeCount)
}

// TestSummarize_Consistency cross-checks the handshake lemma on random graphs.
func TestSummarize_Consistency(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		adj := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.1),
		).Adjacency()
		s := summary.Summarize(adj)
		assert.InDelta(t, 2*float64(s.EdgeCount)/float64(s.NodeCount), s.AvgDegree, 1e-12)
		assert.LessOrEqual(t, s.MinDegree, s.MaxDegree)
		assert.Equal(t, s.IsConnected, !math.IsInf(s.Diameter, 1))
	}
}
