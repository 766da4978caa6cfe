// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying counts, emission order,
// idempotence and error sentinels.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/core"
)

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, topo *builder.Topology)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, []core.Edge{{From: "0", To: "1"}, {From: "1", To: "2"}, {From: "2", To: "3"}}, topo.Edges)
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, core.Edge{From: "4", To: "0"}, topo.Edges[4], "cycle must close")
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, "Center", topo.Nodes[0].ID)
				assert.Equal(t, 4, topo.Adjacency().Degree("Center"))
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				adj := topo.Adjacency()
				assert.Equal(t, 5, adj.Degree("Center"))
				assert.Equal(t, 3, adj.Degree("0"))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, "0,0", topo.Nodes[0].ID)
				assert.Equal(t, "2,3", topo.Nodes[11].ID)
			},
		},
		{
			name: "Barbell(3)", ctor: builder.Barbell(3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, []string{"L0", "L1", "L2", "R0", "R1", "R2"}, topo.IDs())
				assert.Equal(t, core.Edge{From: "L2", To: "R0"}, topo.Edges[6], "bridge emitted last")
			},
		},
		{
			name: "Barbell(3) custom prefixes", ctor: builder.Barbell(3), wantV: 6, wantE: 7,
			opts: []builder.BuilderOption{builder.WithPartitionPrefix("A", "B")},
			sampleCheck: func(t *testing.T, topo *builder.Topology) {
				assert.Equal(t, core.Edge{From: "A2", To: "B0"}, topo.Edges[6])
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			topo, err := builder.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Len(t, topo.Nodes, tc.wantV)
			assert.Len(t, topo.Edges, tc.wantE)
			assert.NoError(t, core.Validate(topo.IDs(), topo.Edges), "builders must emit clean snapshots")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, topo)
			}
		})
	}
}

// TestBuilders_Errors verifies parameter validation sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Barbell(2)", builder.Barbell(2), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		_, err := builder.Build(nil, tc.ctor)
		assert.True(t, errors.Is(err, tc.want), "%s: want %v, got %v", tc.name, tc.want, err)
	}
}

// TestBuild_Idempotent composes the same constructor twice and expects no duplicates.
func TestBuild_Idempotent(t *testing.T) {
	topo, err := builder.Build(nil, builder.Cycle(4), builder.Cycle(4))
	require.NoError(t, err)
	assert.Len(t, topo.Nodes, 4)
	assert.Len(t, topo.Edges, 4)
}

// TestRandomSparse_Deterministic checks that a fixed seed reproduces the edge set.
func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
	assert.NotEmpty(t, a.Edges)
}

// TestWithAttrFn checks node decoration by emission index.
func TestWithAttrFn(t *testing.T) {
	topo, err := builder.Build(
		[]builder.BuilderOption{
			builder.WithSymbNumb("peer-"),
			builder.WithAttrFn(func(idx int, id string) map[string]any {
				return map[string]any{"index": idx, "validator": idx%2 == 0}
			}),
		},
		builder.Path(3),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"peer-0", "peer-1", "peer-2"}, topo.IDs())
	assert.Equal(t, 1, topo.Nodes[1].Attrs["index"])
	assert.Equal(t, true, topo.Nodes[2].Attrs["validator"])
}

// TestMustBuild_Panics verifies that MustBuild surfaces constructor errors as panics.
func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Path(0)) })
	assert.NotPanics(t, func() { builder.MustBuild(nil, builder.Path(2)) })
}
