package snapshot_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/core"
	"github.com/katalvlaran/peertopo/snapshot"
)

func TestLoad_Formats(t *testing.T) {
	for _, name := range []string{"mesh.yaml", "mesh.json"} {
		t.Run(name, func(t *testing.T) {
			s, err := snapshot.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.NotNil(t, s.TakenAt)
			assert.True(t, s.TakenAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
			require.Len(t, s.Nodes, 4)

			nodes, edges := s.Graph()
			assert.Equal(t, []string{"seed-1", "seed-2", "edge-7", "lonely"}, core.IDs(nodes))
			assert.Equal(t, []core.Edge{
				{From: "seed-1", To: "seed-2"},
				{From: "edge-7", To: "seed-1"},
				{From: "edge-7", To: "seed-2"},
			}, edges)
			assert.Equal(t, 2, s.Dropped, "ghost peer and self-peer")

			attrs := nodes[0].Attrs
			assert.Equal(t, "eu-west", attrs["region"])
			assert.Equal(t, true, attrs["relay"])
			assert.EqualValues(t, 1024, attrs["height"])
			assert.InDelta(t, 0.35, nodes[1].Attrs["load"], 1e-12)
			assert.Nil(t, nodes[3].Attrs)
		})
	}
}

func TestDecode_JSONNumbers(t *testing.T) {
	s, err := snapshot.Decode(strings.NewReader(`{"nodes":[{"id":"a","attributes":{"n":3,"f":2.5}}]}`), snapshot.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Nodes[0].Attributes["n"])
	assert.Equal(t, 2.5, s.Nodes[0].Attributes["f"])
}

func TestDecode_Errors(t *testing.T) {
	_, err := snapshot.Decode(strings.NewReader("nodes:\n  - id: a\n  - id: a\n"), snapshot.FormatYAML)
	assert.ErrorIs(t, err, snapshot.ErrDuplicateNode)

	_, err = snapshot.Decode(strings.NewReader(`{"nodes":[{"id":""}]}`), snapshot.FormatJSON)
	assert.ErrorIs(t, err, snapshot.ErrEmptyNodeID)

	_, err = snapshot.Decode(strings.NewReader("{}"), snapshot.Format("toml"))
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)

	_, err = snapshot.Decode(strings.NewReader("{not json"), snapshot.FormatJSON)
	assert.Error(t, err)

	_, err = snapshot.Load("testdata/mesh.toml")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)

	_, err = snapshot.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatYAML} {
		s, err := snapshot.Decode(strings.NewReader(""), f)
		require.NoError(t, err, f)
		nodes, edges := s.Graph()
		assert.Empty(t, nodes)
		assert.Empty(t, edges)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]snapshot.Format{
		"json": snapshot.FormatJSON, ".JSON": snapshot.FormatJSON,
		"yaml": snapshot.FormatYAML, ".yml": snapshot.FormatYAML,
	} {
		got, err := snapshot.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := snapshot.ParseFormat(".xml")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
}

// TestRoundTrip_FromGraph encodes a built topology and reads it back.
func TestRoundTrip_FromGraph(t *testing.T) {
	topo := builder.MustBuild(nil, builder.Barbell(3))
	stamp := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, f := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, snapshot.FromGraph(topo.Nodes, topo.Edges, stamp).Encode(&buf, f))

		back, err := snapshot.Decode(&buf, f)
		require.NoError(t, err, f)
		nodes, edges := back.Graph()
		assert.Equal(t, topo.IDs(), core.IDs(nodes))
		assert.Equal(t, 0, back.Dropped)
		assert.Equal(t, topo.Adjacency().EdgeCount(), len(edges))
		assert.ElementsMatch(t,
			topo.Adjacency().Edges(),
			core.BuildAdjacency(core.IDs(nodes), edges).Edges(),
			"same links after the round trip (%s)", f,
		)
		require.NotNil(t, back.TakenAt)
		assert.True(t, back.TakenAt.Equal(stamp))
	}
}
