// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Analysis orchestration over the engine packages.

package report

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/peertopo/bfs"
	"github.com/katalvlaran/peertopo/centrality"
	"github.com/katalvlaran/peertopo/clustering"
	"github.com/katalvlaran/peertopo/core"
	"github.com/katalvlaran/peertopo/degree"
	"github.com/katalvlaran/peertopo/dfs"
	"github.com/katalvlaran/peertopo/summary"
)

// DefaultTopN is the number of bottlenecks reported when Options.TopN is unset.
const DefaultTopN = 5

// Options tunes Analyze.
type Options struct {
	// TopN bounds the bottleneck list; values ≤ 0 select DefaultTopN.
	TopN int

	// Normalize rescales betweenness into [0,1] for display.
	Normalize bool
}

// Bottleneck is one ranked node.
type Bottleneck struct {
	ID               string
	Betweenness      float64
	DegreeCentrality float64
	Clustering       float64
}

// Report is the full analysis of one snapshot.
type Report struct {
	Summary          summary.Summary
	Distribution     map[int]int
	DegreeCentrality map[string]float64
	Clustering       map[string]float64
	Betweenness      map[string]float64
	Normalized       bool
	Bottlenecks      []Bottleneck
	Bridges          []core.Edge
	Components       int
	LargestComponent int
}

// Analyze runs every analyzer over nodes and edges.
func Analyze(nodes []string, edges []core.Edge, opts Options) *Report {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	adj := core.BuildAdjacency(nodes, edges)

	r := &Report{
		Summary:          summary.Summarize(adj),
		Distribution:     degree.Distribution(adj),
		DegreeCentrality: degree.Centrality(adj),
		Clustering:       clustering.LocalAll(adj),
		Betweenness:      centrality.Betweenness(adj),
		Normalized:       opts.Normalize,
		Bridges:          dfs.Bridges(adj),
	}
	if opts.Normalize {
		r.Betweenness = centrality.Normalize(r.Betweenness, adj.Len())
	}

	ranked := centrality.Rank(r.Betweenness, adj.Nodes())
	if opts.TopN < len(ranked) {
		ranked = ranked[:opts.TopN]
	}
	r.Bottlenecks = make([]Bottleneck, len(ranked))
	for i, id := range ranked {
		r.Bottlenecks[i] = Bottleneck{
			ID:               id,
			Betweenness:      r.Betweenness[id],
			DegreeCentrality: r.DegreeCentrality[id],
			Clustering:       r.Clustering[id],
		}
	}

	for _, comp := range bfs.Components(adj) {
		r.Components++
		r.LargestComponent = max(r.LargestComponent, len(comp))
	}
	return r
}

// Degrees returns the degrees present in the distribution, ascending.
func (r *Report) Degrees() []int {
	out := make([]int, 0, len(r.Distribution))
	for d := range r.Distribution {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// FormatDistance renders a hop distance, with +Inf as "inf".
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
