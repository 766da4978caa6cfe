// SPDX-License-Identifier: MIT
//
// File: rank.go
// Role: Bottleneck ranking and optional normalization.

package centrality

import (
	"sort"

	"github.com/katalvlaran/peertopo/core"
)

// TopBottlenecks returns the ids of the topN nodes with the highest
// betweenness, highest first. Equal scores keep insertion order.
// topN ≤ 0 yields an empty slice; topN larger than the graph yields every node.
func TopBottlenecks(adj *core.Adjacency, topN int) []string {
	if adj == nil || topN <= 0 {
		return []string{}
	}
	ranked := Rank(Betweenness(adj), adj.Nodes())
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

// Rank orders the ids of order by descending score with a stable sort, so
// ties keep their position in order. Ids missing from scores rank as 0.
// The input slice is not modified.
func Rank(scores map[string]float64, order []string) []string {
	out := make([]string, len(order))
	copy(out, order)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// Normalize rescales raw undirected betweenness into [0,1] by dividing by
// (n-1)(n-2)/2, the number of pairs a single node can lie between.
// For n < 3 every score maps to 0. The input map is not modified.
func Normalize(scores map[string]float64, n int) map[string]float64 {
	out := make(map[string]float64, len(scores))
	if n < 3 {
		for id := range scores {
			out[id] = 0
		}
		return out
	}
	factor := float64(n-1) * float64(n-2) / 2
	for id, v := range scores {
		out[id] = v / factor
	}
	return out
}
