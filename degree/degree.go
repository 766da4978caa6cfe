// SPDX-License-Identifier: MIT
//
// File: degree.go
// Role: Degree histogram, centrality and min/max/avg extraction.

package degree

import "github.com/katalvlaran/peertopo/core"

// Distribution returns the histogram degree → number of nodes with that degree.
// Isolated nodes contribute to bucket 0.
func Distribution(adj *core.Adjacency) map[int]int {
	hist := make(map[int]int)
	if adj == nil {
		return hist
	}
	for _, id := range adj.Nodes() {
		hist[adj.Degree(id)]++
	}
	return hist
}

// Centrality returns deg(v)/(n-1) for every node, a value in [0,1].
// For n ≤ 1 every node scores 0.
func Centrality(adj *core.Adjacency) map[string]float64 {
	out := make(map[string]float64)
	if adj == nil {
		return out
	}
	n := adj.Len()
	for _, id := range adj.Nodes() {
		if n <= 1 {
			out[id] = 0
			continue
		}
		out[id] = float64(adj.Degree(id)) / float64(n-1)
	}
	return out
}

// Stats is the single-pass degree aggregate used by summaries.
type Stats struct {
	Min, Max int
	Avg      float64
}

// Summarize returns min, max and mean degree in one pass.
// An empty graph yields the zero Stats.
func Summarize(adj *core.Adjacency) Stats {
	if adj == nil || adj.Len() == 0 {
		return Stats{}
	}
	var s Stats
	total := 0
	for i, id := range adj.Nodes() {
		d := adj.Degree(id)
		total += d
		if i == 0 || d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	s.Avg = float64(total) / float64(adj.Len())
	return s
}
