// SPDX-License-Identifier: MIT
//
// File: clustering.go
// Role: Local and global clustering coefficients.

package clustering

import "github.com/katalvlaran/peertopo/core"

// Local returns the local clustering coefficient of v. Absent nodes and
// nodes with fewer than two neighbors score 0.
func Local(adj *core.Adjacency, v string) float64 {
	if adj == nil {
		return 0
	}
	nbrs := adj.Neighbors(v)
	k := len(nbrs)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if adj.Adjacent(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}
	return float64(links) / (float64(k) * float64(k-1) / 2)
}

// LocalAll returns Local for every node of adj.
func LocalAll(adj *core.Adjacency) map[string]float64 {
	out := make(map[string]float64)
	if adj == nil {
		return out
	}
	for _, id := range adj.Nodes() {
		out[id] = Local(adj, id)
	}
	return out
}

// Global returns the mean local coefficient over nodes of degree ≥ 2,
// or 0 when there are none.
func Global(adj *core.Adjacency) float64 {
	if adj == nil {
		return 0
	}
	var sum float64
	counted := 0
	for _, id := range adj.Nodes() {
		if adj.Degree(id) < 2 {
			continue
		}
		sum += Local(adj, id)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}
