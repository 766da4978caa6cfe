// SPDX-License-Identifier: MIT
//
// File: brandes.go
// Role: Brandes betweenness over core.Adjacency.
// Policy:
//   - Pure and deterministic: sources and neighbors are walked in insertion
//     order, so floating point sums are reproducible run to run.
//   - Scratch state is reused across sources.

package centrality

import "github.com/katalvlaran/peertopo/core"

// brandes holds the per-source scratch space of one Betweenness run.
type brandes struct {
	adj   *core.Adjacency
	stack []string
	queue []string
	pred  map[string][]string
	sigma map[string]float64
	dist  map[string]int
	delta map[string]float64
}

// Betweenness returns the betweenness centrality of every node of adj.
// A nil adjacency yields an empty map; graphs with fewer than three nodes
// score 0 everywhere.
func Betweenness(adj *core.Adjacency) map[string]float64 {
	cb := make(map[string]float64)
	if adj == nil {
		return cb
	}
	nodes := adj.Nodes()
	for _, id := range nodes {
		cb[id] = 0
	}

	n := len(nodes)
	b := &brandes{
		adj:   adj,
		stack: make([]string, 0, n),
		queue: make([]string, 0, n),
		pred:  make(map[string][]string, n),
		sigma: make(map[string]float64, n),
		dist:  make(map[string]int, n),
		delta: make(map[string]float64, n),
	}
	for _, s := range nodes {
		b.search(s, nodes)
		b.accumulate(s, cb)
	}

	for id := range cb {
		cb[id] /= 2
	}
	return cb
}

// search runs the counting BFS from s, leaving the visit order in b.stack.
func (b *brandes) search(s string, nodes []string) {
	for _, id := range nodes {
		b.pred[id] = b.pred[id][:0]
		b.sigma[id] = 0
		b.dist[id] = -1
	}
	b.stack = b.stack[:0]
	b.queue = append(b.queue[:0], s)
	b.sigma[s] = 1
	b.dist[s] = 0

	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		b.stack = append(b.stack, v)
		b.adj.ForEachNeighbor(v, func(w string) {
			if b.dist[w] < 0 {
				b.dist[w] = b.dist[v] + 1
				b.queue = append(b.queue, w)
			}
			if b.dist[w] == b.dist[v]+1 {
				b.sigma[w] += b.sigma[v]
				b.pred[w] = append(b.pred[w], v)
			}
		})
	}
}

// accumulate back-propagates dependencies over the reversed visit stack.
func (b *brandes) accumulate(s string, cb map[string]float64) {
	for _, id := range b.stack {
		b.delta[id] = 0
	}
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		for _, v := range b.pred[w] {
			b.delta[v] += (b.sigma[v] / b.sigma[w]) * (1 + b.delta[w])
		}
		if w != s {
			cb[w] += b.delta[w]
		}
	}
}
