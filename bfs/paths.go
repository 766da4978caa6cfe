// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: Sentinel-valued path queries (PathFinder) built on BFS.
// Policy:
//   - Never return errors: absent nodes, disconnected graphs and trivial graphs
//     map to nil paths, +Inf distances and 0 diameters.
//   - Pure functions of the adjacency; safe to call concurrently.

package bfs

import (
	"errors"
	"math"

	"github.com/katalvlaran/peertopo/core"
)

// ShortestPath returns the fewest-hop path from source to target, both included.
//
//   - source == target (and present) → [source].
//   - either endpoint absent → nil.
//   - target unreachable → nil.
//
// Among equal-length paths the one discovered first in link order wins.
// Complexity: O(V + E).
func ShortestPath(adj *core.Adjacency, source, target string) []string {
	if adj == nil || !adj.Has(source) || !adj.Has(target) {
		return nil
	}
	if source == target {
		return []string{source}
	}

	res, _ := BFS(adj, source, WithOnVisit(func(id string, _ int) error {
		if id == target {
			return errFound
		}
		return nil
	}))
	return res.PathTo(target)
}

// errFound stops a BFS early once the target is dequeued; never escapes the package.
var errFound = errors.New("bfs: target found")

// DistancesFrom returns the hop distance from source to every node of adj.
// Unreached nodes carry math.Inf(1). An absent source yields +Inf everywhere.
// Complexity: O(V + E).
func DistancesFrom(adj *core.Adjacency, source string) map[string]float64 {
	if adj == nil {
		return map[string]float64{}
	}
	dist := make(map[string]float64, adj.Len())
	for _, id := range adj.Nodes() {
		dist[id] = math.Inf(1)
	}
	res, err := BFS(adj, source)
	if err != nil {
		return dist
	}
	for id, d := range res.Depth {
		dist[id] = float64(d)
	}
	return dist
}

// Eccentricity returns the greatest distance from v to any node, +Inf if some
// node is unreachable from v, and 0 for an absent v on a graph of ≤ 1 node.
// Complexity: O(V + E).
func Eccentricity(adj *core.Adjacency, v string) float64 {
	if adj == nil || adj.Len() <= 1 {
		return 0
	}
	res, err := BFS(adj, v)
	if err != nil || len(res.Order) < adj.Len() {
		return math.Inf(1)
	}
	return float64(res.Depth[res.Order[len(res.Order)-1]])
}

// Diameter returns the longest shortest-path distance over all node pairs.
//
//   - ≤ 1 node → 0.
//   - any pair unreachable → +Inf, returned as soon as the first BFS falls short.
//
// Complexity: O(V·(V + E)).
func Diameter(adj *core.Adjacency) float64 {
	if adj == nil || adj.Len() <= 1 {
		return 0
	}
	var best float64
	for _, s := range adj.Nodes() {
		ecc := Eccentricity(adj, s)
		if math.IsInf(ecc, 1) {
			return ecc
		}
		if ecc > best {
			best = ecc
		}
	}
	return best
}

// Reachable returns the nodes reachable from source in BFS visit order,
// source first. An absent source yields nil.
// Complexity: O(V + E).
func Reachable(adj *core.Adjacency, source string) []string {
	res, err := BFS(adj, source)
	if err != nil {
		return nil
	}
	return res.Order
}

// Components partitions adj into connected components. Components are ordered
// by their first node in insertion order; members are in BFS order.
// Complexity: O(V + E).
func Components(adj *core.Adjacency) [][]string {
	if adj == nil {
		return nil
	}
	seen := make(map[string]bool, adj.Len())
	var out [][]string
	for _, id := range adj.Nodes() {
		if seen[id] {
			continue
		}
		comp := Reachable(adj, id)
		for _, m := range comp {
			seen[m] = true
		}
		out = append(out, comp)
	}
	return out
}
