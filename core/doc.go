// Package core provides the read-only adjacency model every peertopo analyzer
// consumes: a snapshot of node ids and the undirected, unweighted links between them.
//
// The Adjacency A = (V,E) is built once per snapshot and never mutated:
//
//   - Undirected: an edge (a,b) is the same edge as (b,a) and is recorded on both endpoints.
//   - Unweighted: every link has unit length.
//   - Isolated nodes are first-class: every node passed to BuildAdjacency is present,
//     with degree 0 if no edge touches it.
//   - Deterministic iteration: Nodes() returns node ids in insertion order and
//     Neighbors(id) returns neighbors in the order their edges were supplied.
//
// Ordering:
//
//	Node order is the order the host supplied. The bridge-detector root, bottleneck
//	tie-breaks and GraphML output all follow it, so the same snapshot always yields
//	the same results.
//
// Input policy:
//
//	BuildAdjacency assumes clean input and never fails. Edges that reference a node
//	id absent from the node list, self-loops and repeated edges are skipped so the
//	adjacency stays a simple graph. Hosts that want to surface dirty snapshots call
//	Validate first; it reports every problem joined into one error.
//
// Core API:
//
//	BuildAdjacency(nodes []string, edges []Edge) *Adjacency // O(V+E)
//	FromNodes(nodes []Node, edges []Edge) *Adjacency        // O(V+E)
//	Validate(nodes []string, edges []Edge) error            // O(V+E)
//
//	(*Adjacency).Nodes() []string          // O(V) copy, insertion order
//	(*Adjacency).Len() int                 // O(1)
//	(*Adjacency).Has(id string) bool       // O(1)
//	(*Adjacency).Neighbors(id string) []string // O(d) copy
//	(*Adjacency).Degree(id string) int     // O(1)
//	(*Adjacency).Adjacent(a, b string) bool // O(1)
//	(*Adjacency).EdgeCount() int           // O(1)
//	(*Adjacency).Edges() []Edge            // O(V+E)
//
// Concurrency:
//
//	An Adjacency is immutable after construction, so it may be shared freely between
//	goroutines without locking.
package core
