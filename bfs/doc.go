// Package bfs provides breadth-first search over a core.Adjacency and the
// unweighted path queries built on it: shortest path, distances from a source,
// diameter, eccentricity, reachability and connected components.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node and
//     returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Optional hooks and limits: OnVisit, MaxDepth, FilterNeighbor.
//   - Path queries use sentinel outputs instead of errors:
//   - ShortestPath returns nil when either endpoint is absent or no path exists.
//   - DistancesFrom reports math.Inf(1) for unreached nodes.
//   - Diameter is 0 for graphs with ≤ 1 node and +Inf once any pair is unreachable.
//
// Determinism
//
//	core.Adjacency yields neighbors in link order and BFS enqueues them in that
//	order, so visit sequences and the returned shortest paths are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - BFS, ShortestPath, DistancesFrom, Reachable, Components: O(V + E)
//   - Diameter: O(V·(V + E)) - one BFS per source node. Compute it once per
//     snapshot, not per rendered frame.
//
// Usage
//
//	adj := core.BuildAdjacency(nodes, edges)
//	path := bfs.ShortestPath(adj, "A", "D")   // nil if unreachable
//	d := bfs.Diameter(adj)                    // math.IsInf(d, 1) when disconnected
//
//	// Low-level traversal with options:
//	res, err := bfs.BFS(adj, "A",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors (BFS only)
//
//   - ErrGraphNil             if the adjacency pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
