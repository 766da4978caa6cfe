// Package dfs finds cut-edges (bridges) of an undirected peer topology with a
// Tarjan-style low-link depth-first search.
//
// The walk keeps discovery times and low-links per node and a monotonically
// increasing clock. A tree edge (u, child) is a bridge iff
// low[child] > disc[u]; already-discovered non-parent neighbors fold their
// discovery time into low[u] (back edges).
//
// Entry points:
//
//   - Bridges(adj)            walk from the first inserted node only.
//   - BridgesFrom(adj, root)  walk from an explicit root.
//
// Scope:
//
//	Only the component containing the root is explored. Bridges that live in
//	other components are never reported by Bridges; callers that need them run
//	BridgesFrom once per component (see bfs.Components).
//
// Recursion is replaced by an explicit frame stack, so deep chains cannot
// exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for disc/low maps and the frame stack.
//
// Errors (BridgesFrom only):
//
//   - ErrGraphNil             if adj is nil.
//   - ErrStartVertexNotFound  if root is not a node of adj.
package dfs
