// Package peertopo is a topology analysis engine for peer-to-peer network
// snapshots: given who is connected to whom, it answers how well connected
// the network is, where its bottlenecks and single points of failure are,
// and exports the graph for external tools.
//
// The engine is a set of small, pure packages over one shared model:
//
//	core/        - Node, Edge and the insertion-ordered Adjacency model
//	degree/      - degree distribution and degree centrality
//	clustering/  - local and global clustering coefficients
//	bfs/         - shortest paths, distances, diameter, components
//	centrality/  - Brandes betweenness and top-N bottlenecks
//	dfs/         - bridge (cut-edge) detection with an explicit-stack DFS
//	summary/     - one-call NetworkSummary aggregate
//	graphml/     - GraphML export with typed node attributes
//
// Around it sit the host-side pieces:
//
//	snapshot/    - JSON/YAML snapshot files mapped to nodes and edges
//	report/      - full analysis report, text/JSON renderers, Prometheus gauges
//	builder/     - deterministic topology fixtures (path, star, barbell, ...)
//	cmd/peertopo - CLI: analyze, export, path, generate
//
// Engine functions never return errors for structurally valid input:
// empty graphs, isolated nodes and disconnected graphs map to well-defined
// sentinel values (0, +Inf, empty collections).
//
// Quick ASCII example:
//
//	A───B       C
//	│   │
//	D───E
//
//	Summary: 5 nodes, 4 edges, diameter +Inf (C is unreachable),
//	global clustering 0, no bridges.
package peertopo
