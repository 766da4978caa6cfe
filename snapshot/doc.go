// Package snapshot reads and writes network snapshots and maps their peer
// lists onto the undirected node/edge lists the analyzers consume.
//
// A snapshot lists every node with its reported peers and optional scalar
// attributes:
//
//	taken_at: 2024-05-01T12:00:00Z
//	nodes:
//	  - id: seed-1
//	    peers: [seed-2, edge-7]
//	    attributes: {region: eu-west, version: 1.4.2}
//	  - id: seed-2
//	    peers: [seed-1]
//
// Mapping rules (Snapshot.Graph):
//
//   - every listed node becomes a core.Node, in document order;
//   - each peer relation becomes one undirected core.Edge, de-duplicated by
//     the canonical min(a,b)-max(a,b) pair, so mutual peer lists collapse;
//   - peers naming unknown nodes and self-peers are dropped and counted in
//     Snapshot.Dropped.
//
// Formats are JSON (encoding/json) and YAML (gopkg.in/yaml.v3), chosen by file
// extension in Load. JSON numbers decode as int64 when integral and float64
// otherwise, matching what the YAML decoder produces.
//
// Errors:
//
//	ErrUnknownFormat   - extension or format name is neither JSON nor YAML.
//	ErrEmptyNodeID     - a node has an empty id.
//	ErrDuplicateNode   - two nodes share an id.
//
// An empty snapshot is valid and maps to an empty graph.
package snapshot
