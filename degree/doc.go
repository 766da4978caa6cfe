// Package degree computes degree statistics of an undirected peer topology:
// the degree histogram and normalized degree centrality.
//
// Both functions are pure reads of a core.Adjacency and run in O(V).
//
// Sentinel outputs instead of errors:
//
//   - a nil or empty adjacency yields an empty (non-nil) map;
//   - centrality is 0 for every node when the graph has at most one node.
package degree
