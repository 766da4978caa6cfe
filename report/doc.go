// Package report assembles every analyzer into the "topology panel" view of a
// snapshot and renders it as text, JSON or Prometheus metrics.
//
// Analyze builds the adjacency once and runs, in order: summary, degree
// distribution and centrality, local clustering, betweenness, bottleneck
// ranking, bridges and connected components. The result is immutable and
// can be cached between snapshot refreshes.
//
// Rendering:
//
//   - WriteText prints aligned sections via text/tabwriter.
//   - WriteJSON prints an indented document.
//   - Metrics exposes the headline numbers as gauges; WriteTextfile dumps a
//     registry in the node_exporter textfile format.
//
// A disconnected graph has an infinite diameter. Text and JSON render it as
// the string "inf"; the Prometheus gauge carries +Inf natively.
package report
