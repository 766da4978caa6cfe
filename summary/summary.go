// Package summary aggregates the engine analyzers into one consistent
// NetworkSummary of a topology snapshot.
package summary

import (
	"github.com/katalvlaran/peertopo/bfs"
	"github.com/katalvlaran/peertopo/clustering"
	"github.com/katalvlaran/peertopo/core"
	"github.com/katalvlaran/peertopo/degree"
)

// Summary is the headline view of a topology.
// Diameter is math.Inf(1) when the graph is disconnected.
type Summary struct {
	NodeCount                   int     `json:"node_count"`
	EdgeCount                   int     `json:"edge_count"`
	AvgDegree                   float64 `json:"avg_degree"`
	MaxDegree                   int     `json:"max_degree"`
	MinDegree                   int     `json:"min_degree"`
	Diameter                    float64 `json:"diameter"`
	GlobalClusteringCoefficient float64 `json:"global_clustering_coefficient"`
	IsConnected                 bool    `json:"is_connected"`
}

// Summarize computes the Summary of adj. An empty or nil adjacency yields the
// all-zero summary with IsConnected set (vacuously true).
//
// Complexity: dominated by the diameter, O(V·(V + E)).
func Summarize(adj *core.Adjacency) Summary {
	if adj == nil || adj.Len() == 0 {
		return Summary{IsConnected: true}
	}

	deg := degree.Summarize(adj)
	return Summary{
		NodeCount:                   adj.Len(),
		EdgeCount:                   adj.EdgeCount(),
		AvgDegree:                   deg.Avg,
		MaxDegree:                   deg.Max,
		MinDegree:                   deg.Min,
		Diameter:                    bfs.Diameter(adj),
		GlobalClusteringCoefficient: clustering.Global(adj),
		IsConnected:                 len(bfs.Reachable(adj, adj.Nodes()[0])) == adj.Len(),
	}
}
