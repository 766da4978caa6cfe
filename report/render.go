// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Text and JSON renderers for Report.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
)

// WriteText writes the report as aligned plain-text sections.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	s := r.Summary

	fmt.Fprintln(tw, "SUMMARY")
	fmt.Fprintf(tw, "nodes\t%d\n", s.NodeCount)
	fmt.Fprintf(tw, "edges\t%d\n", s.EdgeCount)
	fmt.Fprintf(tw, "avg degree\t%.4f\n", s.AvgDegree)
	fmt.Fprintf(tw, "min/max degree\t%d/%d\n", s.MinDegree, s.MaxDegree)
	fmt.Fprintf(tw, "diameter\t%s\n", FormatDistance(s.Diameter))
	fmt.Fprintf(tw, "global clustering\t%.4f\n", s.GlobalClusteringCoefficient)
	fmt.Fprintf(tw, "connected\t%t\n", s.IsConnected)
	fmt.Fprintf(tw, "components\t%d (largest %d)\n", r.Components, r.LargestComponent)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "DEGREE DISTRIBUTION")
	fmt.Fprintln(tw, "degree\tnodes")
	for _, d := range r.Degrees() {
		fmt.Fprintf(tw, "%d\t%d\n", d, r.Distribution[d])
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TOP BOTTLENECKS")
	label := "betweenness"
	if r.Normalized {
		label = "betweenness (norm)"
	}
	fmt.Fprintf(tw, "rank\tnode\t%s\tdegree centrality\tclustering\n", label)
	for i, b := range r.Bottlenecks {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\n", i+1, b.ID, b.Betweenness, b.DegreeCentrality, b.Clustering)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "BRIDGES")
	if len(r.Bridges) == 0 {
		fmt.Fprintln(tw, "(none)")
	}
	for _, e := range r.Bridges {
		fmt.Fprintf(tw, "%s -- %s\n", e.From, e.To)
	}

	return tw.Flush()
}

type jsonSummary struct {
	NodeCount        int     `json:"node_count"`
	EdgeCount        int     `json:"edge_count"`
	AvgDegree        float64 `json:"avg_degree"`
	MaxDegree        int     `json:"max_degree"`
	MinDegree        int     `json:"min_degree"`
	Diameter         any     `json:"diameter"`
	GlobalClustering float64 `json:"global_clustering_coefficient"`
	IsConnected      bool    `json:"is_connected"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type jsonBottleneck struct {
	ID               string  `json:"id"`
	Betweenness      float64 `json:"betweenness"`
	DegreeCentrality float64 `json:"degree_centrality"`
	Clustering       float64 `json:"clustering"`
}

type jsonReport struct {
	Summary            jsonSummary        `json:"summary"`
	DegreeDistribution map[int]int        `json:"degree_distribution"`
	DegreeCentrality   map[string]float64 `json:"degree_centrality"`
	Clustering         map[string]float64 `json:"clustering"`
	Betweenness        map[string]float64 `json:"betweenness"`
	Normalized         bool               `json:"betweenness_normalized"`
	Bottlenecks        []jsonBottleneck   `json:"bottlenecks"`
	Bridges            []jsonEdge         `json:"bridges"`
	Components         int                `json:"components"`
	LargestComponent   int                `json:"largest_component"`
}

// MarshalJSON encodes the report, writing an infinite diameter as "inf".
func (r *Report) MarshalJSON() ([]byte, error) {
	s := r.Summary
	out := jsonReport{
		Summary: jsonSummary{
			NodeCount:        s.NodeCount,
			EdgeCount:        s.EdgeCount,
			AvgDegree:        s.AvgDegree,
			MaxDegree:        s.MaxDegree,
			MinDegree:        s.MinDegree,
			Diameter:         s.Diameter,
			GlobalClustering: s.GlobalClusteringCoefficient,
			IsConnected:      s.IsConnected,
		},
		DegreeDistribution: r.Distribution,
		DegreeCentrality:   r.DegreeCentrality,
		Clustering:         r.Clustering,
		Betweenness:        r.Betweenness,
		Normalized:         r.Normalized,
		Bottlenecks:        make([]jsonBottleneck, len(r.Bottlenecks)),
		Bridges:            make([]jsonEdge, len(r.Bridges)),
		Components:         r.Components,
		LargestComponent:   r.LargestComponent,
	}
	if math.IsInf(s.Diameter, 1) {
		out.Summary.Diameter = FormatDistance(s.Diameter)
	}
	for i, b := range r.Bottlenecks {
		out.Bottlenecks[i] = jsonBottleneck(b)
	}
	for i, e := range r.Bridges {
		out.Bridges[i] = jsonEdge{From: e.From, To: e.To}
	}
	return json.Marshal(out)
}

// WriteJSON writes the report as indented JSON followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
