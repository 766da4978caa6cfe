// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus gauges for the headline report numbers.

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics mirrors the latest observed Report as Prometheus gauges.
type Metrics struct {
	nodes       prometheus.Gauge
	edges       prometheus.Gauge
	diameter    prometheus.Gauge
	avgDegree   prometheus.Gauge
	clustering  prometheus.Gauge
	connected   prometheus.Gauge
	bridges     prometheus.Gauge
	betweenness *prometheus.GaugeVec
}

// NewMetrics creates the gauges and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_nodes",
			Help: "Number of nodes in the last analyzed snapshot",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_edges",
			Help: "Number of undirected edges in the last analyzed snapshot",
		}),
		diameter: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_diameter",
			Help: "Longest shortest path in hops, +Inf when disconnected",
		}),
		avgDegree: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_avg_degree",
			Help: "Mean node degree",
		}),
		clustering: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_global_clustering",
			Help: "Mean local clustering coefficient over nodes of degree >= 2",
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_connected",
			Help: "1 if every node reaches every other node, else 0",
		}),
		bridges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "peertopo_bridges",
			Help: "Number of cut-edges found from the first node",
		}),
		betweenness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "peertopo_betweenness",
				Help: "Betweenness centrality per node",
			},
			[]string{"node"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.nodes, m.edges, m.diameter, m.avgDegree, m.clustering, m.connected, m.bridges, m.betweenness,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("report: register metrics: %w", err)
		}
	}
	return m, nil
}

// Observe replaces the gauge values with those of r. Nodes that disappeared
// since the previous observation lose their betweenness series.
func (m *Metrics) Observe(r *Report) {
	s := r.Summary
	m.nodes.Set(float64(s.NodeCount))
	m.edges.Set(float64(s.EdgeCount))
	m.diameter.Set(s.Diameter)
	m.avgDegree.Set(s.AvgDegree)
	m.clustering.Set(s.GlobalClusteringCoefficient)
	if s.IsConnected {
		m.connected.Set(1)
	} else {
		m.connected.Set(0)
	}
	m.bridges.Set(float64(len(r.Bridges)))

	m.betweenness.Reset()
	for id, v := range r.Betweenness {
		m.betweenness.WithLabelValues(id).Set(v)
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("report: write textfile %s: %w", path, err)
	}
	return nil
}
