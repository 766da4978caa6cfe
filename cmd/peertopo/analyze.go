package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peertopo/core"
	"github.com/katalvlaran/peertopo/report"
	"github.com/katalvlaran/peertopo/snapshot"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the topology report of a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, edges, err := a.loadGraph(snapshotPath)
			if err != nil {
				return err
			}

			start := time.Now()
			r := report.Analyze(core.IDs(nodes), edges, report.Options{
				TopN:      a.cfg.Analysis.TopN,
				Normalize: a.cfg.Analysis.Normalize,
			})
			a.log.Info("analysis complete",
				zap.Duration("elapsed", time.Since(start)),
				zap.Bool("connected", r.Summary.IsConnected),
				zap.Int("bridges", len(r.Bridges)),
			)

			if path := a.cfg.Metrics.Textfile; path != "" {
				reg := prometheus.NewRegistry()
				m, err := report.NewMetrics(reg)
				if err != nil {
					return err
				}
				m.Observe(r)
				if err := report.WriteTextfile(path, reg); err != nil {
					return err
				}
				a.log.Info("metrics written", zap.String("path", path))
			}

			switch a.cfg.Output.Format {
			case "json":
				return r.WriteJSON(cmd.OutOrStdout())
			default:
				return r.WriteText(cmd.OutOrStdout())
			}
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot file (.json, .yaml, .yml)")
	cmd.Flags().Int("top", report.DefaultTopN, "Number of bottleneck nodes to list")
	cmd.Flags().String("format", "text", "Output format (text, json)")
	cmd.Flags().Bool("normalize", false, "Rescale betweenness into [0,1]")
	cmd.Flags().String("metrics-out", "", "Write Prometheus textfile metrics to this path")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

// loadGraph reads a snapshot and maps it to engine inputs, logging what was dropped.
func (a *app) loadGraph(path string) ([]core.Node, []core.Edge, error) {
	s, err := snapshot.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshot: %w", err)
	}
	nodes, edges := s.Graph()

	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
		zap.Int("dropped_peers", s.Dropped),
	}
	if s.TakenAt != nil {
		fields = append(fields, zap.Time("taken_at", *s.TakenAt))
	}
	a.log.Info("snapshot loaded", fields...)
	if s.Dropped > 0 {
		a.log.Warn("snapshot references unknown or self peers", zap.Int("dropped_peers", s.Dropped))
	}
	return nodes, edges, nil
}
