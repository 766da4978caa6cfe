package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peertopo/graphml"
)

func newExportCmd(a *app) *cobra.Command {
	var snapshotPath, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a snapshot as GraphML",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, edges, err := a.loadGraph(snapshotPath)
			if err != nil {
				return err
			}
			w, closeFn, err := createOutput(outPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := graphml.Write(w, nodes, edges); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}
			a.log.Info("graphml exported", zap.String("out", outPath), zap.Int("nodes", len(nodes)))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}
