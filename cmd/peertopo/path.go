package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/peertopo/bfs"
	"github.com/katalvlaran/peertopo/core"
)

var errNoPath = errors.New("no path")

func newPathCmd(a *app) *cobra.Command {
	var snapshotPath, from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the fewest-hop path between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, edges, err := a.loadGraph(snapshotPath)
			if err != nil {
				return err
			}
			adj := core.FromNodes(nodes, edges)
			p := bfs.ShortestPath(adj, from, to)
			if p == nil {
				return fmt.Errorf("%w from %q to %q", errNoPath, from, to)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d hops)\n", strings.Join(p, " -> "), len(p)-1)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&from, "from", "", "Source node id")
	cmd.Flags().StringVar(&to, "to", "", "Target node id")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
