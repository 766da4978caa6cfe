package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/dfs"
)

// ExampleBridges finds the single link holding two well-meshed clusters together.
func ExampleBridges() {
	topo := builder.MustBuild(nil, builder.Barbell(4))
	for _, e := range dfs.Bridges(topo.Adjacency()) {
		fmt.Printf("%s -- %s\n", e.From, e.To)
	}
	// Output:
	// L3 -- R0
}
