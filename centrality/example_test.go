package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/peertopo/centrality"
	"github.com/katalvlaran/peertopo/core"
)

// ExampleTopBottlenecks ranks relay peers of a small mesh.
//
//	A ─ B ─ C ─ D
//	    │
//	    E
func ExampleTopBottlenecks() {
	adj := core.BuildAdjacency(
		[]string{"A", "B", "C", "D", "E"},
		[]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "B", To: "E"}},
	)
	cb := centrality.Betweenness(adj)
	for _, id := range centrality.TopBottlenecks(adj, 2) {
		fmt.Printf("%s %.0f\n", id, cb[id])
	}
	// Output:
	// B 5
	// C 3
}
