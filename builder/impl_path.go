// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Nodes via cfg.idFn in ascending index order 0..n-1.
//   - Edges i-(i+1) in ascending i; Cycle closes with (n-1)-0.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges. Space: O(1) extra.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		chain(t, cfg, n)
		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		chain(t, cfg, n)
		t.addEdge(cfg.idFn(n-1), cfg.idFn(0))
		return nil
	}
}

// chain emits nodes 0..n-1 and the n-1 consecutive links between them.
func chain(t *Topology, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		t.addNode(cfg.idFn(i), i, cfg)
	}
	for i := 0; i+1 < n; i++ {
		t.addEdge(cfg.idFn(i), cfg.idFn(i+1))
	}
}
