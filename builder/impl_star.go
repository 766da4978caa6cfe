// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2, Wheel: n ≥ 4 (else ErrTooFewVertices).
//   - Hub node has the fixed ID "Center" and is emitted first.
//   - Star leaves use cfg.idFn(1..n-1); Wheel rim uses cfg.idFn(0..n-2).
//   - Spokes are emitted Center-leaf in increasing leaf index.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges. Space: O(1) extra.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // the rim C_{n-1} needs at least 3 nodes
)

// Star returns a Constructor that builds a star with one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		t.addNode(centerVertexID, 0, cfg)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			t.addNode(leaf, i, cfg)
			t.addEdge(centerVertexID, leaf)
		}
		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		t.addNode(centerVertexID, n-1, cfg)
		if err := Cycle(n-1)(t, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			t.addEdge(centerVertexID, cfg.idFn(i))
		}
		return nil
	}
}
