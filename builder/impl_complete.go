// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_complete.go - Complete(n) and Barbell(k) constructors.
//
// Contract:
//   - Complete: n ≥ 1. Nodes cfg.idFn(0..n-1); edges {i,j} for i<j in lexicographic index order.
//   - Barbell: k ≥ 3. Two K_k halves with ids leftPrefix+i and rightPrefix+i,
//     joined by the single bridge (left k-1)-(right 0).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) edges. Space: O(n) for the id slice.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodComplete   = "Complete"
	methodBarbell    = "Barbell"
	minCompleteNodes = 1
	minBarbellHalf   = 3
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		clique(t, cfg, ids, 0)
		return nil
	}
}

// Barbell returns a Constructor that builds two K_k cliques joined by one bridge.
// With k=3 this is the classic "two triangles and a bridge" fixture.
func Barbell(k int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if k < minBarbellHalf {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBarbell, k, minBarbellHalf, ErrTooFewVertices)
		}
		left := make([]string, k)
		right := make([]string, k)
		for i := 0; i < k; i++ {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			right[i] = cfg.rightPrefix + strconv.Itoa(i)
		}
		clique(t, cfg, left, 0)
		clique(t, cfg, right, k)
		t.addEdge(left[k-1], right[0])
		return nil
	}
}

// clique emits ids (attribute indices offset..offset+len-1) and every pair between them.
func clique(t *Topology, cfg builderConfig, ids []string, offset int) {
	for i, id := range ids {
		t.addNode(id, offset+i, cfg)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			t.addEdge(ids[i], ids[j])
		}
	}
}
