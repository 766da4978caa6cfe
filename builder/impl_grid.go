// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Fixed coordinate IDs "r,c" (cfg.idFn is NOT consulted).
//   - Nodes in row-major order; for each (r,c) emit Right then Bottom link.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges. Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				t.addNode(fmt.Sprintf(gridIDFmt, r, c), r*cols+c, cfg)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					t.addEdge(id, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					t.addEdge(id, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}
		return nil
	}
}
