// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinels, visitation colors and the explicit-stack frame.

package dfs

import "errors"

// Visitation state of a node during the walk.
const (
	White = iota // not discovered yet
	Gray         // on the frame stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil adjacency is passed to BridgesFrom.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the requested root is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// frame is one level of the simulated recursion: the node being explored,
// its tree parent (hasParent is false for the root), its neighbor snapshot and
// the index of the next neighbor to examine.
type frame struct {
	id        string
	parent    string
	hasParent bool
	nbrs      []string
	next      int
}
