// SPDX-License-Identifier: MIT
//
// File: bridges.go
// Role: Low-link cut-edge detection over core.Adjacency.
// Policy:
//   - Deterministic: neighbors are examined in link order, so the same
//     adjacency always yields the same bridges in the same order.
//   - Each bridge is reported as (tree parent, child).
//   - Explicit stack, no recursion.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/peertopo/core"
)

// bridgeWalker carries the mutable low-link state of one walk.
type bridgeWalker struct {
	adj   *core.Adjacency
	color map[string]int
	disc  map[string]int
	low   map[string]int
	clock int
	stack []frame
	out   []core.Edge
}

// Bridges returns the cut-edges reachable from the first inserted node of adj.
// An empty or nil adjacency yields nil. Bridges in components other than the
// first node's are not reported.
func Bridges(adj *core.Adjacency) []core.Edge {
	if adj == nil || adj.Len() == 0 {
		return nil
	}
	out, _ := BridgesFrom(adj, adj.Nodes()[0])
	return out
}

// BridgesFrom returns the cut-edges of the component containing root, in the
// order their child subtrees finish.
func BridgesFrom(adj *core.Adjacency, root string) ([]core.Edge, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	if !adj.Has(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, root)
	}

	n := adj.Len()
	w := &bridgeWalker{
		adj:   adj,
		color: make(map[string]int, n),
		disc:  make(map[string]int, n),
		low:   make(map[string]int, n),
	}
	w.discover(root, "", false)
	w.run()
	return w.out, nil
}

// discover stamps id with the next clock tick and pushes its frame.
func (w *bridgeWalker) discover(id, parent string, hasParent bool) {
	w.color[id] = Gray
	w.disc[id] = w.clock
	w.low[id] = w.clock
	w.clock++
	w.stack = append(w.stack, frame{id: id, parent: parent, hasParent: hasParent, nbrs: w.adj.Neighbors(id)})
}

// run drains the frame stack. A frame advances one neighbor per step; when its
// neighbors are exhausted it is popped and its low-link folded into the parent.
func (w *bridgeWalker) run() {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			switch {
			case w.color[nbr] == White:
				w.discover(nbr, top.id, true)
			case top.hasParent && nbr == top.parent:
				// tree edge back to the parent, not a back edge
			default:
				w.low[top.id] = min(w.low[top.id], w.disc[nbr])
			}
			continue
		}

		done := *top
		w.stack = w.stack[:len(w.stack)-1]
		w.color[done.id] = Black
		if !done.hasParent {
			continue
		}
		p := done.parent
		w.low[p] = min(w.low[p], w.low[done.id])
		if w.low[done.id] > w.disc[p] {
			w.out = append(w.out, core.Edge{From: p, To: done.id})
		}
	}
}
