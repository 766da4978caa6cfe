// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - All topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topology.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/peertopo/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(t *Topology, cfg builderConfig) error

// Topology accumulates the nodes and edges produced by constructors.
// Inserts are idempotent: a node id or unordered pair is recorded once,
// at the position it was first emitted.
type Topology struct {
	Nodes []core.Node
	Edges []core.Edge

	nodeIdx map[string]int
	pairs   map[[2]string]struct{}
}

// newTopology allocates an empty accumulator.
func newTopology() *Topology {
	return &Topology{
		nodeIdx: make(map[string]int),
		pairs:   make(map[[2]string]struct{}),
	}
}

// addNode records id (first occurrence wins) and decorates it via cfg.attrFn.
func (t *Topology) addNode(id string, idx int, cfg builderConfig) {
	if _, ok := t.nodeIdx[id]; ok {
		return
	}
	n := core.Node{ID: id}
	if cfg.attrFn != nil {
		n.Attrs = cfg.attrFn(idx, id)
	}
	t.nodeIdx[id] = len(t.Nodes)
	t.Nodes = append(t.Nodes, n)
}

// addEdge records the unordered pair {u,v} once. Self-loops are never emitted.
func (t *Topology) addEdge(u, v string) {
	if u == v {
		return
	}
	a, b := core.Edge{From: u, To: v}.Canonical()
	key := [2]string{a, b}
	if _, ok := t.pairs[key]; ok {
		return
	}
	t.pairs[key] = struct{}{}
	t.Edges = append(t.Edges, core.Edge{From: u, To: v})
}

// IDs returns the node ids in emission order.
func (t *Topology) IDs() []string {
	return core.IDs(t.Nodes)
}

// Adjacency builds the analyzer model for this topology.
// Complexity: O(V+E).
func (t *Topology) Adjacency() *core.Adjacency {
	return core.FromNodes(t.Nodes, t.Edges)
}

// Build resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Topology. Any constructor error is wrapped
// with the context "Build: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func Build(bopts []BuilderOption, cons ...Constructor) (*Topology, error) {
	cfg := newBuilderConfig(bopts...)
	t := newTopology()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return t, nil
}

// MustBuild is Build for fixtures whose parameters are known to be valid;
// it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *Topology {
	t, err := Build(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return t
}
