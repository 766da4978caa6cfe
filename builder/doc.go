// Package builder provides deterministic, functional-options-style generators of
// peer topologies: the node and edge lists a host would hand to the analyzers.
//
// Builders are used for three things:
//
//   - Fixtures: every analyzer test composes well-known shapes (stars, paths,
//     complete graphs, barbells) instead of hand-writing edge lists.
//   - Demo snapshots: the peertopo CLI "generate" command writes a builder result
//     as a snapshot document.
//   - Benchmarks: RandomSparse produces seeded Erdős–Rényi graphs of any size.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(bopts, cons...): resolves options and runs constructors in order.
//   - Topology accumulator:
//     – Topology: ordered Nodes/Edges with idempotent inserts.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Constructors:
//     – Path, Cycle, Star, Wheel, Complete, Grid, Barbell, RandomSparse.
//
// Guarantees:
//
//   - Idempotent composition: re-running a constructor never duplicates a node or edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, …)
//     wrapped with the constructor name for context.
//   - Same options, seed and constructor order ⇒ identical topology, element by element.
package builder
