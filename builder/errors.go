// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// errors.go - sentinel errors for topology constructors.
//
// Error policy (explicit and strict):
//   • Constructors return only these sentinels, wrapped with the method name.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Option constructors panic instead (programmer error), never constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is below
// the minimum the requested topology needs.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a seeded RNG
// (see WithSeed / WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure of the build itself,
// such as a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
