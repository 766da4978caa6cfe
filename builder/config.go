// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • attrFn      = nil                (nodes carry no attributes)
//   • left/right  = "L" / "R"          (Barbell halves)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Optional per-node attribute decorator (index, id) -> attrs.
	attrFn func(idx int, id string) map[string]any

	// Barbell half prefixes. Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

// Named defaults.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	centerVertexID     = "Center" // fixed hub id for Star and Wheel
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
