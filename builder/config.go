// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn       = DefaultIDFn        ("0","1","2",...)
//   • rng        = nil                (pure/deterministic unless seeded)
//   • weightFn   = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • left/right = "L" / "R"
//   • outerFace  = false              (open surfaces keep their boundary)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn

	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Weight generator, called once per created edge.
	weightFn WeightFn

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string

	// Close open surfaces with a boundary face.
	outerFace bool
}

// Deterministic defaults (named, no magic strings).
const (
	defaultLeftPrefix  = "L" // bipartite left side label
	defaultRightPrefix = "R" // bipartite right side label
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty prefixes resolve to defaults here to keep
// downstream code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	// Apply options in the given order; last-wins semantics.
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
