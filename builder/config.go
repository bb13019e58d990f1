// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil  (pure/deterministic unless seeded)
//   • jitter = 0.0  (no perturbation of Circle/Polygon points)
//   • phase  = 0.0  (first circle point on the +x axis)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng    *rand.Rand // nil means "no randomness"
	jitter float64    // Gaussian sigma added to Circle/Polygon coordinates
	phase  float64    // angular offset of the first circle point, radians
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
