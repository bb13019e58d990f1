// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs every Circle/Polygon coordinate by N(0, sigma²).
// Requires an RNG when sigma > 0. Panics if sigma < 0 or non-finite.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) { c.jitter = sigma }
}

// WithPhase rotates Circle/Polygon points by theta radians.
// Panics on a non-finite theta.
func WithPhase(theta float64) BuilderOption {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		panic("builder: WithPhase(non-finite)")
	}
	return func(c *builderConfig) { c.phase = theta }
}
