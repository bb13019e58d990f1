// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// api.go - the orchestrator and the constructor type.
//
// Design contract:
//   - One orchestrator: BuildCloud(opts, cons...). Resolves cfg, runs cons in
//     order, concatenates their points.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical clouds.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/birips/pointcloud"
)

// Constructor appends points to dst using the resolved builderConfig.
// Constructors MUST validate parameters early and return sentinel errors,
// and MUST draw randomness only from cfg.rng.
type Constructor func(dst *pointcloud.Cloud, cfg builderConfig) error

// BuildCloud resolves options and applies all constructors in order. Any
// constructor error is wrapped as "BuildCloud: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildCloud(opts []BuilderOption, cons ...Constructor) (pointcloud.Cloud, error) {
	cfg := newBuilderConfig(opts...)

	var c pointcloud.Cloud
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCloud: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&c, cfg); err != nil {
			return nil, fmt.Errorf("BuildCloud: %w", err)
		}
	}

	return c, nil
}
