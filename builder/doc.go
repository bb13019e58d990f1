// SPDX-License-Identifier: MIT

// Package builder synthesises deterministic point clouds for tests, examples
// and the demonstration driver.
//
// What:
//
//   - Circle(center, radius, n): n points evenly spaced on a circle.
//   - Polygon / Hexagon: regular polygons (a Circle by another name).
//   - Uniform(n, lo, hi): background noise uniform in an axis-aligned box.
//   - Cluster(center, sigma, n): an isotropic Gaussian blob.
//   - Points(...): literal points, for hand-written fixtures.
//
// Constructors compose: BuildCloud runs them in order and concatenates their
// points, so "three small loops, two big loops and some noise" is one call.
//
// Determinism:
//
//   - Same options, seed and constructor order ⇒ identical clouds.
//   - Stochastic constructors (Uniform, Cluster) and WithJitter require an
//     RNG (WithSeed / WithRand), else ErrNeedRandSource.
//
// Errors:
//
//   - ErrTooFewPoints      n below the constructor minimum
//   - ErrInvalidRadius     radius ≤ 0, sigma < 0, empty box
//   - ErrDimensionMismatch center/box dimension not supported or inconsistent
//   - ErrNeedRandSource    stochastic path without an RNG
//   - ErrConstructFailed   nil constructor
package builder
