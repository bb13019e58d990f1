// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with builderErrorf(method, ..., ErrX).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a point count below the constructor minimum.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrInvalidRadius indicates a non-positive radius, a negative sigma or an
// empty sampling box.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrDimensionMismatch indicates a center or box of unsupported or
// inconsistent dimension.
var ErrDimensionMismatch = errors.New("builder: dimension mismatch")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to BuildCloud.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>: <sentinel>" with the sentinel
// preserved for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
