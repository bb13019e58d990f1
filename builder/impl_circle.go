// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// impl_circle.go: Circle, Polygon and Hexagon constructors.
//
// Contract:
//   • n ≥ 3, radius > 0, center 2-dimensional.
//   • Point k sits at angle phase + 2πk/n, k = 0..n-1 (no duplicated endpoint).
//   • WithJitter(sigma>0) adds N(0,sigma²) to each coordinate; needs an RNG.
//
// Complexity: Time O(n), Space O(n).

package builder

import (
	"math"

	"github.com/katalvlaran/birips/pointcloud"
)

// Circle returns a Constructor placing n points evenly on the circle of the
// given center and radius.
func Circle(center pointcloud.Point, radius float64, n int) Constructor {
	return func(dst *pointcloud.Cloud, cfg builderConfig) error {
		if n < MinCirclePoints {
			return builderErrorf(MethodCircle, ErrTooFewPoints, "n=%d < min=%d", n, MinCirclePoints)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return builderErrorf(MethodCircle, ErrInvalidRadius, "radius=%v", radius)
		}
		if len(center) != planeDim {
			return builderErrorf(MethodCircle, ErrDimensionMismatch, "center dim=%d, want %d", len(center), planeDim)
		}
		if cfg.jitter > 0 && cfg.rng == nil {
			return builderErrorf(MethodCircle, ErrNeedRandSource, "jitter=%v", cfg.jitter)
		}

		step := 2 * math.Pi / float64(n)
		for k := 0; k < n; k++ {
			theta := cfg.phase + step*float64(k)
			x := center[0] + radius*math.Cos(theta)
			y := center[1] + radius*math.Sin(theta)
			if cfg.jitter > 0 {
				x += cfg.rng.NormFloat64() * cfg.jitter
				y += cfg.rng.NormFloat64() * cfg.jitter
			}
			*dst = append(*dst, pointcloud.Point{x, y})
		}

		return nil
	}
}

// Polygon returns the regular n-gon with the given circumradius.
func Polygon(center pointcloud.Point, circumradius float64, n int) Constructor {
	return Circle(center, circumradius, n)
}

// Hexagon returns the regular hexagon with the given circumradius; its sides
// have length equal to the circumradius.
func Hexagon(center pointcloud.Point, circumradius float64) Constructor {
	return Circle(center, circumradius, HexagonSides)
}
