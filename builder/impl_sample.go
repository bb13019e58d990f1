// SPDX-License-Identifier: MIT
// Package: birips/builder
//
// impl_sample.go: stochastic (Uniform, Cluster) and literal (Points) constructors.
//
// Contract:
//   • Uniform/Cluster need cfg.rng; draws happen in point-major,
//     coordinate-minor order so a seed fixes the output.
//   • Points copies its inputs; all points must share one dimension.

package builder

import (
	"math"

	"github.com/katalvlaran/birips/pointcloud"
)

// Uniform returns a Constructor drawing n points uniformly from the box
// [lo, hi) (per coordinate).
func Uniform(n int, lo, hi pointcloud.Point) Constructor {
	return func(dst *pointcloud.Cloud, cfg builderConfig) error {
		if n < MinSamplePoints {
			return builderErrorf(MethodUniform, ErrTooFewPoints, "n=%d", n)
		}
		if len(lo) == 0 || len(lo) != len(hi) {
			return builderErrorf(MethodUniform, ErrDimensionMismatch, "lo dim=%d hi dim=%d", len(lo), len(hi))
		}
		for i := range lo {
			if !(hi[i] > lo[i]) {
				return builderErrorf(MethodUniform, ErrInvalidRadius, "empty box on axis %d", i)
			}
		}
		if cfg.rng == nil {
			return builderErrorf(MethodUniform, ErrNeedRandSource, "n=%d", n)
		}

		for k := 0; k < n; k++ {
			p := make(pointcloud.Point, len(lo))
			for i := range p {
				p[i] = lo[i] + cfg.rng.Float64()*(hi[i]-lo[i])
			}
			*dst = append(*dst, p)
		}

		return nil
	}
}

// Cluster returns a Constructor drawing n points from an isotropic Gaussian
// of standard deviation sigma around center.
func Cluster(center pointcloud.Point, sigma float64, n int) Constructor {
	return func(dst *pointcloud.Cloud, cfg builderConfig) error {
		if n < MinSamplePoints {
			return builderErrorf(MethodCluster, ErrTooFewPoints, "n=%d", n)
		}
		if len(center) == 0 {
			return builderErrorf(MethodCluster, ErrDimensionMismatch, "empty center")
		}
		if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
			return builderErrorf(MethodCluster, ErrInvalidRadius, "sigma=%v", sigma)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodCluster, ErrNeedRandSource, "n=%d", n)
		}

		for k := 0; k < n; k++ {
			p := center.Clone()
			for i := range p {
				p[i] += cfg.rng.NormFloat64() * sigma
			}
			*dst = append(*dst, p)
		}

		return nil
	}
}

// Points returns a Constructor appending copies of the given points.
func Points(ps ...pointcloud.Point) Constructor {
	return func(dst *pointcloud.Cloud, _ builderConfig) error {
		if len(ps) == 0 {
			return builderErrorf(MethodPoints, ErrTooFewPoints, "no points")
		}
		dim := len(ps[0])
		for i, p := range ps {
			if len(p) == 0 || len(p) != dim {
				return builderErrorf(MethodPoints, ErrDimensionMismatch, "point %d dim=%d, want %d", i, len(p), dim)
			}
			*dst = append(*dst, p.Clone())
		}

		return nil
	}
}
