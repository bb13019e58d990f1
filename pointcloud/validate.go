// SPDX-License-Identifier: MIT

package pointcloud

import (
	"fmt"
	"math"
)

// Validate checks that c is a usable cloud.
//
// Contract:
//   - len(c) ≥ 1, else ErrInvalidParameter. A single point is a valid cloud;
//     it produces the trivial module.
//   - every point has the dimension of c[0] and that dimension is ≥ 1,
//     else ErrInconsistentGeometry.
//   - every coordinate is finite, else ErrNonFinite.
//
// Complexity: O(n·d).
func Validate(c Cloud) error {
	if len(c) == 0 {
		return fmt.Errorf("Validate: empty cloud: %w", ErrInvalidParameter)
	}
	dim := len(c[0])
	if dim == 0 {
		return fmt.Errorf("Validate: point 0 has no coordinates: %w", ErrInconsistentGeometry)
	}
	for i, p := range c {
		if len(p) != dim {
			return fmt.Errorf("Validate: point %d has dim %d, want %d: %w", i, len(p), dim, ErrInconsistentGeometry)
		}
		for j, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("Validate: point %d coordinate %d: %w", i, j, ErrNonFinite)
			}
		}
	}

	return nil
}

// ValidateRadius checks a neighbourhood radius: finite and non-negative.
// p = 0 is accepted; densities then count coincident points only.
func ValidateRadius(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return fmt.Errorf("ValidateRadius(%v): %w", p, ErrInvalidParameter)
	}

	return nil
}
