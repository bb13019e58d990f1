// SPDX-License-Identifier: MIT

package pointcloud

import "errors"

var (
	// ErrInvalidParameter indicates a parameter outside its domain: a
	// negative or non-finite neighbourhood radius, or an empty cloud.
	ErrInvalidParameter = errors.New("pointcloud: invalid parameter")

	// ErrInconsistentGeometry indicates coordinate tuples of mismatched
	// dimensionality within one cloud, or a zero-dimensional point.
	ErrInconsistentGeometry = errors.New("pointcloud: inconsistent geometry")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("pointcloud: non-finite coordinate")
)
