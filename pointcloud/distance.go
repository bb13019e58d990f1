// SPDX-License-Identifier: MIT

package pointcloud

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// l2 is the norm order passed to floats.Distance.
const l2 = 2

// Distance returns the Euclidean distance between a and b.
// The result is symmetric bit-for-bit, so filtration values computed for
// (i,j) and (j,i) always agree.
// Callers must pass points of equal dimension (see Validate).
func Distance(a, b Point) float64 {
	return floats.Distance(a, b, l2)
}

// DistanceMatrix returns the symmetric n×n matrix of pairwise distances.
//
// Implementation:
//   - Stage 1: Validate c.
//   - Stage 2: fill the upper triangle in row-major order (i<j); the diagonal
//     stays zero.
//
// Complexity: Time O(n²·d), Space O(n²).
func DistanceMatrix(c Cloud) (*mat.SymDense, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	n := len(c)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(c[i], c[j]))
		}
	}

	return d, nil
}

// Diameter returns the largest pairwise distance of c (0 for a single point).
func Diameter(c Cloud) (float64, error) {
	d, err := DistanceMatrix(c)
	if err != nil {
		return 0, err
	}

	return MaxDistance(d), nil
}

// MaxDistance returns the largest entry of a distance matrix.
func MaxDistance(d *mat.SymDense) float64 {
	n := d.SymmetricDim()
	best := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := d.At(i, j); v > best {
				best = v
			}
		}
	}

	return best
}
