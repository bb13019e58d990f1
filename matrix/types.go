// SPDX-License-Identifier: MIT

package matrix

// Matrix is a linear map between generator spaces, stored as a
// Rows()×Cols() array of float64: column j is the image of source
// generator j, row i the coefficient of target generator i.
//
// Every accessor is O(1) except Clone, which is O(rows·cols).
type Matrix interface {
	// Rows is the target dimension.
	Rows() int

	// Cols is the source dimension.
	Cols() int

	// Shape returns (Rows(), Cols()).
	Shape() (int, int)

	// At reads entry (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange outside the shape, ErrNaNInf
	// for a non-finite v.
	Set(i, j int, v float64) error

	// Clone returns an independent copy.
	Clone() Matrix
}
