// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mul returns a×b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i-k-j loop over the flat buffers, skipping zero entries of a.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c) worst case, O(nnz(a)*c) in practice; Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ; m is never mutated.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// ToGonum copies m into a gonum *mat.Dense.
func ToGonum(m *Dense) *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a Dense.
func FromGonum(a mat.Matrix) (*Dense, error) {
	r, c := a.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}

	return m, nil
}

// Rank returns the numerical rank of m: the number of singular values
// strictly above tol. A tol ≤ 0 selects the usual max(r,c)·ε·σ_max cutoff.
//
// Implementation:
//   - Stage 1: zero fast path.
//   - Stage 2: gonum SVD without U/V, then count σ_i > tol.
//
// Errors:
//   - ErrNilMatrix, ErrRankFailed (wrapped with "Rank").
//
// Complexity:
//   - Time O(min(r,c)·r·c).
func Rank(m *Dense, tol float64) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	if m.IsZero() {
		return 0, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(ToGonum(m), mat.SVDNone); !ok {
		return 0, matrixErrorf(opRank, ErrRankFailed)
	}
	values := svd.Values(nil) // descending
	if tol <= 0 {
		tol = float64(max(m.r, m.c)) * values[0] * epsilon
	}
	rank := 0
	for _, s := range values {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1
