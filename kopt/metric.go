// Package kopt - the fixed alignment error metric.

package kopt

import (
	"github.com/katalvlaran/procrustes/matrix"
)

// SquaredError computes the sum of squared element-wise differences between
// the transformed matrix and b:
//
//	score = ‖pLeftᵗ · a · pRight − b‖²_F
//
// The left factor is applied through its transpose: with pLeft == pRight == P
// a permutation matrix, the transform relabels a's rows and columns under the
// same bijection, which is the convention every solver in this module feeds
// into Refine. The score is 0 iff the transformed matrix equals b exactly.
//
// No side effects; inputs are never mutated.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (any of the two
// products or the final comparison is shape-incompatible).
// Complexity: O(n³) for the products, O(r*c) for the comparison.
func SquaredError(a, b, pLeft, pRight matrix.Matrix) (float64, error) {
	if a == nil || b == nil || pLeft == nil || pRight == nil {
		return 0, matrix.ErrNilMatrix
	}

	lt, err := matrix.Transpose(pLeft)
	if err != nil {
		return 0, err
	}
	la, err := matrix.Mul(lt, a)
	if err != nil {
		return 0, err
	}
	transformed, err := matrix.Mul(la, pRight)
	if err != nil {
		return 0, err
	}
	if transformed.Rows() != b.Rows() || transformed.Cols() != b.Cols() {
		return 0, matrix.ErrDimensionMismatch
	}

	// Fixed i→j accumulation keeps the score bit-reproducible and identical
	// to the refiner's internal fast path.
	var (
		i, j   int
		tv, bv float64
		d, sum float64
	)
	for i = 0; i < b.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			if tv, err = transformed.At(i, j); err != nil {
				return 0, err
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, err
			}
			d = tv - bv
			sum += d * d
		}
	}

	return sum, nil
}
