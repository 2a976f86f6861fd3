// Package prep - centroid translation and Frobenius rescaling.
//
// Both operations come in two flavors selected by the target argument:
// target == nil normalizes the input in isolation (origin-centered columns /
// unit Frobenius norm); a non-nil target aligns the input to the target's
// centroid or norm instead. Either way the applied offset/factor is returned
// so callers can replay or invert the transformation.

package prep

import (
	"github.com/katalvlaran/procrustes/matrix"
)

// colMeans returns the per-column arithmetic means of m in column order.
func colMeans(m matrix.Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	means := make([]float64, cols)

	var (
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < cols; j++ {
		var sum float64
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			sum += v
		}
		means[j] = sum / float64(rows)
	}

	return means, nil
}

// addRowVector returns m with offset added to every row.
func addRowVector(m matrix.Matrix, offset []float64) (matrix.Matrix, error) {
	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v+offset[j]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Translate shifts every row of a by a constant offset vector and returns
// the shifted copy together with the offset applied.
//
//   - target == nil: offset is the negated per-column mean of a, so the
//     result has (numerically) zero column means. Translating an already
//     centered matrix is a no-op.
//   - target != nil: offset is colMeans(target) − colMeans(a), so the
//     result's centroid coincides with the target's centroid. The column
//     counts of a and target must agree.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(r*c).
func Translate(a, target matrix.Matrix) (matrix.Matrix, []float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, err
	}

	meansA, err := colMeans(a)
	if err != nil {
		return nil, nil, err
	}

	offset := make([]float64, len(meansA))
	if target == nil {
		var j int
		for j = range meansA {
			offset[j] = -meansA[j]
		}
	} else {
		if target.Cols() != a.Cols() {
			return nil, nil, matrix.ErrDimensionMismatch
		}
		var meansT []float64
		if meansT, err = colMeans(target); err != nil {
			return nil, nil, err
		}
		var j int
		for j = range meansA {
			offset[j] = meansT[j] - meansA[j]
		}
	}

	shifted, err := addRowVector(a, offset)
	if err != nil {
		return nil, nil, err
	}

	return shifted, offset, nil
}

// Rescale multiplies a by a single scale factor and returns the scaled copy
// together with the factor applied.
//
//   - target == nil: factor is 1/‖a‖_F, so the result has unit Frobenius
//     norm.
//   - target != nil: factor is ‖target‖_F/‖a‖_F, so the result's Frobenius
//     norm matches the target's exactly.
//
// Errors: matrix.ErrNilMatrix, ErrZeroNorm (when ‖a‖_F == 0).
// Complexity: O(r*c).
func Rescale(a, target matrix.Matrix) (matrix.Matrix, float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, 0, err
	}

	normA, err := matrix.FrobeniusNorm(a)
	if err != nil {
		return nil, 0, err
	}
	if normA == 0 {
		return nil, 0, ErrZeroNorm
	}

	factor := 1 / normA
	if target != nil {
		var normT float64
		if normT, err = matrix.FrobeniusNorm(target); err != nil {
			return nil, 0, err
		}
		factor = normT / normA
	}

	scaled, err := matrix.Scale(a, factor)
	if err != nil {
		return nil, 0, err
	}

	return scaled, factor, nil
}
