// Package matrix - universal algebra kernels on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, Frobenius norm, and approximate equality. All kernels
// perform strict fail-fast validation and return sentinel errors on
// dimension mismatches.
//
// Design:
//   - Fast-path on concrete *Dense operands (flat slice walks); generic
//     At/Set fallback with fixed i→j(→k) loop orders otherwise.
//   - Inputs are never mutated; each kernel allocates exactly one result.
//   - Deterministic accumulation orders so scores are bit-reproducible.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNorm      = "FrobeniusNorm"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var p int
			for p = 0; p < len(res.data); p++ {
				res.data[p] = da.data[p] + sign*db.data[p]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop with fixed i→j order.
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, opErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, opErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, opErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add returns a+b as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a−b as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b as a fresh Dense.
// Stage 1 (Validate): ValidateMulCompatible.
// Stage 2 (Execute): row-major i→k→j accumulation on the *Dense fast path,
// i→j→k on the generic fallback; zero elements are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(aRows*aCols*bCols).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, sum float64
	)

	// Fast path for two Dense matrices: flat row-major accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var offA, offB, offR int
			for i = 0; i < aRows; i++ {
				offA = i * aCols
				offR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[offA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					offB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[offR+j] += av * db.data[offB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, opErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, opErrorf(opMul, err)
				}
				sum += av * bv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, opErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵗ as a fresh Dense with rows and columns swapped.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    float64
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, opErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		var p int
		for p = 0; p < len(res.data); p++ {
			res.data[p] = alpha * dm.data[p]
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opErrorf(opScale, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, opErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ m[i][j]²), accumulated in fixed i→j order.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, opErrorf(opNorm, err)
	}

	if dm, ok := m.(*Dense); ok {
		var sum float64
		var p int
		for p = 0; p < len(dm.data); p++ {
			sum += dm.data[p] * dm.data[p]
		}

		return math.Sqrt(sum), nil
	}

	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, opErrorf(opNorm, err)
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}

// EqualApprox reports whether a and b share a shape and differ by at most tol
// in every element. A negative tol is treated as zero (exact comparison).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func EqualApprox(a, b Matrix, tol float64) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	if tol < 0 {
		tol = 0
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(av-bv) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
