// Package prep - trailing zero-padding and its inverse.
//
// Design:
//   - Only trailing rows/columns are ever added or removed; existing data
//     keeps its position and value in the leading block.
//   - PadMode is a closed enumeration handled exhaustively; unrecognized
//     values surface ErrUnknownPadMode instead of being defaulted.
//   - Idempotence: padding a pair that already satisfies the mode returns
//     matrices equal to the inputs (fresh copies, no further growth).

package prep

import (
	"github.com/katalvlaran/procrustes/matrix"
)

// PadMode selects which dimensions ZeroPad equalizes.
type PadMode int

const (
	// Rows pads the shorter operand with trailing zero rows until both have
	// row count max(rows1, rows2); column counts stay per-operand.
	Rows PadMode = iota

	// Cols pads the narrower operand with trailing zero columns until both
	// have column count max(cols1, cols2); row counts stay per-operand.
	Cols

	// RowsCols pads both operands to the identical shape
	// (max(rows1,rows2) × max(cols1,cols2)).
	RowsCols

	// Square pads each operand to a square and both to the same final shape:
	// s×s where s is the largest dimension across both operands.
	Square
)

// String implements fmt.Stringer for PadMode.
func (p PadMode) String() string {
	switch p {
	case Rows:
		return "rows"
	case Cols:
		return "cols"
	case RowsCols:
		return "rows-cols"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// padTo copies m into the top-left block of a fresh rows×cols zero matrix.
// rows/cols must each be ≥ the corresponding dimension of m (caller enforces).
func padTo(m matrix.Matrix, rows, cols int) (matrix.Matrix, error) {
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ZeroPad returns copies of a and b grown with trailing zero rows/columns so
// that their shapes agree under the given mode (see PadMode docs for the
// exact target shape per mode).
//
// Stage 1 (Validate): non-nil operands, known mode.
// Stage 2 (Resolve): compute per-operand target shapes.
// Stage 3 (Execute): copy each operand into the top-left of a zero matrix.
//
// Errors: matrix.ErrNilMatrix, ErrUnknownPadMode.
// Complexity: O(r*c) over the padded shapes.
func ZeroPad(a, b matrix.Matrix, mode PadMode) (matrix.Matrix, matrix.Matrix, error) {
	if a == nil || b == nil {
		return nil, nil, matrix.ErrNilMatrix
	}

	var aRows, aCols, bRows, bCols int
	switch mode {
	case Rows:
		r := max(a.Rows(), b.Rows())
		aRows, aCols = r, a.Cols()
		bRows, bCols = r, b.Cols()
	case Cols:
		c := max(a.Cols(), b.Cols())
		aRows, aCols = a.Rows(), c
		bRows, bCols = b.Rows(), c
	case RowsCols:
		r, c := max(a.Rows(), b.Rows()), max(a.Cols(), b.Cols())
		aRows, aCols = r, c
		bRows, bCols = r, c
	case Square:
		s := max(max(a.Rows(), a.Cols()), max(b.Rows(), b.Cols()))
		aRows, aCols = s, s
		bRows, bCols = s, s
	default:
		return nil, nil, ErrUnknownPadMode
	}

	pa, err := padTo(a, aRows, aCols)
	if err != nil {
		return nil, nil, err
	}
	pb, err := padTo(b, bRows, bCols)
	if err != nil {
		return nil, nil, err
	}

	return pa, pb, nil
}

// TrimZeroPadding strips trailing all-zero rows, then trailing all-zero
// columns, returning the minimal leading sub-matrix containing every
// non-zero entry. Interior zero rows/columns are untouched, and applying it
// to an unpadded matrix returns an equal copy (idempotent). An all-zero
// matrix trims to its 1×1 leading block.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func TrimZeroPadding(m matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
		err  error
	)

	// Last row holding any non-zero entry; -1 when the matrix is all zeros.
	lastRow := -1
	for i = m.Rows() - 1; i >= 0 && lastRow < 0; i-- {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if v != 0 {
				lastRow = i
				break
			}
		}
	}

	lastCol := -1
	for j = m.Cols() - 1; j >= 0 && lastCol < 0; j-- {
		for i = 0; i <= lastRow; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if v != 0 {
				lastCol = j
				break
			}
		}
	}

	if lastRow < 0 || lastCol < 0 {
		// All-zero input: a Dense cannot be empty, keep the 1×1 block.
		lastRow, lastCol = 0, 0
	}

	out, err := matrix.NewDense(lastRow+1, lastCol+1)
	if err != nil {
		return nil, err
	}
	for i = 0; i <= lastRow; i++ {
		for j = 0; j <= lastCol; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// TrimZeroTail is the 1-D form of TrimZeroPadding: it returns a copy of v
// with trailing zeros removed. Interior zeros survive; a vector without
// trailing zeros round-trips unchanged. An all-zero vector yields an empty
// slice.
// Complexity: O(n).
func TrimZeroTail(v []float64) []float64 {
	end := len(v)
	for end > 0 && v[end-1] == 0 {
		end--
	}

	out := make([]float64, end)
	copy(out, v[:end])

	return out
}
