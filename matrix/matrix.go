// Package matrix - Matrix interface and central validators.
//
// Purpose:
//   - Declare the minimal read/write surface algorithms depend on.
//   - Centralize fail-fast shape validation so every kernel reports the same
//     sentinels for the same misuse.

package matrix

// Matrix is the minimal dense-matrix surface consumed by the procrustes
// algorithms. Implementations must be safe for concurrent reads; writes are
// the caller's responsibility to serialize.
type Matrix interface {
	// Rows returns the number of rows (≥ 1 for valid matrices).
	Rows() int
	// Cols returns the number of columns (≥ 1 for valid matrices).
	Cols() int
	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns the element at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}

// ValidateNotNil reports ErrNilMatrix when m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape verifies a and b are non-nil and share identical
// dimensions. Used by Add/Sub and elementwise comparisons.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible verifies a and b are non-nil and conformable for the
// product a·b (a.Cols == b.Rows).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare verifies m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
