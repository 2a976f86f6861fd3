// Package prep makes two differently-shaped or differently-scaled matrices
// comparable before an alignment is computed.
//
// The prep package provides:
//
//   - ZeroPad: grow two matrices with trailing zero rows/columns under one of
//     four modes (Rows, Cols, RowsCols, Square) until their shapes agree.
//     Padding is idempotent: re-padding an already padded pair is a no-op.
//   - TrimZeroPadding / TrimZeroTail: the inverse direction — strip trailing
//     all-zero rows and columns (or a vector's trailing zeros) down to the
//     minimal block that still holds every non-zero entry.
//   - Translate: center a matrix's columns at the origin, or shift its
//     centroid onto another matrix's centroid.
//   - Rescale: normalize a matrix to unit Frobenius norm, or match another
//     matrix's Frobenius norm exactly.
//
// Every function returns fresh matrices; inputs are never mutated. Unknown
// pad modes and zero-norm inputs are rejected with sentinel errors, never
// silently defaulted.
package prep
