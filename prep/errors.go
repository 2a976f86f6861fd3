// Package prep: sentinel error set. Tests match via errors.Is; no function in
// this package panics on user input.

package prep

import "errors"

var (
	// ErrUnknownPadMode is returned when ZeroPad receives a PadMode outside
	// the closed {Rows, Cols, RowsCols, Square} set.
	ErrUnknownPadMode = errors.New("prep: unknown pad mode")

	// ErrZeroNorm is returned when Rescale is asked to normalize a matrix
	// whose Frobenius norm is zero (the scale factor would be undefined).
	ErrZeroNorm = errors.New("prep: zero Frobenius norm")
)
