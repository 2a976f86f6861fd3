// Package matrix - permutation-matrix helpers.
//
// A permutation matrix is a square 0/1 matrix with exactly one 1 per row and
// per column; it encodes a bijection σ where row r carries its 1 in column
// σ(r). Left-multiplying by Pᵗ and right-multiplying by P relabels rows and
// columns of a square matrix under σ.

package matrix

// permTol is the structural tolerance used when validating 0/1 entries of a
// permutation matrix supplied as floats.
const permTol = 1e-12

// PermutationFromIndices builds the n×n permutation matrix whose row r has
// its 1 in column sigma[r].
// Stage 1 (Validate): sigma must be a bijection on {0..n−1}.
// Stage 2 (Build): set one entry per row.
// Errors: ErrBadShape (empty sigma), ErrNotPermutation.
// Complexity: O(n²) for the allocation, O(n) work.
func PermutationFromIndices(sigma []int) (*Dense, error) {
	n := len(sigma)
	if n == 0 {
		return nil, ErrBadShape
	}

	seen := make([]bool, n)
	var r int
	for r = 0; r < n; r++ {
		c := sigma[r]
		if c < 0 || c >= n || seen[c] {
			return nil, ErrNotPermutation
		}
		seen[c] = true
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for r = 0; r < n; r++ {
		m.data[r*n+sigma[r]] = 1
	}

	return m, nil
}

// PermutationIndices extracts the bijection σ from a permutation matrix:
// σ(r) is the column holding the single 1 of row r. The matrix is validated
// structurally on the way (square, one 1 per row and column, zeros elsewhere,
// within permTol).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPermutation.
// Complexity: O(n²).
func PermutationIndices(m Matrix) ([]int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	n := m.Rows()
	sigma := make([]int, n)
	colSeen := make([]bool, n)

	var (
		r, c int
		v    float64
		err  error
	)
	for r = 0; r < n; r++ {
		hit := -1
		for c = 0; c < n; c++ {
			if v, err = m.At(r, c); err != nil {
				return nil, err
			}
			switch {
			case v > 1-permTol && v < 1+permTol:
				if hit >= 0 {
					return nil, ErrNotPermutation // second 1 in this row
				}
				hit = c
			case v > -permTol && v < permTol:
				// zero entry, fine
			default:
				return nil, ErrNotPermutation // entry is neither 0 nor 1
			}
		}
		if hit < 0 || colSeen[hit] {
			return nil, ErrNotPermutation
		}
		colSeen[hit] = true
		sigma[r] = hit
	}

	return sigma, nil
}

// IsPermutation reports whether m is structurally a permutation matrix.
// Never returns an error for well-formed inputs; nil or non-square matrices
// simply yield false.
// Complexity: O(n²).
func IsPermutation(m Matrix) bool {
	_, err := PermutationIndices(m)

	return err == nil
}
