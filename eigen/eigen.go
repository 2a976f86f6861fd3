// Package eigen - diagonalizability guard and the gonum-backed symmetric
// eigendecomposition.
//
// Design:
//   - Strict sentinel errors, matched via errors.Is.
//   - The default solver targets real symmetric input (the only family the
//     procrustes transformation fitters need); asymmetric input is rejected
//     with ErrAsymmetric rather than decomposed inaccurately.
//   - The diagonalizability check is general: right eigenvectors via
//     mat.Eigen, rank via SVD of the realified eigenvector matrix.

package eigen

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/matrix"
)

var (
	// ErrNotDiagonalizable is returned when a decomposition is requested for
	// a matrix that is not square or whose eigenvector matrix is rank
	// deficient.
	ErrNotDiagonalizable = errors.New("eigen: matrix is not diagonalizable")

	// ErrAsymmetric is returned by the symmetric default solver when the
	// input violates symmetry beyond symTol.
	ErrAsymmetric = errors.New("eigen: matrix is not symmetric within tolerance")

	// ErrEigenFailed signals that the backend factorization did not converge.
	ErrEigenFailed = errors.New("eigen: eigendecomposition failed")
)

// symTol is the structural tolerance for the symmetry check in the default
// solver. It is intentionally tight: callers normalizing data through prep
// produce exactly symmetric Gram-style matrices.
const symTol = 1e-12

// machEps is the float64 machine epsilon used to derive the rank cutoff.
const machEps = 2.220446049250313e-16

// SymmetricEigenSolver decomposes a symmetric matrix into eigenvalues and an
// orthonormal eigenvector basis satisfying A = U·diag(S)·Uᵗ.
// Implementations must keep the eigenvalue ordering stable across calls.
type SymmetricEigenSolver interface {
	Decompose(m matrix.Matrix) (values []float64, vectors matrix.Matrix, err error)
}

// GonumSolver is the default SymmetricEigenSolver backed by gonum's
// mat.EigenSym. Eigenvalues are returned in DESCENDING order with the
// eigenvector columns reordered to match.
type GonumSolver struct{}

// defaultSolver backs the package-level Decompose.
var defaultSolver SymmetricEigenSolver = GonumSolver{}

// Decompose runs the default gonum-backed solver. See GonumSolver.Decompose.
func Decompose(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	return defaultSolver.Decompose(m)
}

// toGonum copies m into a gonum *mat.Dense.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// rankOf counts singular values of g above a relative cutoff, mirroring the
// usual numeric-rank convention (cutoff = max(dim)·eps·σ_max).
func rankOf(g *mat.Dense) (int, error) {
	var svd mat.SVD
	if !svd.Factorize(g, mat.SVDNone) {
		return 0, ErrEigenFailed
	}
	sv := svd.Values(nil)
	if len(sv) == 0 {
		return 0, nil
	}

	r, c := g.Dims()
	tol := float64(max(r, c)) * machEps * sv[0]
	rank := 0
	var i int
	for i = 0; i < len(sv); i++ {
		if sv[i] > tol {
			rank++
		}
	}

	return rank, nil
}

// IsDiagonalizable reports whether m is square and admits a full set of
// linearly independent eigenvectors.
//
// Stage 1 (Validate): nil or non-square → false.
// Stage 2 (Factorize): right eigenvectors via mat.Eigen (complex in general).
// Stage 3 (Rank): the complex n×n eigenvector matrix V has rank_C(V) ==
// rank_R([[Re −Im],[Im Re]])/2, so the realified 2n×2n embedding is ranked
// with a real SVD.
//
// Real symmetric matrices always return true.
// Complexity: O(n³).
func IsDiagonalizable(m matrix.Matrix) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()

	g, err := toGonum(m)
	if err != nil {
		return false
	}

	var eig mat.Eigen
	if !eig.Factorize(g, mat.EigenRight) {
		return false
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	// Realify V into [[Re −Im],[Im Re]].
	embed := mat.NewDense(2*n, 2*n, nil)
	var i, j int
	var cv complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cv = vecs.At(i, j)
			embed.Set(i, j, real(cv))
			embed.Set(i, n+j, -imag(cv))
			embed.Set(n+i, j, imag(cv))
			embed.Set(n+i, n+j, real(cv))
		}
	}

	rank, err := rankOf(embed)
	if err != nil {
		return false
	}

	return rank == 2*n
}

// Decompose factorizes a symmetric matrix as A = U·diag(S)·Uᵗ.
//
// Stage 1 (Guard): square + IsDiagonalizable, else ErrNotDiagonalizable;
// symmetry within symTol, else ErrAsymmetric.
// Stage 2 (Factorize): mat.EigenSym (ascending eigenvalues, orthonormal
// vectors).
// Stage 3 (Order): reverse values and eigenvector columns to the documented
// DESCENDING convention.
//
// Errors: matrix.ErrNilMatrix, ErrNotDiagonalizable, ErrAsymmetric,
// ErrEigenFailed.
// Complexity: O(n³).
func (GonumSolver) Decompose(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, err
	}
	if m.Rows() != m.Cols() {
		return nil, nil, ErrNotDiagonalizable
	}
	n := m.Rows()

	var (
		i, j   int
		av, bv float64
		err    error
	)

	// Symmetry guard before touching the symmetric backend.
	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if av, err = m.At(i, j); err != nil {
				return nil, nil, err
			}
			if bv, err = m.At(j, i); err != nil {
				return nil, nil, err
			}
			if math.Abs(av-bv) > symTol {
				return nil, nil, ErrAsymmetric
			}
			data[i*n+j] = av
		}
	}

	if !IsDiagonalizable(m) {
		return nil, nil, ErrNotDiagonalizable
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, data), true) {
		return nil, nil, ErrEigenFailed
	}

	asc := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// gonum yields ascending eigenvalues; flip to the documented descending
	// order, moving eigenvector columns with their eigenvalues.
	values := make([]float64, n)
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	var src int
	for j = 0; j < n; j++ {
		src = n - 1 - j
		values[j] = asc[src]
		for i = 0; i < n; i++ {
			if err = u.Set(i, j, vecs.At(i, src)); err != nil {
				return nil, nil, err
			}
		}
	}

	return values, u, nil
}
