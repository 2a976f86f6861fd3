// Package eigen exposes the symmetric eigendecomposition primitive used by
// transformation-fitting callers.
//
// The eigen package provides:
//
//   - SymmetricEigenSolver, a small capability interface so callers can swap
//     the backing linear-algebra routine without touching call sites.
//   - GonumSolver, the default backend built on gonum's mat.EigenSym.
//   - Decompose, a package-level convenience bound to the default solver:
//     A = U·diag(S)·Uᵗ with eigenvalues in descending order and U orthonormal.
//   - IsDiagonalizable, a loud guard for general callers: a matrix passes iff
//     it is square and its right-eigenvector matrix has full rank. Real
//     symmetric matrices always pass; the check exists so misuse fails with
//     ErrNotDiagonalizable instead of proceeding silently.
//
// Eigenvalue ordering is DESCENDING and stable across calls; eigenvector
// signs are backend-defined (callers must rely on reconstruction, not on a
// particular sign).
package eigen
