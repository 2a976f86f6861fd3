// Package procrustes is a toolbox for aligning two numeric matrices that
// describe “the same” object up to relabeling, translation, scaling or
// rotation — the classic Procrustes family of problems.
//
// 🚀 What is procrustes?
//
//	A deterministic, dependency-light library that brings together:
//		• Dense matrices: a small row-major float64 substrate with safe accessors
//		• Shape normalization: trailing zero-padding & de-padding in four modes
//		• Centering & scaling: column-mean translation and Frobenius rescaling
//		• Eigen primitives: symmetric eigendecomposition + diagonalizability guard
//		• K-opt refinement: local search over bounded row permutations
//
// ✨ Why choose procrustes?
//
//   - Deterministic by construction – fixed enumeration orders, reproducible
//     tie-breaks, bit-identical serial and parallel results
//   - Strict sentinel errors – every precondition violation is reported,
//     nothing is silently clamped or defaulted
//   - Pure computation – no I/O, no shared state, safe for concurrent callers
//
// Everything is organized under four subpackages:
//
//	matrix/ — Matrix interface, row-major Dense, algebra ops, permutations
//	prep/   — zero-padding, de-padding, centering, Frobenius scaling
//	eigen/  — SymmetricEigenSolver capability + gonum-backed default
//	kopt/   — sum-of-squares error metric and the k-opt permutation refiner
//
// Typical flow: normalize shapes with prep.ZeroPad, center and rescale with
// prep.Translate / prep.Rescale, compute an initial score with
// kopt.SquaredError, then hand the matrices and a permutation guess to
// kopt.Refine and read back the improved permutation and its score.
//
// Ready? Start with matrix.FromRows, then explore prep and kopt.
package procrustes
