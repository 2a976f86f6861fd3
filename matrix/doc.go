// Package matrix provides the dense numeric substrate for the procrustes
// library.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) so algorithms can
//     accept any implementation while returning the concrete row-major Dense.
//   - Dense, a cache-friendly row-major float64 matrix with safe accessors:
//     At/Set return sentinel errors instead of panicking.
//   - Universal algebra kernels: Add, Sub, Mul, Transpose, Scale, plus the
//     Frobenius norm and an approximate-equality check.
//   - Permutation-matrix helpers: construction from an index bijection,
//     strict validation, and conversion back to index form.
//
// All operations are value-semantic: inputs are never mutated, every result
// is a freshly allocated Dense. Loop orders are fixed so results are
// bit-reproducible across runs.
package matrix
