// Package kopt implements the sum-of-squares alignment error and the k-opt
// local-search refiner that improves an initial permutation guess.
//
// The kopt package provides:
//
//   - SquaredError: the fixed dissimilarity metric ‖Pₗᵗ·A·Pᵣ − B‖²_F used by
//     every Procrustes-style caller in this module.
//   - Refine: a deterministic best-improvement local search. Each pass
//     enumerates every combination of exactly K row indices (lexicographic
//     order) and every non-identity rearrangement of those rows
//     (lexicographic order), scores each candidate, adopts the single best
//     strictly-improving candidate, and repeats until a pass yields no
//     improvement — a local optimum under K-swaps.
//
// Determinism is a contract, not an accident: combination and permutation
// streams are generated explicitly (no hidden library iteration order), ties
// are broken by first-encountered position in the stream, and the parallel
// fan-out (Options.Threads > 1) reduces by (error, stream position) so its
// result is identical to the serial run.
//
// Cost grows as C(n,K)·(K!−1) error evaluations per pass; callers bound K
// (typically 2–4) and matrix size. Per-pass progress is reported through
// logrus at Debug level.
package kopt
