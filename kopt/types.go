// Package kopt - options and sentinel errors.

package kopt

import "errors"

var (
	// ErrKTooSmall is returned when Options.K < 2: a 1-swap cannot change a
	// permutation, so the search would be vacuous. Reported, never clamped.
	ErrKTooSmall = errors.New("kopt: K must be at least 2")

	// ErrKTooLarge is returned when Options.K exceeds the permutation
	// dimension n: there is no combination of K distinct rows to permute.
	ErrKTooLarge = errors.New("kopt: K exceeds permutation dimension")
)

// Options configures Refine.
//
// Fields:
//   - K       — swap order: each pass considers all rearrangements of exactly K
//     rows among themselves. Must satisfy 2 ≤ K ≤ n. Dominates cost:
//     C(n,K)·(K!−1) evaluations per pass.
//   - Threads — fan-out width for candidate evaluation. Values ≤ 1 run the
//     reference serial scan; larger values evaluate combinations in a
//     threadpool and reduce deterministically, producing bit-identical
//     results.
type Options struct {
	K       int
	Threads int
}

// DefaultOptions returns the conservative configuration: 2-opt, serial.
func DefaultOptions() Options {
	return Options{K: 2, Threads: 1}
}
