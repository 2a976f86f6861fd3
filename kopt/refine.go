// Package kopt - the k-opt local-search refiner.
//
// Design:
//   - Best-improvement passes: a full pass scores every candidate, the single
//     lowest-error candidate is adopted iff it strictly beats the incumbent,
//     and the search restarts; otherwise the incumbent is a local optimum
//     under K-swaps and the search stops. Termination is guaranteed: the
//     score is bounded below by 0 and strictly decreases on every adopted
//     pass.
//   - Tie-break: among equal-error candidates the first one in the fixed
//     enumeration stream wins (combinations lexicographic, then non-identity
//     arrangements lexicographic).
//   - Hot path works on the index form of the permutation. With P the matrix
//     of bijection σ (row r has its 1 in column σ(r)), the transform
//     (Pᵗ·A·P)[i][j] equals A[σ⁻¹(i)][σ⁻¹(j)], so a candidate costs O(n²)
//     instead of two matrix products. Both matrices are prefetched into flat
//     row-major buffers to keep interface indirection out of the loop.
//   - Options.Threads > 1 fans combinations out through a threadpool; the
//     reduce step orders results by (error, stream position) and is therefore
//     bit-identical to the serial scan.

package kopt

import (
	"context"
	"math"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/procrustes/matrix"
)

// evaluator scores candidate permutations against the prefetched operands.
type evaluator struct {
	n      int
	aw, bw []float64 // flat row-major copies of a and b
}

// errorOf computes ‖Pᵗ·A·P − B‖²_F for the permutation given in index form.
// inv is caller-provided scratch of length n. Accumulation runs in fixed
// i→j order so the result matches SquaredError bit for bit.
func (e evaluator) errorOf(sigma, inv []int) float64 {
	var r, i, j int
	for r = 0; r < e.n; r++ {
		inv[sigma[r]] = r
	}

	var d, sum float64
	var off int
	for i = 0; i < e.n; i++ {
		off = inv[i] * e.n
		for j = 0; j < e.n; j++ {
			d = e.aw[off+inv[j]] - e.bw[i*e.n+j]
			sum += d * d
		}
	}

	return sum
}

// passResult carries the best candidate of one pass.
type passResult struct {
	err   float64
	seq   int   // position in the enumeration stream, for tie-breaking
	sigma []int // nil when the pass produced no candidate (never for K≥2)
}

// flatten copies m into a flat row-major buffer.
func flatten(m matrix.Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)

	// Dense already stores row-major; copy the backing slice directly.
	if d, ok := m.(*matrix.Dense); ok {
		copy(out, d.RawData())

		return out, nil
	}

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
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// newPassBar builds the per-pass progress bar over the combination stream.
// It only renders when logrus runs at Debug level, mirroring the long-pass
// reporting style used elsewhere in this module's ecosystem.
func newPassBar(total int) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.Set("prefix", "Scanning combinations ")
	bar.SetWriter(os.Stdout)
	if logrus.GetLevel() == logrus.DebugLevel {
		bar.Start()
	}

	return bar
}

// Refine improves a permutation guess by deterministic k-opt local search.
//
// Inputs: guess is a valid n×n permutation matrix, a and b are n×n matrices
// compatible with SquaredError under that permutation, initialErr is the
// caller-computed score of guess (typically SquaredError(a, b, guess,
// guess)), and opts bounds the search (see Options).
//
// Returns the refined permutation and its score. The guess is never mutated.
//
// Errors:
//   - ErrKTooSmall / ErrKTooLarge — opts.K outside [2, n].
//   - matrix.ErrNotPermutation (et al.) — guess fails structural validation.
//   - matrix.ErrDimensionMismatch — a or b is not n×n.
//
// Complexity: C(n,K)·(K!−1) evaluations of O(n²) per pass; the number of
// passes is bounded by the strictly decreasing score.
func Refine(guess, a, b matrix.Matrix, initialErr float64, opts Options) (matrix.Matrix, float64, error) {
	if opts.K < 2 {
		return nil, 0, ErrKTooSmall
	}

	sigma, err := matrix.PermutationIndices(guess)
	if err != nil {
		return nil, 0, err
	}
	n := len(sigma)
	if opts.K > n {
		return nil, 0, ErrKTooLarge
	}
	if a == nil || b == nil {
		return nil, 0, matrix.ErrNilMatrix
	}
	if a.Rows() != n || a.Cols() != n || b.Rows() != n || b.Cols() != n {
		return nil, 0, matrix.ErrDimensionMismatch
	}

	aw, err := flatten(a)
	if err != nil {
		return nil, 0, err
	}
	bw, err := flatten(b)
	if err != nil {
		return nil, 0, err
	}
	ev := evaluator{n: n, aw: aw, bw: bw}

	best := make([]int, n)
	copy(best, sigma)
	bestErr := initialErr

	var (
		pass int
		res  passResult
	)
	for {
		pass++
		if opts.Threads > 1 {
			res = parallelPass(ev, best, opts.K, opts.Threads)
		} else {
			res = serialPass(ev, best, opts.K)
		}

		if res.sigma == nil || res.err >= bestErr {
			logrus.Debugf("kopt: pass %d found no improvement, stopping at error %g", pass, bestErr)
			break
		}

		best = res.sigma
		bestErr = res.err
		logrus.Debugf("kopt: pass %d adopted candidate #%d, error %g", pass, res.seq, bestErr)

		if bestErr == 0 {
			break // global optimum of a non-negative score
		}
	}

	refined, err := matrix.PermutationFromIndices(best)
	if err != nil {
		return nil, 0, err
	}

	return refined, bestErr, nil
}

// serialPass scans the full candidate stream in order and returns the single
// best candidate with its stream position.
func serialPass(ev evaluator, base []int, k int) passResult {
	n := ev.n
	bar := newPassBar(binomial(n, k))

	res := passResult{err: math.Inf(1), seq: -1}
	keep := make([]int, n) // best candidate storage
	cand := make([]int, n) // scratch candidate
	inv := make([]int, n)  // scratch inverse

	seq := 0
	combs := newCombinationGen(n, k)
	for {
		comb, ok := combs.next()
		if !ok {
			break
		}

		perms := newPermutationGen(comb)
		first := true
		for {
			p, pok := perms.next()
			if !pok {
				break
			}
			if first {
				first = false
				continue // identity arrangement changes nothing
			}

			copy(cand, base)
			var idx int
			for idx = 0; idx < k; idx++ {
				cand[comb[idx]] = base[p[idx]]
			}

			e := ev.errorOf(cand, inv)
			if e < res.err {
				res.err = e
				res.seq = seq
				copy(keep, cand)
				if e == 0 {
					bar.Finish()
					res.sigma = keep

					return res
				}
			}
			seq++
		}
		bar.Increment()
	}
	bar.Finish()

	if res.seq >= 0 {
		res.sigma = keep
	}

	return res
}

// parallelPass evaluates one pass with per-combination jobs on a threadpool.
// Each job scans its combination's k!−1 arrangements serially; the reduce
// walks jobs in combination order and picks the lowest (error, position),
// reproducing the serial tie-break exactly.
func parallelPass(ev evaluator, base []int, k, threads int) passResult {
	n := ev.n

	// Materialize the combination stream so jobs can address it by index.
	all := make([][]int, 0, binomial(n, k))
	combs := newCombinationGen(n, k)
	for {
		comb, ok := combs.next()
		if !ok {
			break
		}
		cp := make([]int, k)
		copy(cp, comb)
		all = append(all, cp)
	}

	bar := newPassBar(len(all))
	perComb := factorial(k) - 1
	results := make([]passResult, len(all))

	// The fixed-size pool waits for exactly len(all) added jobs.
	pool := threadpool.NewFixedSize(context.Background(), threads, len(all))
	var ci int
	for ci = 0; ci < len(all); ci++ {
		job := ci
		pool.Add(func() {
			results[job] = evalCombination(ev, base, all[job], job*perComb)
			bar.Increment()
		})
	}
	pool.Wait()
	bar.Finish()

	res := passResult{err: math.Inf(1), seq: -1}
	for ci = 0; ci < len(results); ci++ {
		r := results[ci]
		if r.sigma == nil {
			continue
		}
		// Jobs are walked in ascending stream order, so a strict < keeps the
		// first-encountered candidate on ties.
		if r.err < res.err {
			res = r
		}
	}

	return res
}

// evalCombination scans the non-identity arrangements of one combination and
// returns its local best, with seq offset into the global stream.
func evalCombination(ev evaluator, base, comb []int, seqOffset int) passResult {
	n := ev.n
	k := len(comb)

	res := passResult{err: math.Inf(1), seq: -1}
	keep := make([]int, n)
	cand := make([]int, n)
	inv := make([]int, n)

	local := 0
	perms := newPermutationGen(comb)
	first := true
	for {
		p, ok := perms.next()
		if !ok {
			break
		}
		if first {
			first = false
			continue
		}

		copy(cand, base)
		var idx int
		for idx = 0; idx < k; idx++ {
			cand[comb[idx]] = base[p[idx]]
		}

		e := ev.errorOf(cand, inv)
		if e < res.err {
			res.err = e
			res.seq = seqOffset + local
			copy(keep, cand)
		}
		local++
	}

	if res.seq >= 0 {
		res.sigma = keep
	}

	return res
}
