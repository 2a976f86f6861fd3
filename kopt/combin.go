// Package kopt - deterministic combination and permutation streams.
//
// The tie-break contract of Refine depends on a fixed enumeration order, so
// both streams are generated explicitly instead of leaning on a library's
// iteration order:
//
//   - combinationGen emits the k-subsets of {0..n−1} as ascending index
//     slices in lexicographic order: (0,1,2), (0,1,3), ..., (n−3,n−2,n−1).
//   - permutationGen emits every arrangement of its base slice in
//     lexicographic order; the first emission is the ascending identity
//     arrangement, which Refine skips.
//
// Both are iterative, restartable (allocate a new one), and finite. next()
// returns an internal slice valid only until the following call — callers
// copy if they retain it.

package kopt

// combinationGen streams k-subsets of {0..n-1} in lexicographic order.
type combinationGen struct {
	n, k    int
	cur     []int
	started bool
	done    bool
}

// newCombinationGen prepares a stream over C(n,k) subsets. Caller guarantees
// 1 ≤ k ≤ n.
func newCombinationGen(n, k int) *combinationGen {
	return &combinationGen{n: n, k: k, cur: make([]int, k)}
}

// next advances the stream. The returned slice aliases internal state.
func (g *combinationGen) next() ([]int, bool) {
	if g.done {
		return nil, false
	}

	var i int
	if !g.started {
		g.started = true
		for i = 0; i < g.k; i++ {
			g.cur[i] = i
		}

		return g.cur, true
	}

	// Rightmost position that can still advance: cur[i] < n-k+i.
	i = g.k - 1
	for i >= 0 && g.cur[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true

		return nil, false
	}
	g.cur[i]++
	for j := i + 1; j < g.k; j++ {
		g.cur[j] = g.cur[j-1] + 1
	}

	return g.cur, true
}

// permutationGen streams the permutations of base in lexicographic order.
type permutationGen struct {
	cur     []int
	started bool
	done    bool
}

// newPermutationGen prepares a stream starting from base's ascending sort
// order. Refine always feeds an ascending combination, so the stream starts
// at the identity arrangement.
func newPermutationGen(base []int) *permutationGen {
	cur := make([]int, len(base))
	copy(cur, base)

	return &permutationGen{cur: cur}
}

// next advances the stream via the classic next-permutation step.
// The returned slice aliases internal state.
func (g *permutationGen) next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true

		return g.cur, true
	}

	n := len(g.cur)

	// Longest non-increasing suffix: pivot is the element before it.
	i := n - 2
	for i >= 0 && g.cur[i] >= g.cur[i+1] {
		i--
	}
	if i < 0 {
		g.done = true

		return nil, false
	}

	// Rightmost successor strictly greater than the pivot.
	j := n - 1
	for g.cur[j] <= g.cur[i] {
		j--
	}
	g.cur[i], g.cur[j] = g.cur[j], g.cur[i]

	// Reverse the suffix to restore ascending order after the pivot.
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		g.cur[l], g.cur[r] = g.cur[r], g.cur[l]
	}

	return g.cur, true
}

// binomial returns C(n, k) using the multiplicative formula; callers keep
// n and k small enough that the product fits an int.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}

	return res
}

// factorial returns k! for the small swap orders Refine accepts.
func factorial(k int) int {
	res := 1
	for i := 2; i <= k; i++ {
		res *= i
	}

	return res
}
