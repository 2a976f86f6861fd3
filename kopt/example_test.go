package kopt_test

import (
	"fmt"

	"github.com/katalvlaran/procrustes/kopt"
	"github.com/katalvlaran/procrustes/matrix"
)

// Scenario:
//
//	b is a relabeled copy of a (same data, rows and columns renumbered under
//	one bijection). The caller's guess is three transpositions away from the
//	true relabeling; 3-opt passes recover it exactly.
//
// Options:
//   - K = 3       (all rearrangements of every 3 rows per pass)
//   - Threads = 1 (the reference serial scan)
//
// Use case:
//
//	Recovering a row/column correspondence between two labeled datasets.
func ExampleRefine() {
	a, _ := matrix.FromRows([][]float64{
		{3, 6, 1, 0, 7},
		{4, 5, 2, 7, 6},
		{8, 6, 6, 1, 7},
		{4, 4, 7, 9, 4},
		{4, 8, 0, 3, 1},
	})
	b, _ := matrix.FromRows([][]float64{
		{1, 8, 0, 4, 3},
		{6, 5, 2, 4, 7},
		{7, 6, 6, 8, 1},
		{7, 6, 1, 3, 0},
		{4, 4, 7, 4, 9},
	})
	guess, _ := matrix.PermutationFromIndices([]int{2, 0, 3, 4, 1})

	initial, err := kopt.SquaredError(a, b, guess, guess)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := kopt.DefaultOptions()
	opts.K = 3

	refined, score, err := kopt.Refine(guess, a, b, initial, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sigma, _ := matrix.PermutationIndices(refined)
	fmt.Printf("initial=%g\nfinal=%g\nsigma=%v\n", initial, score, sigma)
	// Output:
	// initial=252
	// final=0
	// sigma=[3 1 2 4 0]
}
