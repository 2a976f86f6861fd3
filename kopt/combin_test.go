// Package kopt - white-box tests for the deterministic enumeration streams;
// the tie-break contract of Refine depends on these exact orders.
package kopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainCombinations collects the full stream, copying each emission.
func drainCombinations(n, k int) [][]int {
	var out [][]int
	g := newCombinationGen(n, k)
	for {
		c, ok := g.next()
		if !ok {
			return out
		}
		cp := make([]int, len(c))
		copy(cp, c)
		out = append(out, cp)
	}
}

func TestCombinationStreamLexOrder(t *testing.T) {
	got := drainCombinations(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestCombinationStreamCounts(t *testing.T) {
	for _, tc := range []struct{ n, k, want int }{
		{5, 3, 10},
		{5, 5, 1},
		{6, 2, 15},
		{1, 1, 1},
	} {
		got := drainCombinations(tc.n, tc.k)
		require.Len(t, got, tc.want, "C(%d,%d)", tc.n, tc.k)
		assert.Equal(t, tc.want, binomial(tc.n, tc.k))
	}
}

func TestPermutationStreamLexOrder(t *testing.T) {
	g := newPermutationGen([]int{1, 4, 6})

	var got [][]int
	for {
		p, ok := g.next()
		if !ok {
			break
		}
		cp := make([]int, len(p))
		copy(cp, p)
		got = append(got, cp)
	}

	want := [][]int{
		{1, 4, 6}, {1, 6, 4}, {4, 1, 6}, {4, 6, 1}, {6, 1, 4}, {6, 4, 1},
	}
	assert.Equal(t, want, got, "lexicographic order with the identity arrangement first")
}

func TestPermutationStreamExhausts(t *testing.T) {
	g := newPermutationGen([]int{0, 1, 2, 3})
	count := 0
	for {
		_, ok := g.next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 24, count)
	assert.Equal(t, 24, factorial(4))

	// a drained stream stays drained
	_, ok := g.next()
	assert.False(t, ok)
}
