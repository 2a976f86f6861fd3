// Package matrix_test exercises the Dense substrate via the public API.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procrustes/matrix"
)

// mustFromRows builds a Dense from literal rows or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows must accept a rectangular literal")

	return m
}

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			// immediately after creation all elements should be 0
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v, aerr := m.At(i, j)
					require.NoError(t, aerr)
					if v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3}, {3, 0}, {-1, 2}, {0, 0},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestFromRows(t *testing.T) {
	t.Run("rectangular literal round-trips", func(t *testing.T) {
		m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
		assert.Equal(t, 2, m.Rows())
		assert.Equal(t, 3, m.Cols())
		v, err := m.At(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 6.0, v)
	})

	t.Run("ragged input is rejected", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := matrix.FromRows(nil)
		assert.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = matrix.FromRows([][]float64{{}})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})

	t.Run("source slice is copied, not aliased", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := mustFromRows(t, src)
		src[0][0] = 99
		v, err := m.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v, "mutating the source must not affect the matrix")
	})
}

func TestFromRow(t *testing.T) {
	m, err := matrix.FromRow([]float64{3, 0, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	// source is copied, not aliased
	src := []float64{1, 2}
	m, err = matrix.FromRow(src)
	require.NoError(t, err)
	src[0] = 99
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = matrix.FromRow(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestRawDataRowMajorLayout(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	raw := m.RawData()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, raw, "flat buffer must be row-major")

	// the slice aliases the matrix storage, it is not a copy
	require.NoError(t, m.Set(1, 0, 40))
	assert.Equal(t, 40.0, raw[3])
}

func TestAtSetBounds(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
		err = m.Set(idx[0], idx[1], 7)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", idx[0], idx[1])
	}
}

func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()

	require.NoError(t, cp.Set(0, 0, 42))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, aerr := id.At(i, j)
			require.NoError(t, aerr)
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, v, "Identity[%d,%d]", i, j)
		}
	}

	_, err = matrix.Identity(0)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
}
