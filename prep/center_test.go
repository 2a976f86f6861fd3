// Package prep_test - centering and Frobenius rescaling properties.
package prep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procrustes/matrix"
	"github.com/katalvlaran/procrustes/prep"
)

// colMeansOf recomputes per-column means for assertions.
func colMeansOf(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	means := make([]float64, m.Cols())
	var i, j int
	for j = 0; j < m.Cols(); j++ {
		var sum float64
		for i = 0; i < m.Rows(); i++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			sum += v
		}
		means[j] = sum / float64(m.Rows())
	}

	return means
}

func TestTranslateCentersColumns(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 4, 6, 10}, {1, 3, 7, 0}, {3, 6, 9, 4}})

	// the raw columns are deliberately off-origin
	for _, mean := range colMeansOf(t, a) {
		require.Greater(t, math.Abs(mean), 1e-8)
	}

	centered, offset, err := prep.Translate(a, nil)
	require.NoError(t, err)
	require.Len(t, offset, 4)

	for j, mean := range colMeansOf(t, centered) {
		assert.LessOrEqual(t, math.Abs(mean), 1e-10, "column %d mean after centering", j)
	}

	// the offset is exactly the negated column means of the input
	for j, mean := range colMeansOf(t, a) {
		assert.InDelta(t, -mean, offset[j], 1e-12)
	}
}

func TestTranslateCenteredIsNoop(t *testing.T) {
	sphere := [][]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
	}
	scaled := make([][]float64, len(sphere))
	for i, row := range sphere {
		scaled[i] = make([]float64, len(row))
		for j, v := range row {
			scaled[i][j] = 25.25 * v
		}
	}

	centered, _, err := prep.Translate(mustFromRows(t, scaled), nil)
	require.NoError(t, err)
	assertMatrixEqual(t, scaled, centered, 1e-8)
}

func TestTranslateRemovesConstantShift(t *testing.T) {
	sphere := mustFromRows(t, [][]float64{
		{2, 4, 5}, {1, 5, 5}, {1, 4, 6}, {0, 4, 5}, {1, 3, 5}, {1, 4, 4},
	})

	centered, _, err := prep.Translate(sphere, nil)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
	}, centered, 1e-8)
}

func TestTranslateToTargetCentroid(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 5, 7}, {8, 4, 6}})
	translated := mustFromRows(t, [][]float64{{6, 13, 16}, {13, 12, 15}}) // a + [5,8,9]

	aligned, offset, err := prep.Translate(a, translated)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{6, 13, 16}, {13, 12, 15}}, aligned, 1e-10)
	assert.InDeltaSlice(t, []float64{5, 8, 9}, offset, 1e-10)
}

func TestTranslateColumnMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	b := mustFromRows(t, [][]float64{{1, 2, 3}})

	_, _, err := prep.Translate(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRescaleToUnitNorm(t *testing.T) {
	a := mustFromRows(t, [][]float64{{6, 2, 1}, {5, 2, 9}, {8, 6, 4}})
	centered, _, err := prep.Translate(a, nil)
	require.NoError(t, err)

	scaled, factor, err := prep.Rescale(centered, nil)
	require.NoError(t, err)
	require.Greater(t, factor, 0.0)

	norm, err := matrix.FrobeniusNorm(scaled)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-10)

	// arbitrarily scaled spheres land on the unit sphere too
	for _, scale := range []float64{230.15, 0.06} {
		sphere := mustFromRows(t, [][]float64{
			{scale, 0, 0}, {0, scale, 0}, {0, 0, scale},
			{-scale, 0, 0}, {0, -scale, 0}, {0, 0, -scale},
		})
		unit, _, rerr := prep.Rescale(sphere, nil)
		require.NoError(t, rerr)
		norm, rerr = matrix.FrobeniusNorm(unit)
		require.NoError(t, rerr)
		assert.InDelta(t, 1.0, norm, 1e-10, "scale %g", scale)
	}
}

func TestRescaleToTargetNorm(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 5, 7}, {8, 4, 6}})
	bigger, err := matrix.Scale(a, 6.3)
	require.NoError(t, err)

	matched, factor, err := prep.Rescale(a, bigger)
	require.NoError(t, err)
	assert.InDelta(t, 6.3, factor, 1e-10)
	eq, err := matrix.EqualApprox(matched, bigger, 1e-10)
	require.NoError(t, err)
	assert.True(t, eq)

	// matching back down recreates the original
	c := mustFromRows(t, [][]float64{{6, 12, 16, 7}, {4, 16, 17, 33}, {5, 17, 12, 16}})
	big, err := matrix.Scale(c, 123.45)
	require.NoError(t, err)
	down, _, err := prep.Rescale(big, c)
	require.NoError(t, err)
	eq, err = matrix.EqualApprox(down, c, 1e-10)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestRescaleZeroNorm(t *testing.T) {
	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	_, _, rerr := prep.Rescale(zero, nil)
	assert.ErrorIs(t, rerr, prep.ErrZeroNorm)
}
