// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestGet_OneIndexed(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 3, 3, []int{4, 6, 1, 7, 3, 5, 7, 1, 2})
	// offset 3*(2-1)+1-1 = 3
	require.Equal(t, 7, MustGet(t, m, 2, 1))
	require.Equal(t, 4, MustGet(t, m, 1, 1), "first stored element")
	require.Equal(t, 2, MustGet(t, m, 3, 3), "last stored element")
	require.Equal(t, 5, MustGet(t, m, 2, 3))
}

func TestGet_RowMajorWalk(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 5
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = i
	}
	m := MustMatrix(t, rows, cols, data)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			require.Equal(t, cols*(r-1)+c-1, MustGet(t, m, r, c), "(%d,%d)", r, c)
		}
	}
}

func TestGet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 3, 3, []int{4, 6, 1, 7, 3, 5, 7, 1, 2})
	for _, tc := range []struct{ row, col int }{
		{0, 1}, {1, 0}, {0, 0},
		{4, 1}, {1, 4}, {4, 4},
		{-1, 2}, {2, -1},
	} {
		t.Run(fmt.Sprintf("%d,%d", tc.row, tc.col), func(t *testing.T) {
			v, err := m.Get(tc.row, tc.col)
			require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.Zero(t, v)
		})
	}
}

func TestGet_ErrorMessage(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 3, 3, make([]int, 9))
	_, err := m.Get(0, 1)
	require.EqualError(t, err, "Matrix.Get(0,1): row 0 not in [1,3]: matrix: index out of range")
}

func TestGet_EmptyAndNil(t *testing.T) {
	t.Parallel()

	empty := MustMatrix[int](t, 0, 0, nil)
	_, err := empty.Get(1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	var zero matrix.Matrix[float64]
	_, err = zero.Get(1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "zero value is a 0x0 matrix")

	var nilM *matrix.Matrix[int]
	_, err = nilM.Get(1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilM.Set(1, 1, 0), matrix.ErrNilMatrix)
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 1, 2, []int{3, 4})
	require.Equal(t, 4, m.MustGet(1, 2))
	requirePanicsIs(t, matrix.ErrIndexOutOfRange, func() { m.MustGet(2, 1) })
}

func TestSet(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 2, 2, []float64{0, 0, 0, 0})
	require.NoError(t, m.Set(2, 1, 1.5))
	requireData(t, []float64{0, 0, 1.5, 0}, m)

	require.ErrorIs(t, m.Set(0, 1, 1), matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Set(1, 3, 1), matrix.ErrIndexOutOfRange)
	requireData(t, []float64{0, 0, 1.5, 0}, m)

	// Default policy lets NaN through; strict policy rejects it.
	require.NoError(t, m.Set(1, 1, math.NaN()))
	strict := MustMatrix(t, 1, 1, []float64{0}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, strict.Set(1, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustGet(t, strict, 1, 1))
}
