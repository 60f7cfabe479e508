// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the determinant engine and its cache.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/matrix"
)

func TestDet_ClosedForms(t *testing.T) {
	t.Parallel()

	one := MustSquare[matrix.D1](t, [][]float64{{-3.5}})
	require.Equal(t, -3.5, one.Det())

	two := MustSquare[matrix.D2](t, [][]float64{{3, 8}, {4, 6}})
	require.Equal(t, -14.0, two.Det()) // 3·6 − 8·4
}

func TestDet_Laplace(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		got  func(t *testing.T) float64
		want float64
	}{
		{"3x3 example", func(t *testing.T) float64 { return MustSquare[matrix.D3](t, Example3x3).Det() }, 95},
		{"3x3 identity", func(t *testing.T) float64 {
			id, _ := matrix.Identity[float64, matrix.D3]()
			return id.Det()
		}, 1},
		{"4x4", func(t *testing.T) float64 {
			return MustSquare[matrix.D4](t, [][]float64{
				{2, -1, 0, 1},
				{1, 3, 2, 0},
				{0, 1, 4, -2},
				{1, 0, 1, 3},
			}).Det()
		}, 71},
		{"4x4 dependent rows", func(t *testing.T) float64 {
			return MustSquare[matrix.D4](t, [][]float64{
				{1, 2, 3, 4},
				{2, 4, 6, 8},
				{0, 1, 0, 1},
				{5, 5, 5, 5},
			}).Det()
		}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.got(t), 1e-12)
		})
	}
}

func TestDet_Singular2x2(t *testing.T) {
	t.Parallel()

	a := MustSquare[matrix.D2](t, Singular2x2)
	require.InDelta(t, 0, a.Det(), matrix.Epsilon[float64]())
	require.InDelta(t, 0, a.DetLU(), matrix.Epsilon[float64]())
}

func TestDet_LaplaceMatchesLU(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("2x2/seed=%d", seed), func(t *testing.T) {
			a := MustSquare[matrix.D2](t, RandomRows(seed, 2, 2))
			require.InDelta(t, a.Det(), a.DetLU(), looseTol)
		})
		t.Run(fmt.Sprintf("3x3/seed=%d", seed), func(t *testing.T) {
			a := MustSquare[matrix.D3](t, RandomRows(seed, 3, 3))
			require.InDelta(t, a.Det(), a.DetLU(), looseTol)
		})
	}
}

func TestDet_MatchesGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := MustSquare[matrix.D5](t, RandomRows(seed, 5, 5))
			want := mat.Det(a.Gonum())
			require.InDelta(t, want, a.Det(), 1e-9*math.Max(1, math.Abs(want)))
			require.InDelta(t, want, a.DetLU(), 1e-9*math.Max(1, math.Abs(want)))
		})
	}
}

func TestDet_TransposeInvariant(t *testing.T) {
	t.Parallel()

	a := MustSquare[matrix.D4](t, RandomRows(42, 4, 4))
	require.InDelta(t, a.Det(), a.Transpose().Det(), looseTol)
}

func TestDet_CacheInvalidatedBySet(t *testing.T) {
	t.Parallel()

	a := MustSquare[matrix.D3](t, Example3x3)
	require.False(t, matrix.HasDetCache(a))
	require.Equal(t, 95.0, a.Det())
	require.True(t, matrix.HasDetCache(a))

	// reads keep the cache
	_, err := a.At(0, 0)
	require.NoError(t, err)
	require.True(t, matrix.HasDetCache(a))

	// {{1,5,4},{2,0,3},{5,8,2}} → a[0][0]=2 adds 1·(0·2 − 3·8) = −24
	require.NoError(t, a.Set(0, 0, 2))
	require.False(t, matrix.HasDetCache(a))
	require.Equal(t, 71.0, a.Det())
	require.True(t, matrix.HasDetCache(a))
}

func TestDet_CacheInvalidatedByFailedSet(t *testing.T) {
	t.Parallel()

	a := MustSquare[matrix.D2](t, [][]float64{{1, 2}, {3, 4}})
	_ = a.Det()
	_, err := a.LU()
	require.NoError(t, err)

	require.ErrorIs(t, a.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.False(t, matrix.HasDetCache(a))
	require.False(t, matrix.HasLUCache(a))

	require.ErrorIs(t, a.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, -2.0, a.Det())
}

func TestLaplaceKernel(t *testing.T) {
	t.Parallel()

	// upper triangular: product of the diagonal
	require.Equal(t, 24.0, matrix.LaplaceDet([]float64{
		2, 7, 1,
		0, 3, 9,
		0, 0, 4,
	}, 3))
}
