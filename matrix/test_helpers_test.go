// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and Must* wrappers so test bodies
//     stay focused on the property under test.
//   • Keep all data finite and well-conditioned to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// looseTol is the Equal bound for results that went through division
// (LU factors, solutions). Machine epsilon is an absolute bound and is too
// tight once values grow past 1.
const looseTol = 1e-9

// D0 is a deliberately invalid dimension.
type D0 struct{}

func (D0) Len() int { return 0 }

// MustMatrix builds an M×N matrix from rows or fails the test.
func MustMatrix[M, N matrix.Dim](t testing.TB, rows [][]float64) *matrix.Matrix[float64, M, N] {
	t.Helper()
	m, err := matrix.FromRows[float64, M, N](rows)
	require.NoError(t, err)

	return m
}

// MustSquare builds an N×N matrix from rows or fails the test.
func MustSquare[N matrix.Dim](t testing.TB, rows [][]float64) *matrix.Square[float64, N] {
	t.Helper()
	s, err := matrix.SquareFromRows[float64, N](rows)
	require.NoError(t, err)

	return s
}

// MustVector builds an N-vector or fails the test.
func MustVector[N matrix.Dim](t testing.TB, values []float64) *matrix.Vector[float64, N] {
	t.Helper()
	v, err := matrix.NewVector[float64, N](values)
	require.NoError(t, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt[M, N matrix.Dim](t testing.TB, m *matrix.Matrix[float64, M, N], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustMul multiplies or fails the test.
func MustMul[M, N, P matrix.Dim](t testing.TB, a *matrix.Matrix[float64, M, N], b *matrix.Matrix[float64, N, P]) *matrix.Matrix[float64, M, P] {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

// RandomRows returns an r×c grid of integers in [-9, 9] from a fixed seed.
// Integer entries keep sums and products exact in float64.
func RandomRows(seed int64, r, c int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return out
}

// RandomInvertibleRows returns an n×n grid with a dominant diagonal, which
// makes it invertible and well-conditioned.
func RandomInvertibleRows(seed int64, n int) [][]float64 {
	out := RandomRows(seed, n, n)
	for i := range out {
		out[i][i] = 10 * float64(n)
		if i%2 == 1 {
			out[i][i] = -out[i][i]
		}
	}

	return out
}

// Example3x3 is the reference system used across tests and examples.
var (
	Example3x3 = [][]float64{
		{1, 5, 4},
		{2, 0, 3},
		{5, 8, 2},
	}
	Example3x3RHS = []float64{12, 9, 5}

	// Singular2x2 has linearly dependent rows.
	Singular2x2 = [][]float64{
		{1, 2},
		{2, 4},
	}
)
