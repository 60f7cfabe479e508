// SPDX-License-Identifier: MIT

package matrix

// Solve returns x such that A·x ≈ b, reusing the memoized LU decomposition of A.
// Errors: ErrNilMatrix, ErrSingular (zero pivot in LU or zero U[i][i]).
func Solve[T Float, N Dim](a *Square[T, N], b *Vector[T, N]) (*Vector[T, N], error) {
	if a == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}

	return a.Solve(b)
}

// Solve returns x such that s·x ≈ b, reusing the memoized LU decomposition.
// No iterative refinement is performed; b is not modified.
// Errors: ErrNilMatrix (nil s or b), ErrSingular.
func (s *Square[T, N]) Solve(b *Vector[T, N]) (*Vector[T, N], error) {
	if s == nil || b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	lu, err := s.decompose()
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return lu.Solve(b)
}

// Solve returns x such that P⁻¹·L·U·x ≈ b.
//
// Implementation:
//   - Stage 1: permute b, y[i] = b[perm[i]].
//   - Stage 2: forward substitution through L (unit diagonal, no division),
//     y[i] -= Σ_{j<i} L[i][j]·y[j].
//   - Stage 3: back substitution through U for i = n−1..0,
//     x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i].
//
// Errors: ErrNilMatrix (nil b), ErrSingular (U[i][i] == 0).
// Complexity: Time O(n²), Space O(n).
func (lu *LU[T, N]) Solve(b *Vector[T, N]) (*Vector[T, N], error) {
	if b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	b.ensure()

	n := lu.upper.r
	L, U := lu.lower.data, lu.upper.data
	x := &Vector[T, N]{r: n, c: 1, data: make([]T, n), validate: b.validate}
	y := x.data // substitution runs in place

	var (
		i, j int
		sum  T
	)
	for i = 0; i < n; i++ {
		y[i] = b.data[lu.perm[i]]
	}

	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < i; j++ {
			sum += L[i*n+j] * y[j]
		}
		y[i] -= sum
	}

	for i = n - 1; i >= 0; i-- {
		if U[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += U[i*n+j] * y[j]
		}
		y[i] = (y[i] - sum) / U[i*n+i]
	}

	return x, nil
}
