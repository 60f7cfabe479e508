// SPDX-License-Identifier: MIT

package matrix

// LU is an immutable LU decomposition with partial pivoting, P·A = L·U:
//   - L is unit lower triangular (ones on the diagonal, zeros above),
//   - U is upper triangular (zeros below the diagonal),
//   - perm[i] is the index of the original row now at position i.
//
// Every accessor returns a copy, so an LU obtained from a Square stays valid
// (describing the old elements) after that Square is mutated.
type LU[T Float, N Dim] struct {
	lower *Matrix[T, N, N]
	upper *Matrix[T, N, N]
	perm  []int
	swaps int // number of actual row exchanges, for the permutation parity
}

// LU returns the decomposition of s, memoized until the next Set.
// Errors: ErrNilMatrix on a nil receiver, ErrSingular when a pivot column has no non-zero entry at or below
// the diagonal while rows remain to be eliminated. Failures are not cached.
func (s *Square[T, N]) LU() (*LU[T, N], error) {
	if s == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	lu, err := s.decompose()
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return lu, nil
}

// Lower returns a copy of L. Errors are those of LU.
func (s *Square[T, N]) Lower() (*Matrix[T, N, N], error) {
	lu, err := s.LU()
	if err != nil {
		return nil, err
	}

	return lu.L(), nil
}

// Upper returns a copy of U. Errors are those of LU.
func (s *Square[T, N]) Upper() (*Matrix[T, N, N], error) {
	lu, err := s.LU()
	if err != nil {
		return nil, err
	}

	return lu.U(), nil
}

// Permutation returns a copy of the row permutation. Errors are those of LU.
func (s *Square[T, N]) Permutation() ([]int, error) {
	lu, err := s.LU()
	if err != nil {
		return nil, err
	}

	return lu.Perm(), nil
}

// decompose returns the cached decomposition or computes and caches it.
// The returned error is a bare sentinel.
func (s *Square[T, N]) decompose() (*LU[T, N], error) {
	if s.lu != nil {
		return s.lu, nil
	}
	lu, err := luDecompose(s.mat())
	if err != nil {
		return nil, err
	}
	s.lu = lu

	return lu, nil
}

// luDecompose factors a into L, U and a permutation on a private working copy.
//
// Implementation:
//   - For k = 0..n−1: pick the row l ≥ k with the largest |w[l][k]| (first on
//     ties), swap rows k and l of w and entries k and l of perm.
//   - For each row i > k: fail with ErrSingular on a zero pivot, store the
//     multiplier m = w[i][k]/w[k][k] in w[i][k] and subtract m·row k from
//     row i over columns k+1..n−1.
//   - Split w: multipliers below the diagonal form L (plus a unit diagonal),
//     the diagonal and above form U.
//
// Whole rows are swapped, including multipliers already stored left of
// column k, which keeps L consistent with the final permutation.
//
// Complexity: Time O(n³), Space O(n²).
func luDecompose[T Float, N Dim](a *Matrix[T, N, N]) (*LU[T, N], error) {
	n := a.r
	w := make([]T, len(a.data))
	copy(w, a.data)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, l int // loop iterators and pivot row
		best, v, m T
		swaps      int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below row k.
		l, best = k, abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = abs(w[i*n+k]); v > best {
				l, best = i, v
			}
		}
		if l != k {
			swapRows(w, n, k, l)
			perm[k], perm[l] = perm[l], perm[k]
			swaps++
		}

		if k == n-1 {
			break // nothing left to eliminate
		}
		if w[k*n+k] == ZeroPivot {
			return nil, ErrSingular
		}
		for i = k + 1; i < n; i++ {
			m = w[i*n+k] / w[k*n+k]
			w[i*n+k] = m
			for j = k + 1; j < n; j++ {
				w[i*n+j] -= m * w[k*n+j]
			}
		}
	}

	lower := &Matrix[T, N, N]{r: n, c: n, data: make([]T, n*n), validate: a.validate}
	upper := &Matrix[T, N, N]{r: n, c: n, data: make([]T, n*n), validate: a.validate}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				lower.data[i*n+j] = w[i*n+j]
			case j == i:
				lower.data[i*n+j] = 1
				upper.data[i*n+j] = w[i*n+j]
			default:
				upper.data[i*n+j] = w[i*n+j]
			}
		}
	}

	return &LU[T, N]{lower: lower, upper: upper, perm: perm, swaps: swaps}, nil
}

// L returns a copy of the unit lower triangular factor.
func (lu *LU[T, N]) L() *Matrix[T, N, N] { return lu.lower.Clone() }

// U returns a copy of the upper triangular factor.
func (lu *LU[T, N]) U() *Matrix[T, N, N] { return lu.upper.Clone() }

// Perm returns a copy of the permutation: Perm()[i] is the original row at position i.
func (lu *LU[T, N]) Perm() []int {
	out := make([]int, len(lu.perm))
	copy(out, lu.perm)

	return out
}

// Sign returns the parity of the permutation, +1 or −1.
func (lu *LU[T, N]) Sign() T {
	if lu.swaps%2 == 1 {
		return -1
	}

	return 1
}

// Det returns Sign() times the product of U's diagonal.
func (lu *LU[T, N]) Det() T {
	n := lu.upper.r
	det := lu.Sign()
	for i := 0; i < n; i++ {
		det *= lu.upper.data[i*n+i]
	}

	return det
}

// Reconstruct returns P⁻¹·L·U, which reproduces the decomposed matrix up to
// rounding: row i of L·U is original row perm[i].
func (lu *LU[T, N]) Reconstruct() *Matrix[T, N, N] {
	n := lu.upper.r
	out := &Matrix[T, N, N]{r: n, c: n, data: make([]T, n*n), validate: lu.upper.validate}
	var (
		i, j, k int
		dot     T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dot = ZeroSum
			for k = 0; k <= i && k <= j; k++ { // L[i][k] = 0 for k > i, U[k][j] = 0 for k > j
				dot += lu.lower.data[i*n+k] * lu.upper.data[k*n+j]
			}
			out.data[lu.perm[i]*n+j] = dot
		}
	}

	return out
}

// swapRows exchanges rows a and b of the n-column row-major slice w.
func swapRows[T Float](w []T, n, a, b int) {
	ra, rb := w[a*n:(a+1)*n], w[b*n:(b+1)*n]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
