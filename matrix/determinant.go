// SPDX-License-Identifier: MIT

package matrix

// Det returns the determinant of s, memoized until the next Set.
//
// Implementation:
//   - N=1: the sole element.
//   - N=2: a·d − b·c.
//   - N>2: Laplace expansion along row 0,
//     det = Σ_j (−1)^j · a[0][j] · det(minor(0, j)),
//     each minor materialized by value.
//
// Complexity:
//   - Time O(N!), Space O(N²) per recursion level. This is intended for the
//     small N a fixed-size type is used for. Use DetLU (O(N³)) for larger N;
//     the two paths round differently and are only expected to agree within a
//     tolerance.
func (s *Square[T, N]) Det() T {
	if s.det != nil {
		return *s.det
	}
	m := s.mat()
	d := laplaceDet(m.data, m.r)
	s.det = &d

	return d
}

// DetLU returns the determinant computed from the LU decomposition:
// the product of U's diagonal, negated for an odd number of row swaps.
// A decomposition that stops on a zero pivot means the determinant is
// exactly zero, so 0 is returned. Uses (and fills) the LU cache, not the
// determinant cache.
func (s *Square[T, N]) DetLU() T {
	lu, err := s.decompose()
	if err != nil {
		return 0
	}

	return lu.Det()
}

// laplaceDet evaluates the determinant of the n×n row-major matrix a.
func laplaceDet[T Float](a []T, n int) T {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	var det T
	sign := T(1)
	for j := 0; j < n; j++ {
		det += sign * a[j] * laplaceDet(minor(a, n, 0, j), n-1)
		sign = -sign
	}

	return det
}

// minor returns a copy of the n×n matrix a without row r and column c.
func minor[T Float](a []T, n, r, c int) []T {
	out := make([]T, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			out = append(out, a[i*n+j])
		}
	}

	return out
}
