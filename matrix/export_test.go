// SPDX-License-Identifier: MIT

package matrix

// Test bridge: lets matrix_test observe the memo slots of a Square without
// widening the production API.

// HasDetCache reports whether the determinant slot of s is filled.
func HasDetCache[T Float, N Dim](s *Square[T, N]) bool { return s.det != nil }

// HasLUCache reports whether the LU slot of s is filled.
func HasLUCache[T Float, N Dim](s *Square[T, N]) bool { return s.lu != nil }

// LaplaceDet exposes the cofactor kernel on a raw n×n row-major slice.
var LaplaceDet = laplaceDet[float64]
