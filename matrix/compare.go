// SPDX-License-Identifier: MIT

package matrix

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value (2⁻⁵² for float64, 2⁻²³ for float32).
//
// The explicit T(...) conversion forces rounding to T on every step, so
// the loop cannot be fused or carried out in wider precision.
func Epsilon[T Float]() T {
	one := T(1)
	eps := T(1)
	for T(one+eps/2) != one {
		eps /= 2
	}

	return eps
}

// Equal reports whether a and b agree element-wise within an absolute bound:
// |a[i,j] − b[i,j]| ≤ tol for every pair. Without WithTolerance the bound is
// Epsilon[T](). This is approximate equality on purpose; results of
// floating-point arithmetic are compared with a tolerance, never bit-wise.
//
// Two nil matrices are equal; a nil and a non-nil one are not. NaN is never
// equal to anything.
func Equal[T Float, M, N Dim](a, b *Matrix[T, M, N], opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	a.ensure()
	b.ensure()

	tol := Epsilon[T]()
	if bound, ok := gatherOptions(opts...).Tolerance(); ok {
		tol = T(bound)
	}

	var diff T
	for idx := range a.data {
		diff = a.data[idx] - b.data[idx]
		if diff < 0 {
			diff = -diff
		}
		if !(diff <= tol) { // false for NaN as well
			return false
		}
	}

	return true
}

// EqualSquare is Equal for two Square matrices; caches are not compared.
func EqualSquare[T Float, N Dim](a, b *Square[T, N], opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return Equal(a.mat(), b.mat(), opts...)
}
