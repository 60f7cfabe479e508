// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic layer on fixed-shape matrices:
// element-wise addition and subtraction, matrix multiplication, transpose
// and scalar scaling.
//
// Purpose:
//   - Shape agreement is a compile-time property of the type parameters, so
//     the only runtime guard left is the nil check.
//   - Every kernel allocates a fresh result; operands are never mutated and
//     results share no storage with them.

package matrix

import "fmt"

// ZeroSum is the initial value for dot products and substitution sums.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU and back substitution.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opLU        = "LU"
	opSolve     = "Solve"
	opGonum     = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and the flat loop.
//
// Determinism:
//   - Single flat slice walk 0..(M*N−1).
//
// Complexity:
//   - Time O(M*N), Space O(M*N) for the new result.
func addSub[T Float, M, N Dim](a, b *Matrix[T, M, N], sign T, opTag string) (*Matrix[T, M, N], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	a.ensure()
	b.ensure()

	res := &Matrix[T, M, N]{r: a.r, c: a.c, data: make([]T, len(a.data)), validate: a.validate}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix.
// Complexity: Time O(M*N), Space O(M*N).
func Add[T Float, M, N Dim](a, b *Matrix[T, M, N]) (*Matrix[T, M, N], error) {
	return addSub(a, b, 1, opAdd)
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix.
// Complexity: Time O(M*N), Space O(M*N).
func Sub[T Float, M, N Dim](a, b *Matrix[T, M, N]) (*Matrix[T, M, N], error) {
	return addSub(a, b, -1, opSub)
}

// Mul performs standard matrix multiplication C = A × B.
// The inner dimension N is shared by the operand types, so a mismatch does
// not compile.
//
// Implementation:
//   - Classic i→j→k triple loop; each C[i,j] is a dot product accumulated in T.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(M*N*P), Space O(M*P).
func Mul[T Float, M, N, P Dim](a *Matrix[T, M, N], b *Matrix[T, N, P]) (*Matrix[T, M, P], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	a.ensure()
	b.ensure()

	rows, inner, cols := a.r, a.c, b.c
	res := &Matrix[T, M, P]{r: rows, c: cols, data: make([]T, rows*cols), validate: a.validate}
	var (
		i, j, k int // loop iterators
		dot     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dot = ZeroSum
			for k = 0; k < inner; k++ {
				dot += a.data[i*inner+k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = dot
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Nothing derived from m is carried over.
// Errors: ErrNilMatrix.
// Complexity: Time O(M*N), Space O(M*N).
func Transpose[T Float, M, N Dim](m *Matrix[T, M, N]) (*Matrix[T, N, M], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	return transpose(m), nil
}

// transpose is the unguarded kernel shared by Transpose and Square.Transpose.
// data[i*cols + j] → res.data[j*rows + i]
func transpose[T Float, M, N Dim](m *Matrix[T, M, N]) *Matrix[T, N, M] {
	m.ensure()
	rows, cols := m.r, m.c
	res := &Matrix[T, N, M]{r: cols, c: rows, data: make([]T, len(m.data)), validate: m.validate}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[i*cols+j]
		}
	}

	return res
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(M*N), Space O(M*N).
func Scale[T Float, M, N Dim](m *Matrix[T, M, N], alpha T) (*Matrix[T, M, N], error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}

	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}
