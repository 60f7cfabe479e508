// SPDX-License-Identifier: MIT

// Package matrix: converters between fixed-shape matrices and gonum.
// Gonum matrices carry their shape at runtime, so importing one is the only
// place where a shape mismatch surfaces as ErrDimensionMismatch rather than
// as a compile error.
package matrix

import "gonum.org/v1/gonum/mat"

// Gonum exports m as a freshly allocated *mat.Dense (elements widened to float64).
func (m *Matrix[T, M, N]) Gonum() *mat.Dense {
	m.ensure()
	data := make([]float64, len(m.data))
	for idx, v := range m.data {
		data[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data)
}

// Gonum exports s as a freshly allocated *mat.Dense.
func (s *Square[T, N]) Gonum() *mat.Dense { return s.mat().Gonum() }

// FromGonum copies src into a new M×N matrix, converting elements to T.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (src.Dims() != M×N),
// ErrNaNInf under the numeric policy.
func FromGonum[T Float, M, N Dim](src mat.Matrix, opts ...Option) (*Matrix[T, M, N], error) {
	if src == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	m, err := New[T, M, N](opts...)
	if err != nil {
		return nil, matrixErrorf(opGonum, err)
	}
	r, c := src.Dims()
	if r != m.r || c != m.c {
		return nil, matrixErrorf(opGonum, ErrDimensionMismatch)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = T(src.At(i, j))
		}
	}
	if m.validate {
		if err = validateAllFinite(m.data); err != nil {
			return nil, matrixErrorf(opGonum, err)
		}
	}

	return m, nil
}

// SquareFromGonum is FromGonum for an N×N target.
func SquareFromGonum[T Float, N Dim](src mat.Matrix, opts ...Option) (*Square[T, N], error) {
	m, err := FromGonum[T, N, N](src, opts...)
	if err != nil {
		return nil, err
	}

	return &Square[T, N]{m: m}, nil
}
