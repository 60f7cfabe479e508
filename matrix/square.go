// SPDX-License-Identifier: MIT

// Package matrix: Square is the N×N matrix that carries the derived
// properties (determinant, LU decomposition) and memoizes them.
//
// Cache contract:
//   - Each slot is either absent or exactly reflects the current elements.
//   - Set clears both slots before it validates or writes anything.
//   - At, String, Matrix and every derived-property read never clear a slot.
//   - Slots are filled lazily on the first read after a clear.
//
// The zero value is a usable all-zero N×N matrix.
//
// Concurrency: Square performs no locking. Callers must not call Set (or any
// reader, since readers fill caches) concurrently with another call on the
// same Square; serialize externally.
package matrix

// Square is an N×N matrix with memoized determinant and LU decomposition.
type Square[T Float, N Dim] struct {
	m *Matrix[T, N, N]

	det *T        // nil ⇒ absent
	lu  *LU[T, N] // nil ⇒ absent
}

// NewSquare creates a zero-filled N×N matrix.
func NewSquare[T Float, N Dim](opts ...Option) (*Square[T, N], error) {
	m, err := New[T, N, N](opts...)
	if err != nil {
		return nil, err
	}

	return &Square[T, N]{m: m}, nil
}

// SquareFromRows creates an N×N matrix from an explicit grid (copied).
// Errors are those of FromRows.
func SquareFromRows[T Float, N Dim](grid [][]T, opts ...Option) (*Square[T, N], error) {
	m, err := FromRows[T, N, N](grid, opts...)
	if err != nil {
		return nil, err
	}

	return &Square[T, N]{m: m}, nil
}

// Identity creates the N×N identity matrix.
func Identity[T Float, N Dim](opts ...Option) (*Square[T, N], error) {
	s, err := NewSquare[T, N](opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.m.r; i++ {
		s.m.data[i*s.m.c+i] = 1
	}

	return s, nil
}

// AsSquare wraps a copy of m. The type signature already guarantees M == N,
// so the conversion cannot fail except on nil.
func AsSquare[T Float, N Dim](m *Matrix[T, N, N]) (*Square[T, N], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Square[T, N]{m: m.Clone()}, nil
}

// Rows returns N.
func (s *Square[T, N]) Rows() int { return lenOf[N]() }

// Cols returns N.
func (s *Square[T, N]) Cols() int { return lenOf[N]() }

// At retrieves the element at (row, col). Caches are left intact.
func (s *Square[T, N]) At(row, col int) (T, error) {
	if s == nil {
		return 0, accessErrorf("At", row, col, ErrNilMatrix)
	}

	return s.mat().At(row, col)
}

// Set assigns v at (row, col). Both caches are cleared first, even when the
// write is then rejected with ErrOutOfRange or ErrNaNInf.
func (s *Square[T, N]) Set(row, col int, v T) error {
	if s == nil {
		return accessErrorf("Set", row, col, ErrNilMatrix)
	}
	s.invalidate()

	return s.mat().Set(row, col, v)
}

// Matrix returns an independent copy of the elements as a general matrix.
func (s *Square[T, N]) Matrix() *Matrix[T, N, N] { return s.mat().Clone() }

// Clone returns a deep copy. Caches are not carried over.
func (s *Square[T, N]) Clone() *Square[T, N] { return &Square[T, N]{m: s.mat().Clone()} }

// Transpose returns sᵀ as a new Square with empty caches.
func (s *Square[T, N]) Transpose() *Square[T, N] {
	return &Square[T, N]{m: transpose(s.mat())}
}

// Data returns a row-major copy of the elements.
func (s *Square[T, N]) Data() []T { return s.mat().Data() }

// ToRows returns the elements as a freshly allocated grid.
func (s *Square[T, N]) ToRows() [][]T { return s.mat().ToRows() }

// String renders like Matrix.String.
func (s *Square[T, N]) String() string { return s.mat().String() }

// mat returns the backing matrix, allocating it for a zero-value Square.
func (s *Square[T, N]) mat() *Matrix[T, N, N] {
	if s.m == nil {
		s.m = &Matrix[T, N, N]{}
	}
	s.m.ensure()

	return s.m
}

// invalidate drops both memoized properties.
func (s *Square[T, N]) invalidate() {
	s.det = nil
	s.lu = nil
}
