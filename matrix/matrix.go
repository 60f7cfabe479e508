// Package matrix: Matrix is the fixed-shape, row-major dense storage every
// other kernel is built on. Elements live in a flat slice of length M*N that
// the matrix owns exclusively; derived matrices never share it.
package matrix

import (
	"fmt"
	"strings"
)

// accessErrorf wraps an underlying error with accessor context.
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an M×N row-major matrix of T. M and N are fixed by the type.
// The zero value is a usable all-zero M×N matrix with the default numeric policy.
type Matrix[T Float, M, N Dim] struct {
	r, c     int  // cached lenOf[M](), lenOf[N]()
	data     []T  // flat backing storage, length == r*c
	validate bool // reject NaN/±Inf on Set
}

// ensure sizes the backing storage of a zero-value Matrix. A zero value is an
// all-zero M×N matrix with the default numeric policy.
func (m *Matrix[T, M, N]) ensure() {
	if m.data != nil {
		return
	}
	m.r, m.c = lenOf[M](), lenOf[N]()
	if m.r <= 0 || m.c <= 0 {
		m.r, m.c = 0, 0 // bad shape: every index is out of range
	}
	m.data = make([]T, m.r*m.c)
	m.validate = DefaultValidateNaNInf
}

// Vector is an M-element column vector.
type Vector[T Float, M Dim] = Matrix[T, M, D1]

// New creates a zero-filled M×N matrix.
// Returns ErrBadShape if either dimension type reports Len() <= 0.
// Complexity: O(M*N) time and memory.
func New[T Float, M, N Dim](opts ...Option) (*Matrix[T, M, N], error) {
	rows, cols := lenOf[M](), lenOf[N]()
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Matrix[T, M, N]{
		r:        rows,
		c:        cols,
		data:     make([]T, rows*cols),
		validate: o.validateNaNInf,
	}, nil
}

// FromRows creates an M×N matrix from an explicit grid (grid[i][j] is row i,
// column j). The grid is copied.
// Stage 1 (Validate): shape, then finite values under the numeric policy.
// Stage 2 (Execute): copy rows into the flat slice.
// Errors: ErrBadShape, ErrDimensionMismatch (grid is not M×N or ragged), ErrNaNInf.
func FromRows[T Float, M, N Dim](grid [][]T, opts ...Option) (*Matrix[T, M, N], error) {
	m, err := New[T, M, N](opts...)
	if err != nil {
		return nil, err
	}
	if err = validateGrid(grid, m.r, m.c); err != nil {
		return nil, err
	}
	for i, row := range grid {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	if m.validate {
		if err = validateAllFinite(m.data); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewVector creates an M-element column vector from values (copied).
// Errors: ErrBadShape, ErrDimensionMismatch (len(values) != M), ErrNaNInf.
func NewVector[T Float, M Dim](values []T, opts ...Option) (*Vector[T, M], error) {
	v, err := New[T, M, D1](opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != v.r {
		return nil, ErrDimensionMismatch
	}
	copy(v.data, values)
	if v.validate {
		if err = validateAllFinite(v.data); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Rows returns M.
func (m *Matrix[T, M, N]) Rows() int { return lenOf[M]() }

// Cols returns N.
func (m *Matrix[T, M, N]) Cols() int { return lenOf[N]() }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if the index is outside [0,M)×[0,N), ErrNilMatrix
// on a nil receiver.
// Complexity: O(1).
func (m *Matrix[T, M, N]) At(row, col int) (T, error) {
	if m == nil {
		return 0, accessErrorf("At", row, col, ErrNilMatrix)
	}
	m.ensure()
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return 0, accessErrorf("At", row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for a bad index, ErrNaNInf for a non-finite v when
// the matrix validates values. On error nothing is written.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Set(row, col int, v T) error {
	if m == nil {
		return accessErrorf("Set", row, col, ErrNilMatrix)
	}
	m.ensure()
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return accessErrorf("Set", row, col, err)
	}
	if m.validate {
		if err := validateFinite(v); err != nil {
			return accessErrorf("Set", row, col, err)
		}
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Clone() *Matrix[T, M, N] {
	m.ensure()
	out := &Matrix[T, M, N]{r: m.r, c: m.c, data: make([]T, len(m.data)), validate: m.validate}
	copy(out.data, m.data)

	return out
}

// Data returns a row-major copy of the elements. For a Vector it is the
// vector's values in order.
func (m *Matrix[T, M, N]) Data() []T {
	m.ensure()
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns the elements as a freshly allocated M×N grid.
func (m *Matrix[T, M, N]) ToRows() [][]T {
	m.ensure()
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders the matrix row by row in scientific notation with three
// fractional digits: one space between columns, one newline between rows,
// no trailing separators. Meant for inspection, there is no parser for it.
func (m *Matrix[T, M, N]) String() string {
	m.ensure()
	return formatGrid(m.data, m.r, m.c)
}

// formatGrid renders a flat row-major r×c slice.
func formatGrid[T Float](data []T, r, c int) string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < r; i++ { // iterate over rows
		for j = 0; j < c; j++ {
			fmt.Fprintf(&sb, "%.3e", float64(data[i*c+j]))
			if j < c-1 {
				sb.WriteByte(' ')
			}
		}
		if i < r-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
