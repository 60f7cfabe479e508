// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, index and numeric checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// validateDims ensures both static dimensions are positive.
// Returns ErrBadShape otherwise.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateIndex ensures 0 ≤ i < rows and 0 ≤ j < cols.
// Returns ErrOutOfRange otherwise.
func validateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// validateGrid ensures a row grid is exactly rows×cols.
// Ragged grids are a shape mismatch as well.
func validateGrid[T Float](grid [][]T, rows, cols int) error {
	if len(grid) != rows {
		return ErrDimensionMismatch
	}
	for _, row := range grid {
		if len(row) != cols {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateFinite returns ErrNaNInf if v is NaN or ±Inf.
func validateFinite[T Float](v T) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNaNInf
	}

	return nil
}

// validateAllFinite applies validateFinite to every element in order and
// stops at the first violation.
func validateAllFinite[T Float](data []T) error {
	for _, v := range data {
		if err := validateFinite(v); err != nil {
			return err
		}
	}

	return nil
}
