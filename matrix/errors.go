// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for invalid Option
// parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it is easy to grep for.
// Accessors wrap with their call site ("At(3,0): matrix: index out of range"),
// kernels wrap with their op tag ("LU: matrix: singular matrix").
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> NaN/Inf -> singular.

var (
	// ErrBadShape is returned when a dimension type reports Len() <= 0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,Rows)×[0,Cols).
	// At/Set MUST return this, never wrap around or return a default.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime-supplied data (a row grid,
	// a vector slice, a gonum matrix) does not match the static shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a pivot or a diagonal entry of U is exactly
	// zero during decomposition or substitution. No regularization is tried.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix argument was used, or a nil
	// receiver of an error-returning method (At, Set, LU, Solve).
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
