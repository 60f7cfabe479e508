// Package matrix offers fixed-shape dense matrices for small linear systems.
//
// The matrix package provides:
//
//   - Matrix[T, M, N]: a row-major M×N matrix whose shape is part of its type,
//     so Add/Sub on different shapes or Mul with a wrong inner dimension does
//     not compile.
//   - Square[T, N]: the N×N form that owns the derived properties. Det
//     (Laplace expansion) and LU (partial pivoting) are memoized and dropped
//     on every Set.
//   - Solve: forward/back substitution over the memoized LU decomposition.
//   - Equal: element-wise comparison within machine epsilon (or a caller
//     tolerance) instead of bit-wise equality.
//   - Gonum/FromGonum: conversion to and from gonum's *mat.Dense.
//
// Dimensions are zero-size types implementing Dim (D1…D9 are provided):
//
//	a, _ := matrix.SquareFromRows[float64, matrix.D3]([][]float64{
//		{1, 5, 4},
//		{2, 0, 3},
//		{5, 8, 2},
//	})
//	b, _ := matrix.NewVector[float64, matrix.D3]([]float64{12, 9, 5})
//	x, err := a.Solve(b)
//
// Errors are sentinels (ErrOutOfRange, ErrSingular, ...) matched with
// errors.Is. A Square is not safe for concurrent use; see Square.
package matrix
