// Package fixmat is a small linear-algebra toolkit built around matrices
// whose shape is fixed by their type.
//
// Everything lives in the matrix subpackage:
//
//	matrix/: Matrix[T, M, N] storage and arithmetic (Add, Sub, Mul,
//	         Transpose, Scale, Equal), Square[T, N] with memoized
//	         determinant and LU decomposition, Solve, gonum interop
//
// Quick example, solving a 3×3 system:
//
//	a, _ := matrix.SquareFromRows[float64, matrix.D3]([][]float64{
//		{1, 5, 4},
//		{2, 0, 3},
//		{5, 8, 2},
//	})
//	b, _ := matrix.NewVector[float64, matrix.D3]([]float64{12, 9, 5})
//	x, _ := a.Solve(b)
//	fmt.Println(x)
//
// Why fixed shapes?
//
//   - Shape errors are compile errors: Mul(a, b) only type-checks when the
//     inner dimensions agree, Det only exists on Square.
//   - Pure Go generics; the only runtime shape checks are at the borders
//     (row grids, gonum matrices).
//
//	go get github.com/katalvlaran/fixmat/matrix
package fixmat
