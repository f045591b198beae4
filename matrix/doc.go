// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra kit over float64.
//
// What is here:
//
//   - Matrix: the interface every kernel accepts (Rows, Cols, At, Set, Clone).
//   - Dense: row-major implementation with a flat backing slice.
//     Build it zero-filled with NewDense(r, c) or copy an existing
//     [][]float64 with NewDenseFrom (the source is never aliased).
//   - Kernels: Add, Sub (same shape), Mul (a.Cols == b.Rows, result
//     a.Rows × b.Cols), Transpose, Scale, AllClose.
//
// Every kernel validates before computing and fails with a sentinel from
// errors.go; match it with errors.Is:
//
//	c, err := matrix.Mul(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// a.Cols() != b.Rows()
//	}
//
// Shapes are fixed at construction; Set mutates in place. Set rejects NaN
// and ±Inf (ErrNaNInf) so results stay finite.
//
// Complexity: Add/Sub/Scale/Transpose O(r·c), Mul O(r·n·c).
package matrix
