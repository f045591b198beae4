package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix and prints cells with two decimals.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := matrix.Format(c, 2)
	fmt.Print(s)

	// Incompatible shapes are rejected before any work is done.
	_, err = matrix.Mul(a, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// [58.00, 64.00]
	// [139.00, 154.00]
	// true
}

// ExampleAdd shows element-wise addition.
func ExampleAdd() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFrom([][]float64{{0.5, 0.5}, {0.5, 0.5}})

	c, _ := matrix.Add(a, b)
	fmt.Print(c)

	// Output:
	// [1.5, 2.5]
	// [3.5, 4.5]
}
