package matrix_test

import (
	"errors"
	"fmt"

	"github.com/grlib/grlib/matrix"
)

// ExampleDense_Mul multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleDense_Mul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleDense_MulVec applies a matrix to a column vector.
func ExampleDense_MulVec() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	y, _ := a.MulVec([]float64{1, 1})
	fmt.Println(y)

	// Output:
	// [3 7]
}

// ExampleDense_Add shows the dimension-mismatch error surface.
func ExampleDense_Add() {
	a, _ := matrix.New(2, 2, 1.0)
	b, _ := matrix.New(2, 3, 1.0)

	_, err := a.Add(b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// true
}

// ExampleDiagonal round-trips a diagonal through DiagVec.
func ExampleDiagonal() {
	d, _ := matrix.Diagonal([]int{1, 2, 3})
	fmt.Print(d)
	fmt.Println(d.DiagVec())

	// Output:
	// [1, 0, 0]
	// [0, 2, 0]
	// [0, 0, 3]
	// [1 2 3]
}

// ExampleDense_DivScalar shows division by the additive identity is rejected.
func ExampleDense_DivScalar() {
	a, _ := matrix.New(1, 2, 4.0)

	half, _ := a.DivScalar(2)
	fmt.Print(half)

	_, err := a.DivScalar(0)
	fmt.Println(err)

	// Output:
	// [2, 2]
	// DivScalar: matrix: division by zero
}
