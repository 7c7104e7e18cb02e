// Package grlib is the numeric foundation of GRLib, a geometry and physics
// library: coordinate transforms, tensor contractions and the small dense
// linear algebra they rest on.
//
// Under the hood, everything is organized under subpackages:
//
//	matrix/   — Dense[T], a generic row-major matrix value type with checked
//	            access, matrix/scalar/vector arithmetic and canonical factories
//	examples/ — runnable programs showing frame rotations and basis changes
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	y, _ := a.MulVec([]float64{1, 1}) // [3 7]
//
//	go get github.com/grlib/grlib/matrix
package grlib
