// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the shape contract used by validators.
// This file intentionally contains ONLY type-level declarations; errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of numeric types a Dense can hold.
// Every member supports + - * /, uses its zero value as the additive identity
// and T(1) as the multiplicative identity.
//
// Notes:
//   - Complex types are excluded: AllClose needs an ordered absolute value.
//   - Integer division truncates; DivScalar still rejects a zero divisor.
type Element interface {
	constraints.Integer | constraints.Float
}

// Shaped is the minimal contract the shape validators need.
// *Dense[T] satisfies it for every T.
//
// Complexity: all methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}
