// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Operations wrap these sentinels with fmt.Errorf("<Op>: %w", ErrX)
// so callers keep matching with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> domain (division by zero) -> numeric policy (NaN/Inf).

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative
	// or too large to address.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrBadShape is returned when literal input is not rectangular
	// (rows of different lengths in NewFromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length differs from the column count in MulVec.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDivisionByZero is the numeric domain error raised by DivScalar when
	// the divisor equals the additive identity.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf value was produced or supplied while the
	// finite-only numeric policy is enabled (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
