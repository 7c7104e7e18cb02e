// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-scalar arithmetic (AddScalar, SubScalar, Scale, DivScalar).
//   - Tolerance comparison (AllClose, ApproxEqual).
//
// Design:
//   - One private kernel (mapScalar) owns the loop; public methods only pick
//     the element function and the operation tag.
//
// Determinism & Performance:
//   - Flat loop 0..n-1 over the row-major buffer.
//   - One allocation for the result; operands are never mutated.

package matrix

import "math"

// mapScalar builds out[idx] = f(m[idx]) with m's shape and policy.
// Time: O(r*c). Space: O(r*c).
func (m *Dense[T]) mapScalar(opTag string, f func(v T) T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := m.alloc(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}
	if err := res.enforcePolicy(opTag); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// AddScalar returns a new matrix with s added to every element.
func (m *Dense[T]) AddScalar(s T) (*Dense[T], error) {
	return m.mapScalar(opAddScalar, func(v T) T { return v + s })
}

// SubScalar returns a new matrix with s subtracted from every element.
func (m *Dense[T]) SubScalar(s T) (*Dense[T], error) {
	return m.mapScalar(opSubScalar, func(v T) T { return v - s })
}

// Scale returns a new matrix whose elements are s * m[i,j].
// s = 0 yields an explicit zero matrix with the same shape.
func (m *Dense[T]) Scale(s T) (*Dense[T], error) {
	return m.mapScalar(opScale, func(v T) T { return v * s })
}

// DivScalar returns a new matrix whose elements are m[i,j] / s.
// Implementation:
//   - Stage 1: reject s equal to the additive identity with ErrDivisionByZero.
//   - Stage 2: delegate to the shared scalar kernel.
//
// Behavior highlights:
//   - The zero check applies to every element type, so float matrices never
//     silently fill with ±Inf/NaN and integer matrices never panic.
//   - Integer element types use Go's truncated division.
//
// Errors:
//   - ErrNilMatrix, ErrDivisionByZero, ErrNaNInf (policy; e.g. s is NaN).
func (m *Dense[T]) DivScalar(s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	var zero T
	if s == zero {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	return m.mapScalar(opDivScalar, func(v T) T { return v / s })
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Comparison happens in float64 for every element type.
//
// Policy:
//   - m and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//   - A NaN element never satisfies the relation.
//
// Time: O(r*c). Space: O(1). Deterministic.
func (m *Dense[T]) AllClose(b *Dense[T], rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var av, bv float64
	for idx := range m.data {
		av, bv = float64(m.data[idx]), float64(b.data[idx])
		if av == bv {
			continue // covers equal infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil // early-exit on first violation (NaN included)
		}
	}

	return true, nil
}

// ApproxEqual reports whether b matches m within m's absolute tolerance
// (WithEpsilon, default DefaultEpsilon). Shape mismatch or nil yields false.
func (m *Dense[T]) ApproxEqual(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	ok, err := m.AllClose(b, 0, m.eps)

	return err == nil && ok
}
