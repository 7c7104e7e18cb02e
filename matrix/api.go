// SPDX-License-Identifier: MIT
// Package matrix - canonical factories.
//
// Purpose:
//   - Build the neutral matrices geometry code starts from: zero, identity, diagonal.
//   - Each factory returns a fully formed, independently owned *Dense[T].
//
// Policy:
//   - Factories accept the same ...Option as New; *Like variants inherit the
//     policy of their template matrix instead.

package matrix

// Zero returns a rows×cols matrix of additive identities.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func Zero[T Element](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opZero, err)
	}

	return newDense[T](rows, cols, gatherOptions(opts...)), nil
}

// ZeroSquare returns an n×n zero matrix.
func ZeroSquare[T Element](n int, opts ...Option) (*Dense[T], error) {
	return Zero[T](n, n, opts...)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Element](n int, opts ...Option) (*Dense[T], error) {
	m, err := Zero[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := T(1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Diagonal returns the len(values)×len(values) matrix with values on the main
// diagonal and the additive identity elsewhere. values is copied; nil or empty
// input yields a 0×0 matrix.
//
// Errors: ErrNaNInf for a non-finite value under the NaN/Inf policy.
// Complexity: O(n^2).
func Diagonal[T Element](values []T, opts ...Option) (*Dense[T], error) {
	n := len(values)
	o := gatherOptions(opts...)
	m := newDense[T](n, n, o)
	for i, v := range values {
		if o.validateNaNInf && isNonFiniteElem(v) {
			return nil, matrixErrorf(opDiagonal, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Handy to preallocate accumulators.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return m.alloc(m.r, m.c), nil
}

// IdentityLike returns I with dimension Rows(m) and m's policy; m must be square.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	res := m.alloc(m.r, m.c)
	one := T(1)
	for i := 0; i < m.r; i++ {
		res.data[i*m.c+i] = one
	}

	return res, nil
}
