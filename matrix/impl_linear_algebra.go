// SPDX-License-Identifier: MIT
// Package matrix provides the matrix-matrix and matrix-vector kernels of Dense:
// element-wise addition and subtraction, matrix multiplication, transpose,
// the matrix-vector product and diagonal extraction. All kernels perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep every shape check ahead of the first write (no partial results).
//   - Keep loop orders fixed so floating-point accumulation is reproducible.
//
// Notes:
//   - Non-mutating kernels always return a freshly allocated Dense.
//   - In-place forms compute into a temporary and swap it in on success.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew          = "New"
	opFromRows     = "NewFromRows"
	opAssign       = "Assign"
	opAdd          = "Add"
	opSub          = "Sub"
	opAddInPlace   = "AddInPlace"
	opSubInPlace   = "SubInPlace"
	opMul          = "Mul"
	opMulInPlace   = "MulInPlace"
	opTranspose    = "Transpose"
	opMulVec       = "MulVec"
	opAddScalar    = "AddScalar"
	opSubScalar    = "SubScalar"
	opScale        = "Scale"
	opDivScalar    = "DivScalar"
	opAllClose     = "AllClose"
	opZero         = "Zero"
	opIdentity     = "Identity"
	opDiagonal     = "Diagonal"
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b, or out = a - b when sub is true.
// Inputs must have identical shapes; the result takes that common shape and
// the left operand's numeric policy. Operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result like a.
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//   - Stage 3: enforce the NaN/Inf policy on the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf; all wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - A sign multiplier (as in float kernels) would not work for unsigned T,
//     so the branch is hoisted out of the loop instead.
func addSub[T Element](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := a.alloc(a.r, a.c)
	if sub {
		for idx := range res.data { // deterministic 0..n-1
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}
	if err := res.enforcePolicy(opTag); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = m + b and returns a fresh Dense.
// Both operands must have identical shapes; C has that shape.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch),
//     ErrNaNInf (non-finite result under the NaN/Inf policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) { return addSub(m, b, false, opAdd) }

// Sub computes the element-wise difference C = m - b and returns a fresh Dense.
// Same contract as Add.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) { return addSub(m, b, true, opSub) }

// AddInPlace performs m += b.
// On any error m is left exactly as it was.
// Complexity: Time O(r*c), Space O(r*c) for the staged result.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	res, err := addSub(m, b, false, opAddInPlace)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// SubInPlace performs m -= b.
// On any error m is left exactly as it was.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	res, err := addSub(m, b, true, opSubInPlace)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// Mul performs standard matrix multiplication C = m × b.
// Implementation:
//   - Stage 1: Validate operands (not nil) and inner dimensions (m.Cols == b.Rows).
//   - Stage 2: Allocate C with shape (m.Rows × b.Cols).
//   - Stage 3: For each (i,j) accumulate Σ_k m[i,k]·b[k,j] over k = 0..m.Cols-1,
//     starting from the additive identity.
//
// Behavior highlights:
//   - Deterministic i→j→k loop order: every C[i,j] is summed in increasing k.
//   - No zero-skipping, so 0·NaN and 0·Inf propagate as IEEE-754 prescribes.
//   - An empty contraction (m.Cols == 0) yields an all-zero result.
//
// Inputs:
//   - m: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch),
//     ErrNaNInf (non-finite result under the NaN/Inf policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, b.c
	res := m.alloc(rows, cols)

	var (
		i, j, k      int
		baseA, baseR int
		acc, zero    T
	)
	for i = 0; i < rows; i++ {
		baseA = i * inner
		baseR = i * cols
		for j = 0; j < cols; j++ {
			acc = zero
			for k = 0; k < inner; k++ {
				acc += m.data[baseA+k] * b.data[k*cols+j]
			}
			res.data[baseR+j] = acc
		}
	}
	if err := res.enforcePolicy(opMul); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInPlace performs m = m × b.
// The full product is computed into a temporary first, then m takes its shape
// (m.Rows × b.Cols) and buffer. m.MulInPlace(m) is legal for square m.
// On any error m is left exactly as it was.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) MulInPlace(b *Dense[T]) error {
	res, err := m.Mul(b)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	m.adopt(res)

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The result has shape (Cols × Rows) and (i,j) = m(j,i).
//
// Implementation:
//   - Stage 1: Allocate Dense(cols, rows) with m's policy.
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i], fixed i→j order.
//
// A nil receiver yields nil, as with Clone.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func (m *Dense[T]) Transpose() *Dense[T] {
	if m == nil {
		return nil
	}
	rows, cols := m.r, m.c
	res := m.alloc(cols, rows) // dims flipped

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// MulVec computes y = m·x for a column vector x.
// Implementation:
//   - Stage 1: Validate m is not nil and len(x) == m.Cols().
//   - Stage 2: For every row i accumulate y[i] = Σ_j m[i,j]·x[j] in increasing j.
//
// Returns:
//   - []T of length m.Rows(); a fresh slice never aliasing x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()),
//     ErrNaNInf (non-finite entry under the NaN/Inf policy).
//
// Complexity: Time O(r*c), Space O(r) for y.
func (m *Dense[T]) MulVec(x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]T, m.r) // exactly rows outputs
	var i, j, base int
	var acc, zero T
	for i = 0; i < m.r; i++ {
		acc = zero
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		if m.validateNaNInf && isNonFiniteElem(acc) {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("y[%d]: %w", i, ErrNaNInf))
		}
		y[i] = acc
	}

	return y, nil
}

// DiagVec returns the main diagonal (i,i) for i < min(Rows, Cols).
// Non-square matrices are supported: a 2×3 matrix yields 2 entries, a 3×2 one
// also yields 2. An empty matrix yields an empty, non-nil slice; a nil
// receiver yields nil.
//
// Complexity: O(min(r,c)).
func (m *Dense[T]) DiagVec() []T {
	if m == nil {
		return nil
	}
	n := min(m.r, m.c)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}
