// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//   - Value semantics: Clone and Assign deep-copy; no two Dense share a buffer.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - New: O(r*c) fill; At/Set: O(1); Clone/Assign: O(r*c); Row: O(c); Col: O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"
	ctxCol   = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a dense rectangular matrix of T stored row-major.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - eps and validateNaNInf are the per-instance numeric policy (options.go).
//
// The zero value is a valid 0×0 matrix with validation off and eps 0.
type Dense[T Element] struct {
	r, c           int     // row and column counts (>=0)
	data           []T     // contiguous row-major storage (len == r*c)
	eps            float64 // absolute tolerance for ApproxEqual
	validateNaNInf bool    // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// New creates a rows×cols matrix with every element set to initial.
// MAIN DESCRIPTION:
//   - Public constructor; zero rows or zero cols produce a valid empty matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0 and that rows*cols is addressable.
//   - Stage 2: resolve options; reject a non-finite initial under the NaN/Inf policy.
//   - Stage 3: allocate and fill the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative or overflowing shape).
//   - ErrNaNInf (initial is NaN/±Inf and WithValidateNaNInf is set).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int, initial T, opts ...Option) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && isNonFiniteElem(initial) {
		return nil, matrixErrorf(opNew, ErrNaNInf)
	}

	m := newDense[T](rows, cols, o)
	for idx := range m.data {
		m.data[idx] = initial
	}

	return m, nil
}

// NewFromRows builds a matrix from literal rows, copying every value.
// All rows must have the same length; an empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape when rows are ragged.
//   - ErrNaNInf for a non-finite value under the NaN/Inf policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows[T Element](rows [][]T, opts ...Option) (*Dense[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
	}

	o := gatherOptions(opts...)
	m := newDense[T](r, c, o)
	for i, row := range rows {
		base := i * c
		for j, v := range row {
			if o.validateNaNInf && isNonFiniteElem(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// validateDims rejects negative shapes and shapes whose element count overflows int.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// newDense allocates a zero-filled rows×cols matrix with the resolved policy.
// Callers must have validated the shape.
func newDense[T Element](rows, cols int, o Options) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}
}

// alloc returns a zero-filled rows×cols matrix carrying m's numeric policy.
// Used by every kernel to build its result.
func (m *Dense[T]) alloc(rows, cols int) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// adopt replaces m's shape and buffer with those of a freshly computed
// temporary. The temporary must not be used afterwards.
func (m *Dense[T]) adopt(tmp *Dense[T]) {
	m.r, m.c = tmp.r, tmp.c
	m.data = tmp.data
}

// enforcePolicy scans m for NaN/±Inf when the policy is enabled.
// The reported coordinates are those of the first offending element.
// Complexity: O(r*c) when enabled, O(1) otherwise.
func (m *Dense[T]) enforcePolicy(method string) error {
	if !m.validateNaNInf {
		return nil
	}
	for idx, v := range m.data {
		if isNonFiniteElem(v) {
			return denseErrorf(method, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// Rows returns the row count; a nil receiver has none.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count; a nil receiver has none.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrNilMatrix / ErrOutOfRange.
// Public methods wrap the sentinel with their own name and coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; the package offers no unchecked accessor.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//     The matrix is unchanged on error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFiniteElem(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxCol, 0, j, err)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// A nil receiver yields nil.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Assign replaces m's contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Whole-object assignment: the only way a Dense changes shape besides MulInPlace.
//
// Implementation:
//   - Stage 1: reject nil operands; return early on self-assignment (same pointer).
//   - Stage 2: resize m's storage to src's element count (reusing capacity).
//   - Stage 3: copy elements, then update rows/cols and the numeric policy.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c); allocates only when m's capacity is too small.
func (m *Dense[T]) Assign(src *Dense[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}

	n := len(src.data)
	if cap(m.data) >= n {
		m.data = m.data[:n]
	} else {
		m.data = make([]T, n)
	}
	copy(m.data, src.data)
	m.r, m.c = src.r, src.c
	m.eps, m.validateNaNInf = src.eps, src.validateNaNInf

	return nil
}

// Equal reports whether m and b have the same shape and identical elements.
// Two nil matrices are equal. NaN never equals NaN.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx, v := range m.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Format: one "[a, b, c]" line per row, values rendered with %v.
// A nil receiver renders as the empty string.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. A nil receiver has nothing to visit.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: when the NaN/Inf policy is on, stage new values in a scratch buffer.
//   - Stage 2: compute f for every cell; reject non-finite output under the policy.
//   - Stage 3: publish the staged buffer.
//
// Behavior highlights:
//   - All-or-nothing: on ErrNaNInf the matrix is unchanged.
//   - A nil receiver yields ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c); Space O(r*c) with the policy on, O(1) otherwise.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(ctxApply, 0, 0, err)
	}
	out := m.data
	if m.validateNaNInf {
		out = make([]T, len(m.data))
	}

	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFiniteElem(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			out[base+j] = nv
		}
	}
	m.data = out

	return nil
}
