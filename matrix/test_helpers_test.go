// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for kernels.
//   • Keep random data finite and seeded so every run is reproducible.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/grlib/grlib/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows BUILDS a *Dense[T] from literal rows or fails the test.
// Implementation:
//   - Stage 1: matrix.NewFromRows(rows, opts...).
//   - Stage 2: require.NoError to abort early.
//
// Determinism:
//   - Deterministic fill order.
func MustFromRows[T matrix.Element](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// MustNew ALLOCATES an r×c matrix filled with init or fails the test.
func MustNew[T matrix.Element](tb testing.TB, r, c int, init T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(r, c, init, opts...)
	require.NoError(tb, err)

	return m
}

// RandFilled RETURNS a new r×c float64 matrix filled with deterministic U(-1,1).
// Values stay finite to avoid NaN/Inf policy interference.
func RandFilled(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m := MustNew(tb, r, c, 0.0)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1 // row-major draw order
	}))

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt[T matrix.Element](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustDims ASSERTS the shape of m.
func MustDims[T matrix.Element](tb testing.TB, m *matrix.Dense[T], r, c int) {
	tb.Helper()
	require.NotNil(tb, m)
	gr, gc := m.Shape()
	require.Equal(tb, r, gr, "rows")
	require.Equal(tb, c, gc, "cols")
}

// CompareExact ASSERTS m equals the literal want element by element.
// Shape is checked first so failures point at the real cause.
func CompareExact[T matrix.Element](tb testing.TB, want [][]T, m *matrix.Dense[T]) {
	tb.Helper()
	c := 0
	if len(want) > 0 {
		c = len(want[0])
	}
	MustDims(tb, m, len(want), c)
	for i := range want {
		for j := range want[i] {
			require.Equalf(tb, want[i][j], MustAt(tb, m, i, j), "element (%d,%d)", i, j)
		}
	}
}

// CompareClose ASSERTS a ≈ b under |a-b| ≤ atol + rtol*|b|.
func CompareClose(tb testing.TB, a, b *matrix.Dense[float64], rtol, atol float64) {
	tb.Helper()
	ok, err := a.AllClose(b, rtol, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\n%s\nvs\n%s", a, b)
}
