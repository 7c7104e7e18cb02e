// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/grlib/grlib/matrix"
	"github.com/stretchr/testify/require"
)

func TestGatherOptions_Defaults(t *testing.T) {
	t.Parallel()

	got := matrix.GatherOptionsSnapshot()
	require.Equal(t, matrix.DefaultEpsilon, got.Eps)
	require.Equal(t, matrix.DefaultValidateNaNInf, got.ValidateNaNInf)
}

func TestGatherOptions_LastWriterWinsAndNilSkipped(t *testing.T) {
	t.Parallel()

	got := matrix.GatherOptionsSnapshot(
		matrix.WithValidateNaNInf(),
		nil,
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(0),
	)
	require.Equal(t, 0.0, got.Eps)
	require.False(t, got.ValidateNaNInf)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}

// TestPolicyFollowsLeftOperand checks results inherit the receiver's policy.
func TestPolicyFollowsLeftOperand(t *testing.T) {
	t.Parallel()

	strict := MustFromRows(t, [][]float64{{1}}, matrix.WithValidateNaNInf())
	loose := MustFromRows(t, [][]float64{{1}})

	sum, err := strict.Add(loose)
	require.NoError(t, err)
	require.ErrorIs(t, sum.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	sum, err = loose.Add(strict)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 0, math.NaN()))

	require.ErrorIs(t, strict.Transpose().Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestAssignCopiesPolicy checks assignment carries the source policy.
func TestAssignCopiesPolicy(t *testing.T) {
	t.Parallel()

	dst := MustNew(t, 1, 1, 0.0)
	require.NoError(t, dst.Assign(MustNew(t, 1, 1, 0.0, matrix.WithValidateNaNInf())))
	require.ErrorIs(t, dst.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}
