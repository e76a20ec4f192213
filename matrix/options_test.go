// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padreati/rapaio-go/matrix"
)

// 1) TestDefaultOptions_Documented verifies that an empty option list resolves to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Order != matrix.DefaultOrder {
		t.Fatalf("order default mismatch: got %v, want %v", o.Order, matrix.DefaultOrder)
	}
	if o.Eps != matrix.DefaultEqualTol {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Eps, matrix.DefaultEqualTol)
	}
	if o.SingularTol != matrix.DefaultSingularTol {
		t.Fatalf("singularTol default mismatch: got %v, want %v", o.SingularTol, matrix.DefaultSingularTol)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
	if o.SummaryRows != matrix.DefaultSummaryRows || o.SummaryCols != matrix.DefaultSummaryCols {
		t.Fatalf("display default mismatch: got %dx%d", o.SummaryRows, o.SummaryCols)
	}
}

// 2) TestOptions_LastWriterWins ensures a later option overrides an earlier one of the same field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithOrder(matrix.ColMajor), matrix.WithOrder(matrix.RowMajor))
	if o.Order != matrix.RowMajor {
		t.Fatalf("last-writer-wins failed: order=%v, want RowMajor", o.Order)
	}

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	if o.ValidateNaNInf {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want false", o.ValidateNaNInf)
	}

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6))
	if o.Eps != 1e-6 {
		t.Fatalf("last-writer-wins failed: eps=%v, want 1e-6", o.Eps)
	}
}

// 3) TestOptions_Independent checks each setter touches only its own field.
func TestOptions_Independent(t *testing.T) {
	base := matrix.GatherOptionsSnapshot_TestOnly()

	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithSingularTol(1e-6))
	base.SingularTol = 1e-6
	require.Equal(t, base, o)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithSingularTol(1e-6), matrix.WithDisplay(5, 7))
	base.SummaryRows, base.SummaryCols = 5, 7
	require.Equal(t, base, o)

	// nil options are skipped
	o = matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithSingularTol(1e-6), nil, matrix.WithDisplay(5, 7))
	require.Equal(t, base, o)
}

// 4) TestOptions_FlowIntoStorage checks views and copies inherit the numeric policy.
func TestOptions_FlowIntoStorage(t *testing.T) {
	m := MustSequential(t, 4, 4, matrix.WithOrder(matrix.ColMajor), matrix.WithEpsilon(0.5))
	require.Equal(t, matrix.ColMajor, m.Order())

	v, err := m.RangeRows(1, 3)
	require.NoError(t, err)
	c := v.Copy()
	for _, x := range []*matrix.Dense{m, v, c} {
		o := matrix.DenseOptionsSnapshot_TestOnly(x)
		if o.Eps != 0.5 || o.Order != matrix.ColMajor {
			t.Fatalf("options lost: %+v", o)
		}
	}

	// a loose eps lets DeepEquals absorb the perturbation
	other := m.Copy().AddScalar(0.25)
	require.True(t, m.DeepEquals(other))
	require.False(t, m.DeepEqualsTol(other, 0.1))
}

// 5) TestOptions_ValidateNaNInf checks the strict policy guards Set but not arithmetic.
func TestOptions_ValidateNaNInf(t *testing.T) {
	strict := MustDense(t, 2, 2, matrix.WithValidateNaNInf())
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Inc(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	// IEEE division inside a kernel is allowed
	_, err := strict.Div(MustDense(t, 2, 2))
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, strict, 1, 1)))

	_, err = matrix.NewFromRows([][]float64{{1, math.Inf(-1)}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// 6) Setters must panic with a stable message on nonsensical inputs.
func TestPanics_Messages(t *testing.T) {
	for _, bad := range []float64{math.NaN(), -1, math.Inf(1), math.Inf(-1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(bad) })
		require.PanicsWithValue(t, matrix.PanicSingularTolInvalid_TestOnly, func() { _ = matrix.WithSingularTol(bad) })
	}
	require.PanicsWithValue(t, matrix.PanicOrderInvalid_TestOnly, func() { _ = matrix.WithOrder(matrix.Order(9)) })
	require.PanicsWithValue(t, matrix.PanicDisplayInvalid_TestOnly, func() { _ = matrix.WithDisplay(2, 10) })
	require.PanicsWithValue(t, matrix.PanicDisplayInvalid_TestOnly, func() { _ = matrix.WithDisplay(10, 0) })

	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { _ = matrix.WithSingularTol(0) })
	require.NotPanics(t, func() { _ = matrix.WithDisplay(3, 3) })
}
