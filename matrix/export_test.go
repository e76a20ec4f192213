// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options and kernels
//
// Purpose:
//   - Expose the resolved Options and a few unexported helpers to matrix_test ONLY.
//   - Lives in a _test.go file, so nothing here reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).

var (
	// ExportedFormatValue exposes the cell formatter used by the grid renderers.
	ExportedFormatValue = formatValue
	// ExportedFormatShort exposes the rounded formatter used by String.
	ExportedFormatShort = formatShort
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly     = panicEpsilonInvalid
	PanicSingularTolInvalid_TestOnly = panicSingularTolInvalid
	PanicOrderInvalid_TestOnly       = panicOrderInvalid
	PanicDisplayInvalid_TestOnly     = panicDisplayInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Order          Order
	Eps            float64
	SingularTol    float64
	ValidateNaNInf bool
	SummaryRows    int
	SummaryCols    int
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// DenseOptionsSnapshot_TestOnly returns the options carried by m's storage.
func DenseOptionsSnapshot_TestOnly(m *Dense) OptionsSnapshot {
	return snapshotOf(m.st.opts)
}

// SharesStorage_TestOnly reports whether a and b address the same storage buffer.
func SharesStorage_TestOnly(a, b *Dense) bool { return a.st == b.st }

// VectorSharesBuffer_TestOnly reports whether v addresses m's storage buffer.
func VectorSharesBuffer_TestOnly(v *Vector, m *Dense) bool { return sameBuffer(v.data, m.st.data) }

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Order:          o.order,
		Eps:            o.eps,
		SingularTol:    o.singularTol,
		ValidateNaNInf: o.validateNaNInf,
		SummaryRows:    o.summaryRows,
		SummaryCols:    o.summaryCols,
	}
}
