// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the resolved options.
//
// Purpose:
//   - Expose a read-only snapshot of gatherOptions to matrix_test ONLY.
//   - Compiled only with `go test`; invisible in production builds.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts over the defaults and returns a snapshot.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}
