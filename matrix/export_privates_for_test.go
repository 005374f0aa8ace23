// SPDX-License-Identifier: MIT
// Package matrix: test-only exports of internal state.
// Compiled only under `go test`; lets the external matrix_test package
// assert resolved Options without widening the public surface.

package matrix

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	PivotTol       float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{PivotTol: o.pivotTol, ValidateNaNInf: o.validateNaNInf}
}

// ValidateNaNInf_TestOnly exposes the per-matrix numeric policy flag.
func (m *Dense) ValidateNaNInf_TestOnly() bool { return m.validateNaNInf }
