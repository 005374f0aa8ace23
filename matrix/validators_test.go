// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-interp/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSystem covers the NotNil → Square → VecLen sequence.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	var nilDense *matrix.Dense
	tests := []struct {
		name    string
		a       matrix.Matrix
		b       []float64
		wantErr error
	}{
		{"nil interface", nil, []float64{1}, matrix.ErrNilMatrix},
		{"typed nil", nilDense, []float64{1}, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"nil rhs", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"short rhs", MustDense(t, 2, 2), []float64{1}, matrix.ErrDimensionMismatch},
		{"ok", MustDense(t, 2, 2), []float64{1, 2}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSystem(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFinite reports the first non-finite entry.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.NoError(t, matrix.ValidateFinite(nil))

	err := matrix.ValidateFinite([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "[1]")
}
