// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNoPoints indicates an empty point set; the plot domain is undefined.
	ErrNoPoints = errors.New("export: no points to plot")

	// ErrNoCoefficients indicates an empty coefficient vector.
	ErrNoCoefficients = errors.New("export: no coefficients to plot")
)
