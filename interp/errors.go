// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrInsufficientPoints indicates fewer than MinPoints points.
	ErrInsufficientPoints = errors.New("interp: at least two points are required")

	// ErrSingularSystem indicates a zero pivot during elimination, typically two
	// points sharing the same x. It is always returned together with
	// matrix.ErrSingular in the chain.
	ErrSingularSystem = errors.New("interp: singular system (duplicate x values?)")
)
