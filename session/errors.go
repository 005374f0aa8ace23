// SPDX-License-Identifier: MIT

package session

import (
	"errors"

	"github.com/katalvlaran/lvlath-interp/interp"
	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

var (
	// ErrNoSelection indicates an operation that needs a selected point.
	ErrNoSelection = errors.New("session: no point selected")

	// ErrNotCalculated indicates evaluate/differentiate without a current fit.
	ErrNotCalculated = errors.New("session: polynomial not calculated")

	// ErrExport indicates that the fit succeeded but publishing the plot failed.
	ErrExport = errors.New("session: export failed")
)

// Re-exported so callers can match the whole taxonomy through one package.
var (
	ErrParse              = points.ErrParse
	ErrInsufficientPoints = interp.ErrInsufficientPoints
	ErrSingularSystem     = interp.ErrSingularSystem
	ErrInvalidArgument    = poly.ErrInvalidArgument
)
