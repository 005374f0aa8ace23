// SPDX-License-Identifier: MIT

package points

import "errors"

var (
	// ErrParse indicates text that is not a finite decimal number.
	ErrParse = errors.New("points: invalid number")

	// ErrEmptySet indicates an operation that needs at least one point.
	ErrEmptySet = errors.New("points: empty point set")

	// ErrOutOfRange indicates a point index outside [0, Len()).
	ErrOutOfRange = errors.New("points: index out of range")

	// ErrNotFound indicates that Remove was asked for a point not in the set.
	ErrNotFound = errors.New("points: point not found")
)
