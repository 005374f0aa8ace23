// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an operation that has no meaning for its input,
	// e.g. differentiating an empty coefficient vector.
	ErrInvalidArgument = errors.New("poly: invalid argument")

	// ErrNothingToDifferentiate is the specific ErrInvalidArgument returned by
	// Differentiate for an empty vector.
	ErrNothingToDifferentiate = fmt.Errorf("%w: nothing to differentiate", ErrInvalidArgument)
)
