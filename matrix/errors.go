// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels wrapped with call-site context via %w;
// tests and callers match them with errors.Is. Public methods never panic
// on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value was written into a finite-only matrix.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
