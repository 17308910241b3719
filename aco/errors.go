// SPDX-License-Identifier: MIT
// Package aco: sentinel error set.
// Callers branch with errors.Is; implementations add context with %w.

package aco

import "errors"

var (
	// ErrInvalidDimensions indicates a map width or height that is not positive.
	ErrInvalidDimensions = errors.New("aco: map width and height must be > 0")

	// ErrInvalidEvaporationRate indicates an evaporation rate above 1.0 or NaN.
	ErrInvalidEvaporationRate = errors.New("aco: evaporation rate must be <= 1.0")

	// ErrSelfEdge indicates a query or write on the v → v diagonal entry.
	ErrSelfEdge = errors.New("aco: self-edge has no weight")

	// ErrNilPolicy indicates Evaporate was called without a policy.
	ErrNilPolicy = errors.New("aco: nil evaporation policy")
)
