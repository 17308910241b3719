// SPDX-License-Identifier: MIT
// Package: antwalk/aco
//
// options.go: functional options for NewMap.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • NewMap itself never panics; it reports validation failures as errors.

package aco

import "math"

// MapOption customizes NewMap.
type MapOption func(*mapConfig)

type mapConfig struct {
	initialPheromone float32
}

// WithInitialPheromone sets the uniform starting pheromone level.
// Panics when v is negative, NaN or ±Inf.
func WithInitialPheromone(v float32) MapOption {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || v < 0 {
		panic("aco: WithInitialPheromone requires a finite, non-negative level")
	}
	return func(c *mapConfig) {
		c.initialPheromone = v
	}
}

func newMapConfig(opts []MapOption) mapConfig {
	cfg := mapConfig{initialPheromone: DefaultInitialPheromone}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
