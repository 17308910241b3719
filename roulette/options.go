// SPDX-License-Identifier: MIT
// Package: antwalk/roulette
//
// options.go: functional options for Selector.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Spin never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Without either option the Selector seeds itself from the wall clock.

package roulette

import (
	"math/rand"
	"time"
)

// Option customizes a Selector before first use.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. The Selector takes ownership of its stream.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("roulette: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
