// SPDX-License-Identifier: MIT
// Package: antwalk/walk
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (nil logger, nil selector, non-positive capacity); Step never panics.
//   • Determinism is explicit: pass WithSeed or WithSelector to reproduce a walk.

package walk

import (
	"log/slog"

	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/logging"
	"github.com/katalvlaran/antwalk/metrics"
	"github.com/katalvlaran/antwalk/roulette"
)

// Option customizes a Walker.
type Option func(*config)

type config struct {
	sel      *roulette.Selector[gridgraph.Vertex]
	capacity int
	policy   ExhaustionPolicy
	logger   *slog.Logger
	metrics  *metrics.Walk
}

// WithSelector injects the roulette selector (and therefore the RNG stream).
func WithSelector(sel *roulette.Selector[gridgraph.Vertex]) Option {
	if sel == nil {
		panic("walk: WithSelector(nil)")
	}
	return func(c *config) {
		c.sel = sel
	}
}

// WithSeed seeds a fresh selector; equal seeds on equal maps replay equal walks.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.sel = roulette.NewSelector[gridgraph.Vertex](roulette.WithSeed(seed))
	}
}

// WithExclusionCapacity bounds the abandoned-vertex set (default 150).
func WithExclusionCapacity(n int) Option {
	if n <= 0 {
		panic("walk: WithExclusionCapacity requires n > 0")
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithExhaustionPolicy selects the behavior after path exhaustion (default Halt).
func WithExhaustionPolicy(p ExhaustionPolicy) Option {
	if _, ok := policyNames[p]; !ok {
		panic("walk: WithExhaustionPolicy: unknown policy")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger routes walker diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("walk: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records steps, backtracks and exhaustions into m.
func WithMetrics(m *metrics.Walk) Option {
	return func(c *config) {
		c.metrics = m
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		capacity: DefaultExclusionCapacity,
		policy:   Halt,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sel == nil {
		cfg.sel = roulette.NewSelector[gridgraph.Vertex]()
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}

	return cfg
}
