// SPDX-License-Identifier: MIT
// Package matrix: construction options for Dense.
//
// Contract:
//   - Options are functional (type DenseOption func(*denseConfig)).
//   - Defaults: every float32 value is accepted, including ±Inf (used as
//     "no edge" in cost tables).

package matrix

// DenseOption customizes a Dense at construction time.
type DenseOption func(*denseConfig)

type denseConfig struct {
	finiteOnly bool // reject NaN/±Inf in Set and Apply
}

// WithFiniteOnly makes Set and Apply reject NaN and ±Inf with ErrNaNInf.
// Complexity: O(1).
func WithFiniteOnly() DenseOption {
	return func(c *denseConfig) {
		c.finiteOnly = true
	}
}

func gatherDenseOptions(opts []DenseOption) denseConfig {
	var cfg denseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
