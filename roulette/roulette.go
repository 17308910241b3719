package roulette

import (
	"math"
	"math/rand"
	"sort"
)

// Candidate is one slot of the wheel: an item and its unnormalized weight.
// Weights must be ≥ 0; negative and NaN weights are treated as 0.
type Candidate[T any] struct {
	Weight float32
	Item   T
}

// Selector spins the wheel over Candidate[T] values using its own RNG.
type Selector[T any] struct {
	rng     *rand.Rand
	scratch []Candidate[T] // reused between spins; never handed out
}

// NewSelector builds a Selector. Without WithRand/WithSeed it is seeded
// from the wall clock.
func NewSelector[T any](opts ...Option) *Selector[T] {
	cfg := newConfig(opts)

	return &Selector[T]{rng: cfg.rng}
}

// Spin selects one item with probability weight/Σweights.
// The input slice is not modified. Returns false when candidates is empty or
// the total weight is zero.
// Complexity: O(k log k).
func (s *Selector[T]) Spin(candidates []Candidate[T]) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}

	// Stage 1: sanitized copy, stable-sorted ascending by weight.
	wheel := s.scratch[:0]
	for _, c := range candidates {
		if !(c.Weight > 0) { // catches negatives and NaN
			c.Weight = 0
		}
		wheel = append(wheel, c)
	}
	s.scratch = wheel
	sort.SliceStable(wheel, func(i, j int) bool { return wheel[i].Weight < wheel[j].Weight })

	// Stage 2: prefix sums.
	var total float32
	for i := range wheel {
		total += wheel[i].Weight
		wheel[i].Weight = total
	}
	if !(total > 0) || math.IsInf(float64(total), 0) {
		return zero, false
	}

	// Stage 3: draw and interval search.
	u := s.rng.Float32() * total
	var prev float32
	for _, c := range wheel {
		if u >= prev && u < c.Weight {
			return c.Item, true
		}
		prev = c.Weight
	}

	// u rounded up to total; the heaviest slot owns the upper boundary.
	return wheel[len(wheel)-1].Item, true
}

// Uniform returns an index drawn uniformly from [0, n) using the Selector's
// stream. n must be positive.
func (s *Selector[T]) Uniform(n int) int {
	return s.rng.Intn(n)
}

// Normalize returns a copy of candidates with weights rescaled to sum to 1,
// in input order. Negative and NaN weights count as 0. Returns nil when the
// total weight is not positive.
// Complexity: O(k).
func Normalize[T any](candidates []Candidate[T]) []Candidate[T] {
	var total float32
	for _, c := range candidates {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if !(total > 0) {
		return nil
	}

	out := make([]Candidate[T], len(candidates))
	for i, c := range candidates {
		w := c.Weight
		if !(w > 0) {
			w = 0
		}
		out[i] = Candidate[T]{Weight: w / total, Item: c.Item}
	}

	return out
}
