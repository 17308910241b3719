// Package roulette implements fitness-proportional ("roulette wheel")
// selection over weighted candidates.
//
// What:
//
//   - Candidate pairs a non-negative weight with an item.
//   - Selector.Spin draws one item with probability weight/Σweights.
//   - Normalize rescales weights into a probability distribution.
//
// Algorithm (fixed, so that seeded runs are reproducible across versions):
//
//  1. Stable sort the candidates ascending by weight.
//  2. Replace weights with their prefix sums in that order.
//  3. Draw u uniformly from [0, total).
//  4. Return the first item whose interval [prev, cum) contains u.
//
// An empty candidate list, or one whose weights sum to zero, yields no
// selection. That is a normal signal ("dead end"), not an error.
//
// Determinism:
//
//   - Randomness comes only from the *rand.Rand held by the Selector.
//     Inject one with WithRand or WithSeed to make draws reproducible.
//   - A Selector (like *rand.Rand) is not safe for concurrent use.
//
// Complexity: Spin is O(k log k) for k candidates, no allocations once the
// internal scratch buffer has grown to k.
package roulette
