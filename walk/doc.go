// Package walk drives a single ant across an aco.Map.
//
// A Walker owns the walk state: the current vertex, the path stack of
// previously visited vertices and a bounded FIFO set of abandoned vertices
// (exclusions). Each Step makes exactly one forward move:
//
//  1. Draw the next vertex among the neighbors of current that are neither
//     on the path nor excluded, weighted by aco.Map.Likelihood.
//  2. On success push current onto the path and move.
//  3. On a dead end exclude current, pop the path into current and retry.
//
// When backtracking empties the path the walk is exhausted; what happens
// next is an ExhaustionPolicy (Halt, ClearExclusions or Restart).
//
// Invariants:
//
//   - current is never on the path when a step starts;
//   - the vertex chosen by a step is neither on the path nor excluded;
//   - the exclusion set never holds more than its capacity (default 150).
//
// A Walker is single-threaded: Step runs to completion, including every
// backtrack, before returning. Concurrent calls must be serialized by the caller.
package walk
