package aco

import (
	"fmt"

	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/roulette"
)

// Likelihood is the unnormalized desirability of moving v0 → v1:
// pheromone(v0,v1) / cost(v0,v1). Cost is ≥ 1 for neighbors and +Inf for
// non-adjacent pairs, so the result is always finite.
// Complexity: O(1).
func (m *Map) Likelihood(v0, v1 gridgraph.Vertex) (float32, error) {
	pheromone, err := m.pheromone.At(v0, v1)
	if err != nil {
		return 0, fmt.Errorf("Likelihood: %w", err)
	}
	cost, err := m.cost.At(v0, v1)
	if err != nil {
		return 0, fmt.Errorf("Likelihood: %w", err)
	}

	return pheromone / cost, nil
}

// Candidates returns the roulette wheel for leaving current: one slot per
// neighbor not rejected by excluded (nil excludes nothing), weighted by
// Likelihood. An empty result is a dead end, not an error.
// Complexity: O(8·k), k = cost of one exclusion check.
func (m *Map) Candidates(current gridgraph.Vertex, excluded func(gridgraph.Vertex) bool) ([]roulette.Candidate[gridgraph.Vertex], error) {
	if err := m.grid.CheckVertex(current); err != nil {
		return nil, fmt.Errorf("Candidates: %w", err)
	}

	neighbors := m.grid.NeighborsExcluding(current, excluded)
	wheel := make([]roulette.Candidate[gridgraph.Vertex], 0, len(neighbors))
	for _, n := range neighbors {
		w, err := m.Likelihood(current, n)
		if err != nil {
			return nil, fmt.Errorf("Candidates: %w", err)
		}
		wheel = append(wheel, roulette.Candidate[gridgraph.Vertex]{Weight: w, Item: n})
	}

	return wheel, nil
}

// NextVertex draws the next vertex after current with probability
// proportional to Likelihood over the non-excluded neighbors.
// ok is false on a dead end (no neighbor left, or all weights zero).
func (m *Map) NextVertex(
	current gridgraph.Vertex,
	excluded func(gridgraph.Vertex) bool,
	sel *roulette.Selector[gridgraph.Vertex],
) (next gridgraph.Vertex, ok bool, err error) {
	wheel, err := m.Candidates(current, excluded)
	if err != nil {
		return gridgraph.Vertex{}, false, err
	}
	next, ok = sel.Spin(wheel)

	return next, ok, nil
}
