package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/matrix"
)

// DefaultInitialPheromone is the uniform pheromone level of a fresh map.
const DefaultInitialPheromone float32 = 1.0

// Map is the environment of the walk: grid geometry, a read-only cost
// table and a mutable pheromone table.
type Map struct {
	grid            gridgraph.Grid
	cost            *WeightTable // static after NewMap
	pheromone       *WeightTable // finite-only, mutated via SetPheromone/Evaporate
	evaporationRate float32
}

// NewMap builds a width×height map.
// Stage 1 (Validate): width, height > 0; evaporationRate ≤ 1 and not NaN.
// Stage 2 (Cost): diagonal 0, adjacent pairs StepCost, everything else +Inf.
// Stage 3 (Pheromone): uniform initial level on every off-diagonal entry.
// Complexity: O(N^2) time and memory, N = width×height.
func NewMap(width, height int, evaporationRate float32, opts ...MapOption) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewMap(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	if math.IsNaN(float64(evaporationRate)) || evaporationRate > 1.0 {
		return nil, fmt.Errorf("NewMap: rate %v: %w", evaporationRate, ErrInvalidEvaporationRate)
	}
	cfg := newMapConfig(opts)

	grid, err := gridgraph.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("NewMap: %w", err)
	}

	cost, err := NewWeightTable(grid, float32(math.Inf(1)))
	if err != nil {
		return nil, fmt.Errorf("NewMap: cost table: %w", err)
	}
	for idx := 0; idx < grid.Len(); idx++ {
		v := grid.Vertex(idx)
		for _, n := range grid.Neighbors(v) {
			if err = cost.Set(v, n, gridgraph.StepCost(v, n)); err != nil {
				return nil, fmt.Errorf("NewMap: cost table: %w", err)
			}
		}
	}

	pheromone, err := NewWeightTable(grid, cfg.initialPheromone, matrix.WithFiniteOnly())
	if err != nil {
		return nil, fmt.Errorf("NewMap: pheromone table: %w", err)
	}

	return &Map{
		grid:            grid,
		cost:            cost,
		pheromone:       pheromone,
		evaporationRate: evaporationRate,
	}, nil
}

// Grid returns the map's grid.
func (m *Map) Grid() gridgraph.Grid { return m.grid }

// EvaporationRate returns the rate handed to evaporation policies.
func (m *Map) EvaporationRate() float32 { return m.evaporationRate }

// Cost returns the traversal cost of v0 → v1: 1 or √2 for neighbors,
// +Inf for non-adjacent pairs.
func (m *Map) Cost(v0, v1 gridgraph.Vertex) (float32, error) {
	return m.cost.At(v0, v1)
}

// Pheromone returns the pheromone level on v0 → v1.
func (m *Map) Pheromone(v0, v1 gridgraph.Vertex) (float32, error) {
	return m.pheromone.At(v0, v1)
}

// SetPheromone overwrites the pheromone level on v0 → v1.
// value must be finite (matrix.ErrNaNInf otherwise); negative levels are
// stored as given and weigh as zero in the roulette draw.
func (m *Map) SetPheromone(v0, v1 gridgraph.Vertex, value float32) error {
	return m.pheromone.Set(v0, v1, value)
}
