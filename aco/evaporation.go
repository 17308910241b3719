package aco

import (
	"fmt"

	"github.com/katalvlaran/antwalk/gridgraph"
)

// EvaporationPolicy decays (or otherwise rewrites) a pheromone table.
// rate is the map's evaporation rate. Implementations may touch every edge
// or only a subset; the package takes no position.
type EvaporationPolicy interface {
	Evaporate(table *WeightTable, rate float32) error
}

// EvaporationFunc adapts a plain function to EvaporationPolicy.
type EvaporationFunc func(table *WeightTable, rate float32) error

// Evaporate calls f(table, rate).
func (f EvaporationFunc) Evaporate(table *WeightTable, rate float32) error {
	return f(table, rate)
}

// Evaporate hands the pheromone table to policy together with the map's
// rate. It is the only bulk mutation path of the pheromone table.
// Not synchronized with walkers reading the map.
func (m *Map) Evaporate(policy EvaporationPolicy) error {
	if policy == nil {
		return fmt.Errorf("Evaporate: %w", ErrNilPolicy)
	}
	if err := policy.Evaporate(m.pheromone, m.evaporationRate); err != nil {
		return fmt.Errorf("Evaporate: %w", err)
	}

	return nil
}

// Deposit adds amount to the pheromone level on v0 → v1.
func (m *Map) Deposit(v0, v1 gridgraph.Vertex, amount float32) error {
	cur, err := m.pheromone.At(v0, v1)
	if err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}

	return m.pheromone.Set(v0, v1, cur+amount)
}
