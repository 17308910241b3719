package aco

import (
	"fmt"

	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/matrix"
)

// WeightTable stores one float32 weight per directed edge of a grid.
// Row = linear index of the source vertex, column = linear index of the
// destination. The table is always exactly N×N; the diagonal is zero and
// is never exposed.
type WeightTable struct {
	grid gridgraph.Grid
	mat  *matrix.Dense
}

// NewWeightTable allocates an N×N table for grid with every off-diagonal
// entry set to fill.
// Complexity: O(N^2) time and memory.
func NewWeightTable(grid gridgraph.Grid, fill float32, opts ...matrix.DenseOption) (*WeightTable, error) {
	mat, err := matrix.NewSquare(grid.Len(), fill, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewWeightTable(%dx%d): %w", grid.Width, grid.Height, err)
	}

	return &WeightTable{grid: grid, mat: mat}, nil
}

// Grid returns the grid the table is indexed by.
func (t *WeightTable) Grid() gridgraph.Grid { return t.grid }

// edge validates both endpoints and returns their linear indices.
func (t *WeightTable) edge(v0, v1 gridgraph.Vertex) (row, col int, err error) {
	if err = t.grid.CheckVertex(v0); err != nil {
		return 0, 0, err
	}
	if err = t.grid.CheckVertex(v1); err != nil {
		return 0, 0, err
	}
	if v0 == v1 {
		return 0, 0, fmt.Errorf("edge %s->%s: %w", v0, v1, ErrSelfEdge)
	}

	return t.grid.Index(v0), t.grid.Index(v1), nil
}

// At returns the weight of the directed edge v0 → v1.
// Complexity: O(1).
func (t *WeightTable) At(v0, v1 gridgraph.Vertex) (float32, error) {
	row, col, err := t.edge(v0, v1)
	if err != nil {
		return 0, fmt.Errorf("WeightTable.At: %w", err)
	}

	return t.mat.At(row, col)
}

// Set overwrites the weight of the directed edge v0 → v1.
// Not synchronized: single mutator only.
// Complexity: O(1).
func (t *WeightTable) Set(v0, v1 gridgraph.Vertex, value float32) error {
	row, col, err := t.edge(v0, v1)
	if err != nil {
		return fmt.Errorf("WeightTable.Set: %w", err)
	}

	return t.mat.Set(row, col, value)
}

// Apply rewrites every off-diagonal entry with fn(from, to, weight).
// The diagonal is left untouched.
// Complexity: O(N^2).
func (t *WeightTable) Apply(fn func(from, to gridgraph.Vertex, w float32) float32) error {
	return t.mat.Apply(func(i, j int, v float32) float32 {
		if i == j {
			return v
		}
		return fn(t.grid.Vertex(i), t.grid.Vertex(j), v)
	})
}
