package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the requested grid has no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrVertexOutOfRange indicates a vertex lies outside the grid bounds.
	ErrVertexOutOfRange = errors.New("gridgraph: vertex out of range")
)
