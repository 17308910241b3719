package gridgraph

import (
	"fmt"
	"math"
)

// Sqrt2 is the traversal cost of a diagonal move.
const Sqrt2 float32 = math.Sqrt2

// conn8 lists the Chebyshev radius-1 offsets in row-major order over the
// 3×3 window, skipping (0,0).
var conn8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Vertex is a cell of the grid. Vertices are plain values; equality is identity.
type Vertex struct {
	X, Y int
}

// String renders the vertex as "(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Grid is an immutable W×H lattice of vertices. The zero value is unusable;
// build one with NewGrid.
type Grid struct {
	Width, Height int
}

// NewGrid validates the dimensions and returns the grid.
// MAIN DESCRIPTION:
//   - Public constructor; the only way to obtain a usable Grid.
//
// Inputs:
//   - width, height: positive column and row counts.
//
// Returns:
//   - Grid: value type, safe to copy and compare.
//
// Errors:
//   - ErrEmptyGrid (wrapped with the requested size) if either side is <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("NewGrid(%d,%d): %w", width, height, ErrEmptyGrid)
	}

	return Grid{Width: width, Height: height}, nil
}

// Len returns the number of vertices, W×H.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// InBounds reports whether v lies within [0,W)×[0,H).
// Complexity: O(1).
func (g Grid) InBounds(v Vertex) bool {
	return v.X >= 0 && v.X < g.Width && v.Y >= 0 && v.Y < g.Height
}

// CheckVertex validates a vertex that comes from outside the core.
//
// Returns:
//   - nil when v is in bounds.
//
// Errors:
//   - ErrVertexOutOfRange wrapped with the vertex and the grid size.
//
// AI-Hints:
//   - Index and Vertex trust their input; call CheckVertex first on user data.
func (g Grid) CheckVertex(v Vertex) error {
	if !g.InBounds(v) {
		return fmt.Errorf("vertex %s on %dx%d grid: %w", v, g.Width, g.Height, ErrVertexOutOfRange)
	}

	return nil
}

// Index maps v to its row-major linear index.
//
// Implementation:
//   - x + y*Width; the inverse is Vertex.
//
// Inputs:
//   - v: an in-bounds vertex (the caller guarantees it; see CheckVertex).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g Grid) Index(v Vertex) int {
	return v.X + v.Y*g.Width
}

// Vertex converts a row-major index back to its vertex.
// Complexity: O(1).
func (g Grid) Vertex(idx int) Vertex {
	return Vertex{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors returns every in-bounds cell at Chebyshev distance 1 from v.
// MAIN DESCRIPTION:
//   - The 8-connected neighborhood, clipped to the grid.
//
// Implementation:
//   - Walk the conn8 offsets in row-major order over the 3×3 window and
//     keep in-bounds results.
//
// Behavior highlights:
//   - Interior cells have 8 neighbors, edge cells 5, corners 3.
//   - A 1×1 grid yields none; that is not an error.
//   - The order is deterministic and carries no meaning.
//
// Returns:
//   - []Vertex: fresh slice, owned by the caller.
//
// Complexity:
//   - Time O(1), one allocation.
func (g Grid) Neighbors(v Vertex) []Vertex {
	return g.NeighborsExcluding(v, nil)
}

// NeighborsExcluding is Neighbors with every candidate for which excluded
// returns true removed.
//
// Inputs:
//   - v: center vertex.
//   - excluded: membership test supplied by the caller; nil excludes nothing.
//
// Returns:
//   - []Vertex: surviving neighbors in Neighbors order.
//
// Complexity:
//   - Time O(8·k) where k is the cost of one predicate call.
func (g Grid) NeighborsExcluding(v Vertex, excluded func(Vertex) bool) []Vertex {
	out := make([]Vertex, 0, len(conn8))
	for _, d := range conn8 {
		n := Vertex{X: v.X + d[0], Y: v.Y + d[1]}
		if !g.InBounds(n) {
			continue // outside the map
		}
		if excluded != nil && excluded(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// IsAdjacent reports whether a and b are distinct and at Chebyshev distance 1.
func IsAdjacent(a, b Vertex) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	return (dx|dy) != 0 && dx <= 1 && dy <= 1
}

// StepCost is the cost of moving between two adjacent vertices.
//
// Returns:
//   - Sqrt2 when both coordinates differ (diagonal move), 1 otherwise.
//
// Notes:
//   - Pure and symmetric: StepCost(a,b) == StepCost(b,a).
//   - Adjacency is not checked; pair it with IsAdjacent.
func StepCost(a, b Vertex) float32 {
	if a.X != b.X && a.Y != b.Y {
		return Sqrt2
	}

	return 1.0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
