package aco

import "github.com/katalvlaran/antwalk/gridgraph"

// Size is a window size in pixels.
type Size struct {
	W, H int
}

// Spacing returns the pixel distance between adjacent columns (xs) and rows
// (ys) when grid is spread evenly over window: xs = W/width, ys = H/height.
// Both are positive for any window with positive sides.
func Spacing(grid gridgraph.Grid, window Size) (xs, ys float32) {
	return float32(window.W) / float32(grid.Width), float32(window.H) / float32(grid.Height)
}

// ScreenPosition maps v to the center of its cell when grid is spread evenly
// over window: x = xs/2 + X·xs, y = ys/2 + Y·ys with xs, ys from Spacing.
// Every position lies inside the window. The function is pure, and injective
// over the vertices of one grid for any window with positive sides.
func ScreenPosition(grid gridgraph.Grid, window Size, v gridgraph.Vertex) (x, y float32) {
	xs, ys := Spacing(grid, window)

	return xs/2 + float32(v.X)*xs, ys/2 + float32(v.Y)*ys
}

// ScreenPosition is the map-bound form of the package-level ScreenPosition.
func (m *Map) ScreenPosition(window Size, v gridgraph.Vertex) (x, y float32) {
	return ScreenPosition(m.grid, window, v)
}
