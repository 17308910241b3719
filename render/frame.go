// Package render draws a walk: as styled terminal text for interactive
// shells and as SVG using the pixel layout of aco.ScreenPosition.
//
// Renderers own no walk state. They draw a Frame, a read-only snapshot
// taken from the walker once per frame.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/antwalk/gridgraph"
)

// Frame is what a renderer needs from one moment of a walk.
type Frame struct {
	Grid       gridgraph.Grid
	Current    gridgraph.Vertex
	Path       []gridgraph.Vertex // oldest first
	Exclusions []gridgraph.Vertex
	Visits     []uint32 // by linear index; may be nil
}

// Cell glyphs, before styling.
const (
	GlyphEmpty    = "·"
	GlyphVisited  = "∘"
	GlyphPath     = "•"
	GlyphExcluded = "×"
	GlyphCurrent  = "@"
)

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellVisited
	cellExcluded
	cellPath
	cellCurrent
)

// Terminal renders f as one line per grid row, cells separated by a space.
// Later layers win: visited < excluded < path < current.
func Terminal(f Frame) string {
	g := f.Grid
	kinds := make([]cellKind, g.Len())
	for i, n := range f.Visits {
		if i < len(kinds) && n > 0 {
			kinds[i] = cellVisited
		}
	}
	mark := func(v gridgraph.Vertex, k cellKind) {
		if g.InBounds(v) {
			kinds[g.Index(v)] = k
		}
	}
	for _, v := range f.Exclusions {
		mark(v, cellExcluded)
	}
	for _, v := range f.Path {
		mark(v, cellPath)
	}
	mark(f.Current, cellCurrent)

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(glyph(kinds[g.Index(gridgraph.Vertex{X: x, Y: y})]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func glyph(k cellKind) string {
	switch k {
	case cellVisited:
		return visitedStyle.Render(GlyphVisited)
	case cellExcluded:
		return excludedStyle.Render(GlyphExcluded)
	case cellPath:
		return pathStyle.Render(GlyphPath)
	case cellCurrent:
		return currentStyle.Render(GlyphCurrent)
	default:
		return emptyStyle.Render(GlyphEmpty)
	}
}
