package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/render"
)

func v(x, y int) gridgraph.Vertex { return gridgraph.Vertex{X: x, Y: y} }

func sampleFrame(t *testing.T) render.Frame {
	t.Helper()
	g, err := gridgraph.NewGrid(3, 2)
	require.NoError(t, err)

	return render.Frame{
		Grid:       g,
		Current:    v(2, 1),
		Path:       []gridgraph.Vertex{v(0, 0), v(1, 0)},
		Exclusions: []gridgraph.Vertex{v(0, 1)},
		Visits:     []uint32{1, 1, 1, 0, 0, 0},
	}
}

func TestTerminal_Layers(t *testing.T) {
	out := render.Terminal(sampleFrame(t))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	require.True(t, strings.Contains(lines[0], render.GlyphPath))
	require.True(t, strings.Contains(lines[0], render.GlyphVisited), "(2,0) is visited but off the path")
	require.True(t, strings.Contains(lines[1], render.GlyphExcluded))
	require.True(t, strings.Contains(lines[1], render.GlyphCurrent))
	require.True(t, strings.Contains(lines[1], render.GlyphEmpty))
	require.Equal(t, 1, strings.Count(out, render.GlyphCurrent))
}

func TestTerminal_IgnoresOffGridVertices(t *testing.T) {
	f := sampleFrame(t)
	f.Exclusions = append(f.Exclusions, v(9, 9))
	require.NotPanics(t, func() { render.Terminal(f) })
}

func TestSVG_Elements(t *testing.T) {
	f := sampleFrame(t)
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, f, aco.Size{W: 300, H: 200}))

	out := buf.String()
	require.Contains(t, out, "<svg")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	// one dot per vertex plus the current marker
	require.Equal(t, 7, strings.Count(out, "<circle"))
	// background plus one polyline (0,0)->(1,0)->current
	require.Equal(t, 2, strings.Count(out, "<path"))
}

func TestSVG_FlatWindow(t *testing.T) {
	f := sampleFrame(t)
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, f, aco.Size{W: 300, H: 20}))
	require.Equal(t, 7, strings.Count(buf.String(), "<circle"))
}

func TestSVG_EmptyPath(t *testing.T) {
	g, err := gridgraph.NewGrid(1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, render.Frame{Grid: g}, aco.Size{W: 10, H: 10}))
	require.Equal(t, 2, strings.Count(buf.String(), "<circle"))
	require.Equal(t, 1, strings.Count(buf.String(), "<path"), "background only")
}
