package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/gridgraph"
)

var (
	svgBackground = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	svgVertex     = drawing.Color{R: 128, G: 128, B: 128, A: 255}
)

// SVG writes f as an SVG image of window size on go-chart's vector
// renderer: every vertex as a small gray dot, the path and the last move as
// one green polyline, the current vertex as a red dot. Positions come from
// aco.ScreenPosition and dot sizes from aco.Spacing.
func SVG(w io.Writer, f Frame, window aco.Size) error {
	r, err := chart.SVG(window.W, window.H)
	if err != nil {
		return fmt.Errorf("svg renderer: %w", err)
	}
	g := f.Grid
	at := func(v gridgraph.Vertex) (int, int) {
		x, y := aco.ScreenPosition(g, window, v)
		return int(math.Round(float64(x))), int(math.Round(float64(y)))
	}

	xs, ys := aco.Spacing(g, window)
	dot := math.Max(float64(min(xs, ys))/8, 1)

	// background
	r.SetFillColor(svgBackground)
	r.MoveTo(0, 0)
	r.LineTo(window.W, 0)
	r.LineTo(window.W, window.H)
	r.LineTo(0, window.H)
	r.Close()
	r.Fill()

	r.ResetStyle()
	r.SetFillColor(svgVertex)
	for idx := 0; idx < g.Len(); idx++ {
		x, y := at(g.Vertex(idx))
		r.Circle(dot, x, y)
	}

	if len(f.Path) > 0 {
		r.ResetStyle()
		r.SetStrokeColor(chart.ColorGreen)
		r.SetStrokeWidth(1)
		r.MoveTo(at(f.Path[0]))
		for _, v := range f.Path[1:] {
			r.LineTo(at(v))
		}
		r.LineTo(at(f.Current))
		r.Stroke()
	}

	r.ResetStyle()
	r.SetFillColor(chart.ColorRed)
	cx, cy := at(f.Current)
	r.Circle(math.Max(2*dot, 4), cx, cy)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}

	return nil
}
