package chart

import (
	"math"
	"strconv"

	"github.com/roffe/litechart/pkg/paint"
)

const (
	gridLines  = 5
	labelCount = 5
)

func (r *Renderer) drawAxes(p paint.Painter, g Geometry) {
	axis := paint.Stroke{Color: r.style.axis, Width: r.cfg.AxisWidth}
	base := g.Baseline()

	p.StrokePolyline([]paint.Point{paint.Pt(g.Padding, 0), paint.Pt(g.Padding, base)}, axis)
	p.StrokePolyline([]paint.Point{paint.Pt(g.Padding, base), paint.Pt(g.Width, base)}, axis)

	grid := paint.Stroke{Color: r.style.grid, Width: r.cfg.GridWidth, Dash: r.cfg.GridDash}
	for i := 1; i < gridLines; i++ {
		y := base / gridLines * float64(i)
		p.StrokePolyline([]paint.Point{paint.Pt(g.Padding, y), paint.Pt(g.Width, y)}, grid)
	}
	for i := 1; i < gridLines; i++ {
		x := (g.Width-g.Padding)/gridLines*float64(i) + g.Padding
		p.StrokePolyline([]paint.Point{paint.Pt(x, 0), paint.Pt(x, base)}, grid)
	}
}

// drawLabels writes labelCount value labels up the Y axis and as many index
// labels along the X axis. The zero label of each axis is left out.
func (r *Renderer) drawLabels(p paint.Painter, g Geometry) {
	step := g.Max / labelCount
	for i := 1; i <= labelCount; i++ {
		value := step * float64(i)
		y := g.Y(value)
		p.Text(formatLabel(value), paint.Pt(g.Padding-10, y+3), paint.AlignRight, r.style.axis)
	}

	dataStep := float64(g.N) / labelCount
	for i := 1; i <= labelCount; i++ {
		index := int(math.Round(dataStep * float64(i)))
		p.Text(strconv.Itoa(index), paint.Pt(g.X(index), g.Baseline()+20), paint.AlignCenter, r.style.axis)
	}
}

// formatLabel prints v with no decimals, halves rounded away from zero.
func formatLabel(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}
