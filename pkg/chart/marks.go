package chart

import (
	"github.com/roffe/litechart/pkg/paint"
)

func (r *Renderer) drawLine(p paint.Painter, g Geometry) {
	data := r.cfg.Data
	pts := make([]paint.Point, len(data))
	for i, v := range data {
		pts[i] = g.Pt(i, v)
	}
	if len(pts) > 1 {
		p.StrokePolyline(pts, paint.Stroke{Color: r.style.palette.At(0), Width: r.cfg.LineWidth})
	}
	// markers use the second colour, which is the first again for a one colour palette
	marker := r.style.palette.At(1)
	for _, pt := range pts {
		p.FillCircle(pt, r.cfg.PointRadius, marker)
	}
}

func (r *Renderer) drawBar(p paint.Painter, g Geometry) {
	barWidth := g.BarWidth()
	drawn := max(barWidth-r.cfg.BarGap, 1)
	base := g.Baseline()
	for i, v := range r.cfg.Data {
		x := g.Padding + float64(i)*barWidth
		y := g.Y(v)
		p.FillRect(paint.Rect{X: x, Y: y, W: drawn, H: base - y}, r.style.palette.At(i))
	}
}

func (r *Renderer) drawPoint(p paint.Painter, g Geometry) {
	for i, v := range r.cfg.Data {
		p.FillCircle(g.Pt(i, v), r.cfg.PointRadius, r.style.palette.At(i))
	}
}

func (r *Renderer) drawPie(p paint.Painter, pg PieGeometry) {
	for _, s := range pg.Slices {
		p.FillWedge(pg.Center, pg.Radius, s.Start, s.End, r.style.palette.At(s.Index))
	}
	// labels after every slice
	for _, s := range pg.Slices {
		p.Text(s.Label, s.LabelAt, paint.AlignCenter, r.style.label)
	}
}
