package paint

import (
	"image/color"
)

var _ Painter = (*Recorder)(nil)

const (
	OpClear    = "clear"
	OpPolyline = "polyline"
	OpRect     = "rect"
	OpCircle   = "circle"
	OpWedge    = "wedge"
	OpText     = "text"
)

// Op is one recorded primitive. Only the fields relevant to Name are set.
type Op struct {
	Name   string     `json:"op"`
	Points []Point    `json:"points,omitempty"`
	Rect   Rect       `json:"rect,omitzero"`
	Center Point      `json:"center,omitzero"`
	Radius float64    `json:"radius,omitempty"`
	Start  float64    `json:"start,omitempty"`
	End    float64    `json:"end,omitempty"`
	Text   string     `json:"text,omitempty"`
	Align  Align      `json:"align,omitempty"`
	Color  color.RGBA `json:"color"`
	Stroke Stroke     `json:"stroke,omitzero"`
}

// Recorder keeps the primitives it is asked to draw instead of rasterizing
// them. Clear drops everything recorded before it.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Name: OpClear})
}

func (r *Recorder) StrokePolyline(pts []Point, s Stroke) {
	r.Ops = append(r.Ops, Op{
		Name:   OpPolyline,
		Points: append([]Point(nil), pts...),
		Color:  s.Color,
		Stroke: Stroke{Color: s.Color, Width: s.Width, Dash: append([]float64(nil), s.Dash...)},
	})
}

func (r *Recorder) FillRect(rect Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Name: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(center Point, radius float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Name: OpCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) FillWedge(center Point, radius, start, end float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Name: OpWedge, Center: center, Radius: radius, Start: start, End: end, Color: c})
}

func (r *Recorder) Text(s string, at Point, align Align, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Name: OpText, Text: s, Points: []Point{at}, Align: align, Color: c})
}

// Filter returns the recorded ops with the given name, in drawing order.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}
