package chart

import (
	"fmt"
	"math"

	"github.com/roffe/litechart/pkg/paint"
)

// Geometry maps data to surface pixels for the cartesian kinds. Axes, grid,
// labels and data marks all position themselves through X and Y.
//
// Width and Height are expected to exceed 2*Padding; smaller surfaces draw,
// but the marks land outside the plot area.
type Geometry struct {
	Width, Height float64
	Padding       float64
	N             int
	Max           float64
}

func NewGeometry(width, height int, padding float64, data []float64) (Geometry, error) {
	if err := checkSeries(data); err != nil {
		return Geometry{}, err
	}
	maxValue := data[0]
	for _, v := range data[1:] {
		maxValue = math.Max(maxValue, v)
	}
	if maxValue <= 0 {
		return Geometry{}, fmt.Errorf("%w: series has no positive value", ErrInvalidInput)
	}
	return Geometry{
		Width:   float64(width),
		Height:  float64(height),
		Padding: padding,
		N:       len(data),
		Max:     maxValue,
	}, nil
}

// X returns the horizontal position of index i. A single point sits in the
// middle of the plot area.
func (g Geometry) X(i int) float64 {
	if g.N < 2 {
		return g.Padding + (g.Width-2*g.Padding)/2
	}
	return g.Padding + float64(i)/float64(g.N-1)*(g.Width-2*g.Padding)
}

func (g Geometry) Y(v float64) float64 {
	return g.Height - g.Padding - v/g.Max*(g.Height-2*g.Padding)
}

func (g Geometry) Pt(i int, v float64) paint.Point {
	return paint.Pt(g.X(i), g.Y(v))
}

// Baseline is the y of the X axis.
func (g Geometry) Baseline() float64 {
	return g.Height - g.Padding
}

func (g Geometry) BarWidth() float64 {
	return (g.Width - 2*g.Padding) / float64(g.N)
}

// Slice is one pie sector. Angles are radians, clockwise from the positive x
// axis since the surface y axis points down.
type Slice struct {
	Index   int
	Value   float64
	Start   float64
	End     float64
	Percent float64
	Label   string
	LabelAt paint.Point
}

func (s Slice) Angle() float64 {
	return s.End - s.Start
}

type PieGeometry struct {
	Center      paint.Point
	Radius      float64
	LabelRadius float64
	Slices      []Slice
}

func NewPieGeometry(width, height int, padding float64, data []float64) (PieGeometry, error) {
	if err := checkSeries(data); err != nil {
		return PieGeometry{}, err
	}
	var total float64
	for _, v := range data {
		if v < 0 {
			return PieGeometry{}, fmt.Errorf("%w: negative pie value %g", ErrInvalidInput, v)
		}
		total += v
	}
	if total == 0 {
		return PieGeometry{}, fmt.Errorf("%w: pie values sum to zero", ErrInvalidInput)
	}

	half := math.Min(float64(width), float64(height)) / 2
	pg := PieGeometry{
		Center:      paint.Pt(float64(width)/2, float64(height)/2),
		Radius:      half - padding,
		LabelRadius: half - padding/2,
		Slices:      make([]Slice, len(data)),
	}

	// angles come from the running sum so the last slice ends on exactly 2π
	var cum float64
	for i, v := range data {
		start := cum / total * 2 * math.Pi
		cum += v
		end := cum / total * 2 * math.Pi
		mid := (start + end) / 2
		pct := v / total * 100
		pg.Slices[i] = Slice{
			Index:   i,
			Value:   v,
			Start:   start,
			End:     end,
			Percent: pct,
			Label:   fmt.Sprintf("%.1f%%", pct),
			LabelAt: paint.Pt(
				pg.Center.X+math.Cos(mid)*pg.LabelRadius,
				pg.Center.Y+math.Sin(mid)*pg.LabelRadius,
			),
		}
	}
	return pg, nil
}

func checkSeries(data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d is %g", ErrInvalidInput, i, v)
		}
	}
	return nil
}
