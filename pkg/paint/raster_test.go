package paint

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	empty = color.RGBA{}
)

func newTestRaster(w, h int) *Raster {
	return NewRaster(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func TestRasterClear(t *testing.T) {
	r := newTestRaster(10, 10)
	r.FillRect(Rect{0, 0, 10, 10}, red)
	r.Clear()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, empty, r.Image().RGBAAt(x, y))
		}
	}
}

func TestRasterFillRect(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		inside []image.Point
		out    []image.Point
	}{
		{
			name:   "positive",
			rect:   Rect{X: 2, Y: 3, W: 4, H: 2},
			inside: []image.Point{{2, 3}, {5, 4}},
			out:    []image.Point{{1, 3}, {6, 4}, {2, 5}},
		},
		{
			name:   "negative height grows up",
			rect:   Rect{X: 2, Y: 8, W: 3, H: -3},
			inside: []image.Point{{2, 5}, {4, 7}},
			out:    []image.Point{{2, 8}, {2, 4}},
		},
		{
			name:   "clipped",
			rect:   Rect{X: -5, Y: -5, W: 7, H: 7},
			inside: []image.Point{{0, 0}, {1, 1}},
			out:    []image.Point{{2, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRaster(10, 10)
			r.FillRect(tt.rect, red)
			for _, p := range tt.inside {
				assert.Equal(t, red, r.Image().RGBAAt(p.X, p.Y), "pixel %v", p)
			}
			for _, p := range tt.out {
				assert.Equal(t, empty, r.Image().RGBAAt(p.X, p.Y), "pixel %v", p)
			}
		})
	}
}

func TestRasterStrokeSolid(t *testing.T) {
	r := newTestRaster(20, 20)
	r.StrokePolyline([]Point{Pt(2, 5), Pt(17, 5)}, Stroke{Color: blue, Width: 1})
	for x := 2; x <= 17; x++ {
		assert.Equal(t, blue, r.Image().RGBAAt(x, 5), "x=%d", x)
	}
	assert.Equal(t, empty, r.Image().RGBAAt(1, 5))
	assert.Equal(t, empty, r.Image().RGBAAt(18, 5))
	assert.Equal(t, empty, r.Image().RGBAAt(10, 4))
}

func TestRasterStrokeWidth(t *testing.T) {
	r := newTestRaster(20, 20)
	r.StrokePolyline([]Point{Pt(5, 2), Pt(5, 17)}, Stroke{Color: blue, Width: 2})
	set := 0
	for x := 0; x < 20; x++ {
		if r.Image().RGBAAt(x, 10) == blue {
			set++
		}
	}
	assert.Equal(t, 2, set)
}

func TestRasterStrokeDashed(t *testing.T) {
	r := newTestRaster(40, 3)
	r.StrokePolyline([]Point{Pt(0, 1), Pt(40, 1)}, Stroke{Color: red, Width: 1, Dash: []float64{5, 5}})
	for x := 0; x < 40; x++ {
		want := empty
		if (x/5)%2 == 0 {
			want = red
		}
		assert.Equal(t, want, r.Image().RGBAAt(x, 1), "x=%d", x)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := newTestRaster(20, 20)
	r.FillCircle(Pt(10, 10), 5, red)
	assert.Equal(t, red, r.Image().RGBAAt(10, 10))
	assert.Equal(t, red, r.Image().RGBAAt(15, 10))
	assert.Equal(t, red, r.Image().RGBAAt(10, 5))
	assert.Equal(t, empty, r.Image().RGBAAt(16, 10))
	assert.Equal(t, empty, r.Image().RGBAAt(14, 14))
}

func TestRasterFillWedge(t *testing.T) {
	r := newTestRaster(40, 40)
	// lower right quadrant: y grows down, so 0..π/2 sweeps right to down
	r.FillWedge(Pt(20, 20), 15, 0, math.Pi/2, red)
	assert.Equal(t, red, r.Image().RGBAAt(28, 28))
	assert.Equal(t, empty, r.Image().RGBAAt(12, 28))
	assert.Equal(t, empty, r.Image().RGBAAt(28, 12))
	assert.Equal(t, empty, r.Image().RGBAAt(12, 12))

	r.Clear()
	r.FillWedge(Pt(20, 20), 15, 3*math.Pi/2, 5*math.Pi/2, blue)
	assert.Equal(t, blue, r.Image().RGBAAt(28, 12), "wraps past 2π")
	assert.Equal(t, blue, r.Image().RGBAAt(28, 28))
	assert.Equal(t, empty, r.Image().RGBAAt(12, 28))

	r.Clear()
	r.FillWedge(Pt(20, 20), 15, 0, 2*math.Pi, blue)
	for _, p := range []image.Point{{28, 28}, {12, 28}, {12, 12}, {28, 12}} {
		assert.Equal(t, blue, r.Image().RGBAAt(p.X, p.Y), "full circle %v", p)
	}
}

func TestRasterText(t *testing.T) {
	inked := func(img *image.RGBA) (minX, maxX int) {
		minX, maxX = img.Bounds().Dx(), -1
		for y := 0; y < img.Bounds().Dy(); y++ {
			for x := 0; x < img.Bounds().Dx(); x++ {
				if img.RGBAAt(x, y).A != 0 {
					minX = min(minX, x)
					maxX = max(maxX, x)
				}
			}
		}
		return minX, maxX
	}

	left := newTestRaster(100, 20)
	left.Text("100", Pt(50, 15), AlignLeft, red)
	lmin, _ := inked(left.Image())
	assert.GreaterOrEqual(t, lmin, 50)

	right := newTestRaster(100, 20)
	right.Text("100", Pt(50, 15), AlignRight, red)
	_, rmax := inked(right.Image())
	assert.Less(t, rmax, 50)

	center := newTestRaster(100, 20)
	center.Text("100", Pt(50, 15), AlignCenter, red)
	cmin, cmax := inked(center.Image())
	assert.Less(t, cmin, 50)
	assert.Greater(t, cmax, 50)
}
