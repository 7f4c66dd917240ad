package paint

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ Painter = (*Raster)(nil)

// Raster paints straight into an *image.RGBA. Pixels are written, not
// blended.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

type RasterOpt func(*Raster)

func WithFace(face font.Face) RasterOpt {
	return func(r *Raster) {
		r.face = face
	}
}

func NewRaster(img *image.RGBA, opts ...RasterOpt) *Raster {
	r := &Raster{
		img:  img,
		face: basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	s := r.img.Bounds().Size()
	return s.X, s.Y
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) StrokePolyline(pts []Point, s Stroke) {
	if len(pts) == 0 {
		return
	}
	thickness := max(int(math.Round(s.Width)), 1)
	if len(pts) == 1 {
		fillCircle(r.img, pts[0].X, pts[0].Y, float64(thickness)/2, s.Color)
		return
	}
	dash := newDasher(s.Dash)
	for i := 1; i < len(pts); i++ {
		dash.segment(pts[i-1], pts[i], func(a, b Point) {
			bresenhamThick(r.img, round(a.X), round(a.Y), round(b.X), round(b.Y), thickness, s.Color)
		})
	}
}

func (r *Raster) FillRect(rect Rect, c color.RGBA) {
	rect = rect.Canon()
	bounds := image.Rect(round(rect.X), round(rect.Y), round(rect.X+rect.W), round(rect.Y+rect.H))
	draw.Draw(r.img, bounds.Intersect(r.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(center Point, radius float64, c color.RGBA) {
	fillCircle(r.img, center.X, center.Y, radius, c)
}

func (r *Raster) FillWedge(center Point, radius, start, end float64, c color.RGBA) {
	if radius <= 0 || end <= start {
		return
	}
	sweep := end - start
	full := sweep >= 2*math.Pi
	start = math.Mod(start, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}

	cx, cy := round(center.X), round(center.Y)
	rad := int(math.Ceil(radius))
	rr := radius * radius
	bounds := r.img.Bounds()
	for y := -rad; y <= rad; y++ {
		for x := -rad; x <= rad; x++ {
			if float64(x*x+y*y) > rr {
				continue
			}
			if !(image.Point{cx + x, cy + y}).In(bounds) {
				continue
			}
			if !full && !inSweep(math.Atan2(float64(y), float64(x)), start, sweep) {
				continue
			}
			r.img.SetRGBA(cx+x, cy+y, c)
		}
	}
}

// inSweep reports whether angle a lies in [start, start+sweep), start in [0, 2π).
func inSweep(a, start, sweep float64) bool {
	if a < 0 {
		a += 2 * math.Pi
	}
	if a < start {
		a += 2 * math.Pi
	}
	return a-start < sweep
}

func (r *Raster) Text(s string, at Point, align Align, c color.RGBA) {
	x := at.X
	switch align {
	case AlignCenter:
		x -= float64(font.MeasureString(r.face, s)) / 128
	case AlignRight:
		x -= float64(font.MeasureString(r.face, s)) / 64
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(round(x * 64)), Y: fixed.Int26_6(round(at.Y * 64))},
	}
	d.DrawString(s)
}

func round(f float64) int {
	return int(math.Round(f))
}

// dasher splits a path into its "on" pieces, carrying the pattern phase from
// one segment to the next the way a canvas path does.
type dasher struct {
	pattern []float64
	index   int
	left    float64
}

func newDasher(pattern []float64) *dasher {
	var total float64
	for _, v := range pattern {
		if v < 0 {
			return &dasher{}
		}
		total += v
	}
	if total == 0 {
		return &dasher{}
	}
	// an odd pattern repeats itself, as setLineDash does
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64{}, pattern...), pattern...)
	}
	return &dasher{pattern: pattern, left: pattern[0]}
}

func (d *dasher) segment(a, b Point, draw func(a, b Point)) {
	if len(d.pattern) == 0 {
		draw(a, b)
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	var pos float64
	for pos < length {
		step := math.Min(d.left, length-pos)
		if d.index%2 == 0 && step > 0 {
			from := Pt(a.X+dx*pos/length, a.Y+dy*pos/length)
			// stop one pixel short so adjacent dashes keep their gap
			to := Pt(a.X+dx*(pos+step-1)/length, a.Y+dy*(pos+step-1)/length)
			if step < 1 {
				to = from
			}
			draw(from, to)
		}
		pos += step
		d.left -= step
		if d.left <= 0 {
			d.index = (d.index + 1) % len(d.pattern)
			d.left = d.pattern[d.index]
		}
	}
}
