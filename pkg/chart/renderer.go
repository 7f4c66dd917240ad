// Package chart renders a numeric series as a line, bar, point or pie chart
// onto an *image.RGBA surface.
package chart

import (
	"fmt"
	"image"
	"log"

	"github.com/roffe/litechart/pkg/colors"
	"github.com/roffe/litechart/pkg/paint"
	"golang.org/x/image/font"
)

// DiagnosticFunc receives conditions worth reporting that do not fail a
// render, such as an unknown chart type.
type DiagnosticFunc func(msg string)

type Renderer struct {
	cfg   Config
	kind  Kind
	known bool
	style style

	surface *image.RGBA
	raster  *paint.Raster

	diagnose DiagnosticFunc
	face     font.Face
}

type RendererOpt func(*Renderer)

func WithDiagnostics(f DiagnosticFunc) RendererOpt {
	return func(r *Renderer) {
		r.diagnose = f
	}
}

// WithFace sets the font used for axis and pie labels.
func WithFace(face font.Face) RendererOpt {
	return func(r *Renderer) {
		r.face = face
	}
}

// New validates the configuration and its colours. Data is checked when the
// chart is drawn, and an unknown Type is reported then as a diagnostic.
func New(cfg Config, opts ...RendererOpt) (*Renderer, error) {
	r := &Renderer{
		cfg: cfg.WithDefaults(),
		diagnose: func(msg string) {
			log.Println(msg)
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	if r.style, err = r.cfg.style(); err != nil {
		return nil, err
	}
	if r.kind, err = ParseKind(r.cfg.Type); err == nil {
		r.known = true
	}
	return r, nil
}

// Config returns the configuration with defaults applied.
func (r *Renderer) Config() Config {
	return r.cfg.WithDefaults()
}

// Kind returns the parsed chart kind and false when Type is not one of the
// known kinds.
func (r *Renderer) Kind() (Kind, bool) {
	return r.kind, r.known
}

func (r *Renderer) Palette() colors.Palette {
	return append(colors.Palette(nil), r.style.palette...)
}

// SurfaceSize applies the sizing rule to a container box: pie charts get a
// square of the smaller side, everything else the whole box.
func (r *Renderer) SurfaceSize(width, height int) (int, int) {
	width, height = max(width, 0), max(height, 0)
	if r.known && !r.kind.Cartesian() {
		side := min(width, height)
		return side, side
	}
	return width, height
}

// Attach creates the surface for a container of the given size and draws the
// chart once. The surface size never changes afterwards.
func (r *Renderer) Attach(width, height int) error {
	if r.surface != nil {
		return ErrAlreadyAttached
	}
	w, h := r.SurfaceSize(width, height)
	r.surface = image.NewRGBA(image.Rect(0, 0, w, h))
	var opts []paint.RasterOpt
	if r.face != nil {
		opts = append(opts, paint.WithFace(r.face))
	}
	r.raster = paint.NewRaster(r.surface, opts...)
	return r.Render()
}

// Surface is nil until Attach.
func (r *Renderer) Surface() *image.RGBA {
	return r.surface
}

// Render redraws the whole surface. On error the surface is left cleared.
func (r *Renderer) Render() error {
	if r.raster == nil {
		return ErrNotAttached
	}
	return r.Draw(r.raster)
}

// Geometry returns the cartesian mapping for the attached surface.
func (r *Renderer) Geometry() (Geometry, error) {
	if r.surface == nil {
		return Geometry{}, ErrNotAttached
	}
	s := r.surface.Bounds().Size()
	return NewGeometry(s.X, s.Y, r.cfg.Padding, r.cfg.Data)
}

// Slices returns the pie sectors for the attached surface.
func (r *Renderer) Slices() ([]Slice, error) {
	if r.surface == nil {
		return nil, ErrNotAttached
	}
	s := r.surface.Bounds().Size()
	pg, err := NewPieGeometry(s.X, s.Y, r.cfg.Padding, r.cfg.Data)
	if err != nil {
		return nil, err
	}
	return pg.Slices, nil
}

// Draw runs the rendering pipeline against p: clear, axes and labels for
// everything but pie, then the routine for the chart kind.
func (r *Renderer) Draw(p paint.Painter) error {
	p.Clear()
	w, h := p.Size()

	if r.known && !r.kind.Cartesian() {
		pg, err := NewPieGeometry(w, h, r.cfg.Padding, r.cfg.Data)
		if err != nil {
			return err
		}
		r.drawPie(p, pg)
		return nil
	}

	g, err := NewGeometry(w, h, r.cfg.Padding, r.cfg.Data)
	if err != nil {
		return err
	}
	r.drawAxes(p, g)
	r.drawLabels(p, g)

	if !r.known {
		r.diagnose(fmt.Sprintf("Unknown chart type %q", r.cfg.Type))
		return nil
	}
	switch r.kind {
	case KindLine:
		r.drawLine(p, g)
	case KindBar:
		r.drawBar(p, g)
	case KindPoint:
		r.drawPoint(p, g)
	case KindPie:
		// handled above, pie has no axes
	default:
		r.diagnose(fmt.Sprintf("Unhandled chart kind %s", r.kind))
	}
	return nil
}
