// Package chart is the fyne widget that puts a chart.Renderer surface into a
// host container and opens it fullscreen when tapped.
package chart

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/litechart/pkg/chart"
	"github.com/roffe/litechart/pkg/host"
	"github.com/roffe/litechart/pkg/presenter"
	charttheme "github.com/roffe/litechart/pkg/theme"
)

var _ fyne.Tappable = (*Chart)(nil)
var _ fyne.SecondaryTappable = (*Chart)(nil)
var _ fyne.Widget = (*Chart)(nil)

type Chart struct {
	widget.BaseWidget

	renderer  *chart.Renderer
	presenter *presenter.Presenter

	background *canvas.Rectangle
	border     *canvas.Rectangle
	image      *canvas.Image

	OnSecondaryTapped func(*Chart)
}

type ChartOpt func(*Chart)

func WithOnSecondaryTapped(f func(*Chart)) ChartOpt {
	return func(c *Chart) {
		c.OnSecondaryTapped = f
	}
}

// New wraps r. Taps open the surface in p; a nil presenter makes the chart
// inert to taps.
func New(r *chart.Renderer, p *presenter.Presenter, opts ...ChartOpt) *Chart {
	c := &Chart{
		renderer:   r,
		presenter:  p,
		background: canvas.NewRectangle(theme.Color(charttheme.ColorNameChartBackground)),
		border:     canvas.NewRectangle(nil),
		image:      canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))),
	}
	c.border.StrokeColor = theme.Color(charttheme.ColorNameChartBorder)
	c.border.StrokeWidth = theme.Size(charttheme.SizeNameChartBorder)
	c.border.CornerRadius = theme.Size(charttheme.SizeNameChartRadius)
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScaleFastest
	for _, opt := range opts {
		opt(c)
	}
	c.ExtendBaseWidget(c)
	return c
}

// Attach looks up the container registered as id, sizes the chart surface
// from it, draws the chart and adds the widget to the container. A render
// error is returned after the widget has been added, leaving a blank chart
// in place.
func (c *Chart) Attach(reg *host.Registry, id string) error {
	cont, err := reg.Lookup(id)
	if err != nil {
		return fmt.Errorf("attach %q: %w", id, err)
	}
	size := cont.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = cont.MinSize()
	}

	renderErr := c.renderer.Attach(int(size.Width), int(size.Height))
	if errors.Is(renderErr, chart.ErrAlreadyAttached) {
		return fmt.Errorf("attach %q: %w", id, renderErr)
	}

	surface := c.renderer.Surface()
	b := surface.Bounds()
	c.image.Image = surface
	c.image.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	cont.Add(c)
	c.Refresh()

	if renderErr != nil {
		return fmt.Errorf("attach %q: %w", id, renderErr)
	}
	return nil
}

// Redraw renders the chart again and refreshes the widget.
func (c *Chart) Redraw() error {
	err := c.renderer.Render()
	c.image.Refresh()
	return err
}

func (c *Chart) Renderer() *chart.Renderer {
	return c.renderer
}

func (c *Chart) Tapped(*fyne.PointEvent) {
	surface := c.renderer.Surface()
	if c.presenter == nil || surface == nil {
		return
	}
	c.presenter.Open(surface)
}

func (c *Chart) TappedSecondary(*fyne.PointEvent) {
	if f := c.OnSecondaryTapped; f != nil {
		f(c)
	}
}

func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	return &chartRenderer{c: c}
}

type chartRenderer struct {
	c *Chart
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.c.background.Resize(size)
	r.c.border.Resize(size)
	ms := r.c.image.MinSize()
	r.c.image.Resize(ms)
	r.c.image.Move(fyne.NewPos((size.Width-ms.Width)/2, (size.Height-ms.Height)/2))
}

func (r *chartRenderer) MinSize() fyne.Size {
	return r.c.image.MinSize()
}

func (r *chartRenderer) Refresh() {
	r.c.background.FillColor = theme.Color(charttheme.ColorNameChartBackground)
	r.c.border.StrokeColor = theme.Color(charttheme.ColorNameChartBorder)
	r.c.background.Refresh()
	r.c.border.Refresh()
	r.c.image.Refresh()
	r.Layout(r.c.Size())
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.c.background, r.c.image, r.c.border}
}

func (r *chartRenderer) Destroy() {
}
