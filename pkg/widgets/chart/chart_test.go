package chart

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/litechart/pkg/chart"
	"github.com/roffe/litechart/pkg/host"
	"github.com/roffe/litechart/pkg/layout"
	"github.com/roffe/litechart/pkg/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	reg       *host.Registry
	presenter *presenter.Presenter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(1024, 768))
	return &fixture{
		reg:       host.NewRegistry(),
		presenter: presenter.New(w.Canvas()),
	}
}

func (f *fixture) container(id string, w, h float32) *fyne.Container {
	c := layout.NewFixed(fyne.NewSize(w, h))
	f.reg.Register(id, c)
	return c
}

func newRenderer(t *testing.T, cfg chart.Config) *chart.Renderer {
	t.Helper()
	r, err := chart.New(cfg, chart.WithDiagnostics(func(string) {}))
	require.NoError(t, err)
	return r
}

func TestAttach(t *testing.T) {
	f := newFixture(t)
	cont := f.container("sales", 400, 300)

	c := New(newRenderer(t, chart.Config{Data: []float64{10, 20, 30, 40}, Type: "bar"}), f.presenter)
	require.NoError(t, c.Attach(f.reg, "sales"))

	require.Len(t, cont.Objects, 1)
	assert.Same(t, c, cont.Objects[0])
	surface := c.Renderer().Surface()
	require.NotNil(t, surface)
	assert.Equal(t, 400, surface.Bounds().Dx())
	assert.Equal(t, 300, surface.Bounds().Dy())
	assert.Equal(t, fyne.NewSize(400, 300), c.MinSize())

	err := c.Attach(f.reg, "sales")
	assert.ErrorIs(t, err, chart.ErrAlreadyAttached)
	assert.Len(t, cont.Objects, 1)
}

func TestAttachPieIsSquare(t *testing.T) {
	f := newFixture(t)
	cont := f.container("share", 400, 300)
	cont.Resize(fyne.NewSize(500, 240))

	c := New(newRenderer(t, chart.Config{Data: []float64{1, 1, 2}, Type: "pie"}), f.presenter)
	require.NoError(t, c.Attach(f.reg, "share"))
	b := c.Renderer().Surface().Bounds()
	assert.Equal(t, 240, b.Dx(), "measured size wins over the minimum")
	assert.Equal(t, 240, b.Dy())
}

func TestAttachMissing(t *testing.T) {
	f := newFixture(t)
	c := New(newRenderer(t, chart.Config{Data: []float64{1}}), f.presenter)
	err := c.Attach(f.reg, "nope")
	assert.ErrorIs(t, err, host.ErrNotFound)
	assert.Nil(t, c.Renderer().Surface())
}

func TestAttachInvalidData(t *testing.T) {
	f := newFixture(t)
	cont := f.container("empty", 200, 100)
	c := New(newRenderer(t, chart.Config{}), f.presenter)

	err := c.Attach(f.reg, "empty")
	assert.ErrorIs(t, err, chart.ErrInvalidInput)
	assert.Len(t, cont.Objects, 1, "the blank chart stays in place")
	assert.Equal(t, make([]byte, 200*100*4), c.Renderer().Surface().Pix)
}

func TestTapOpensPresenter(t *testing.T) {
	f := newFixture(t)
	f.container("trend", 320, 200)
	c := New(newRenderer(t, chart.Config{Data: []float64{3, 1, 4, 1, 5}}), f.presenter)

	test.Tap(c)
	assert.False(t, f.presenter.Visible(), "nothing to show before attach")

	require.NoError(t, c.Attach(f.reg, "trend"))
	test.Tap(c)
	require.True(t, f.presenter.Visible())
	assert.Equal(t, c.Renderer().Surface().Pix, f.presenter.Snapshot().Pix)
	assert.NotSame(t, c.Renderer().Surface(), f.presenter.Snapshot())

	f.presenter.Close()
	assert.False(t, f.presenter.Visible())
}

func TestSecondaryTap(t *testing.T) {
	f := newFixture(t)
	var got *Chart
	c := New(newRenderer(t, chart.Config{Data: []float64{1}}), f.presenter, WithOnSecondaryTapped(func(c *Chart) {
		got = c
	}))
	test.TapSecondary(c)
	assert.Same(t, c, got)
}

func TestRedraw(t *testing.T) {
	f := newFixture(t)
	f.container("line", 300, 200)
	c := New(newRenderer(t, chart.Config{Data: []float64{5, 2, 8}}), nil)
	assert.ErrorIs(t, c.Redraw(), chart.ErrNotAttached)

	require.NoError(t, c.Attach(f.reg, "line"))
	before := append([]byte(nil), c.Renderer().Surface().Pix...)
	require.NoError(t, c.Redraw())
	assert.Equal(t, before, c.Renderer().Surface().Pix)

	test.Tap(c)
	assert.False(t, f.presenter.Visible(), "no presenter, no overlay")
}
