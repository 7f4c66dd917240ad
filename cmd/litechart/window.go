package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/litechart/pkg/chart"
	"github.com/roffe/litechart/pkg/colors"
	"github.com/roffe/litechart/pkg/debug"
	"github.com/roffe/litechart/pkg/host"
	"github.com/roffe/litechart/pkg/layout"
	"github.com/roffe/litechart/pkg/presenter"
	"github.com/roffe/litechart/pkg/presets"
	charttheme "github.com/roffe/litechart/pkg/theme"
	chartwidget "github.com/roffe/litechart/pkg/widgets/chart"
	"golang.design/x/clipboard"
)

const (
	prefsPalette = "palette"
	cellWidth    = 400
	cellHeight   = 300
)

type mainWindow struct {
	fyne.Window
	app fyne.App

	presenter *presenter.Presenter
	registry  *host.Registry
	palette   []string

	grid    *fyne.Container
	status  *widget.Label
	hasClip bool
}

func newMainWindow(a fyne.App) *mainWindow {
	mw := &mainWindow{
		Window:   a.NewWindow("LiteChart"),
		app:      a,
		registry: host.NewRegistry(),
		grid:     container.NewWithoutLayout(),
		status:   widget.NewLabel(""),
		palette:  a.Preferences().StringListWithFallback(prefsPalette, colors.DefaultTokens),
	}
	mw.presenter = presenter.New(mw.Canvas())
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		mw.hasClip = true
	}

	toolbar := container.NewHBox(
		widget.NewButton("Import...", mw.importFile),
		widget.NewButton("Palette...", mw.editPalette),
		widget.NewButton("Reset palette", func() {
			mw.setPalette(colors.DefaultTokens)
		}),
	)
	mw.SetContent(container.NewBorder(toolbar, mw.status, nil, nil, container.NewScroll(mw.grid)))
	mw.rebuild()
	return mw
}

func (mw *mainWindow) diagnose(name string) chart.DiagnosticFunc {
	return func(msg string) {
		msg = fmt.Sprintf("%s: %s", name, msg)
		log.Println(msg)
		debug.Log(msg)
	}
}

// rebuild drops every chart and attaches a fresh one per preset. Surfaces
// are sized once, so a palette change needs new charts.
func (mw *mainWindow) rebuild() {
	names := presets.Names()
	cols, rows := layout.GridSize(len(names))
	cells := make([]fyne.CanvasObject, 0, len(names))
	inset := theme.Size(charttheme.SizeNameChartPadding)

	mw.registry.Reset()
	for _, name := range names {
		cfg, err := presets.Get(name)
		if err != nil {
			mw.fail(err)
			continue
		}
		if len(cfg.Colors) == 0 && cfg.Scheme == "" {
			cfg.Colors = mw.palette
		}
		r, err := chart.New(cfg, chart.WithDiagnostics(mw.diagnose(name)))
		if err != nil {
			mw.fail(fmt.Errorf("%s: %w", name, err))
			continue
		}

		cont := layout.NewFixed(fyne.NewSize(cellWidth, cellHeight))
		mw.registry.Register(name, cont)
		c := chartwidget.New(r, mw.presenter, chartwidget.WithOnSecondaryTapped(mw.copyToClipboard(name)))
		if err := c.Attach(mw.registry, name); err != nil {
			mw.fail(err)
		}
		cells = append(cells, container.NewBorder(widget.NewLabel(name), nil, nil, nil, layout.NewInset(inset, cont)))
	}

	mw.grid.Layout = layout.NewGrid(cols, rows, 4)
	mw.grid.Objects = cells
	mw.grid.Refresh()
	mw.status.SetText(fmt.Sprintf("%d charts, tap to enlarge, right click to copy", len(cells)))
}

func (mw *mainWindow) fail(err error) {
	log.Println(err)
	debug.Log(err.Error())
	mw.status.SetText(err.Error())
}

func (mw *mainWindow) copyToClipboard(name string) func(*chartwidget.Chart) {
	return func(c *chartwidget.Chart) {
		if !mw.hasClip {
			return
		}
		surface := c.Renderer().Surface()
		if surface == nil {
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, surface); err != nil {
			mw.fail(err)
			return
		}
		clipboard.Write(clipboard.FmtImage, buf.Bytes())
		mw.status.SetText("copied " + name)
	}
}

func (mw *mainWindow) importFile() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			mw.fail(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		r.Close()

		names, err := presets.Import(path)
		if err != nil {
			mw.fail(err)
			return
		}
		if err := presets.Save(mw.app); err != nil {
			mw.fail(err)
		}
		mw.rebuild()
		mw.status.SetText("imported " + strings.Join(names, ", "))
	}, mw)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".yaml", ".yml", ".toml"}))
	d.Show()
}

func (mw *mainWindow) setPalette(tokens []string) {
	if _, err := colors.ParsePalette(tokens); err != nil {
		mw.fail(err)
		return
	}
	mw.palette = append([]string(nil), tokens...)
	mw.app.Preferences().SetStringList(prefsPalette, mw.palette)
	mw.rebuild()
}
