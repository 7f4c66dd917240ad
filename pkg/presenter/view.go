package presenter

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	charttheme "github.com/roffe/litechart/pkg/theme"
)

var _ fyne.Tappable = (*snapshotView)(nil)
var _ fyne.Widget = (*snapshotView)(nil)

// snapshotView fills the overlay and draws the snapshot on a plain
// background, scaled down only when it does not fit.
type snapshotView struct {
	widget.BaseWidget

	background *canvas.Rectangle
	image      *canvas.Image
	onTapped   func()
}

func newSnapshotView(onTapped func()) *snapshotView {
	v := &snapshotView{
		background: canvas.NewRectangle(theme.Color(charttheme.ColorNameSnapshot)),
		image:      canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))),
		onTapped:   onTapped,
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleFastest
	v.ExtendBaseWidget(v)
	return v
}

func (v *snapshotView) setImage(img *image.RGBA) {
	v.image.Image = img
	v.Refresh()
}

func (v *snapshotView) Tapped(*fyne.PointEvent) {
	if v.onTapped != nil {
		v.onTapped()
	}
}

func (v *snapshotView) CreateRenderer() fyne.WidgetRenderer {
	return &snapshotRenderer{v: v}
}

type snapshotRenderer struct {
	v *snapshotView
}

// fit returns the on screen size of a w x h snapshot inside avail.
func fit(w, h float32, avail fyne.Size) fyne.Size {
	if w <= 0 || h <= 0 {
		return fyne.NewSize(0, 0)
	}
	scale := min(1, avail.Width/w, avail.Height/h)
	return fyne.NewSize(w*scale, h*scale)
}

func (r *snapshotRenderer) Layout(size fyne.Size) {
	inset := theme.Size(charttheme.SizeNameOverlayInset) / 100
	avail := fyne.NewSize(size.Width*(1-2*inset), size.Height*(1-2*inset))

	var w, h float32
	if img := r.v.image.Image; img != nil {
		b := img.Bounds()
		w, h = float32(b.Dx()), float32(b.Dy())
	}
	shown := fit(w, h, avail)
	pos := fyne.NewPos((size.Width-shown.Width)/2, (size.Height-shown.Height)/2)

	r.v.background.Move(pos)
	r.v.background.Resize(shown)
	r.v.image.Move(pos)
	r.v.image.Resize(shown)
}

func (r *snapshotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *snapshotRenderer) Refresh() {
	r.v.background.FillColor = theme.Color(charttheme.ColorNameSnapshot)
	r.v.background.Refresh()
	r.Layout(r.v.Size())
	r.v.image.Refresh()
}

func (r *snapshotRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.v.background, r.v.image}
}

func (r *snapshotRenderer) Destroy() {
}
