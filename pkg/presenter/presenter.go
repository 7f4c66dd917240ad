// Package presenter shows a still copy of a chart over the whole window
// until it is tapped.
package presenter

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

// Presenter owns the single fullscreen overlay of an application. Build one
// with New and hand it to every chart that should open in it.
type Presenter struct {
	canvas fyne.Canvas
	popup  *widget.PopUp
	view   *snapshotView

	snapshot *image.RGBA
	armed    bool
}

func New(c fyne.Canvas) *Presenter {
	p := &Presenter{
		canvas: c,
	}
	p.view = newSnapshotView(p.tapped)
	p.popup = widget.NewModalPopUp(p.view, c)
	p.popup.Hide()
	return p
}

// Open copies the current pixels of src and shows them. A snapshot already
// on screen is replaced.
func (p *Presenter) Open(src image.Image) {
	if src == nil {
		return
	}
	b := src.Bounds()
	snap := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(snap, image.Point{}, src, b, draw.Src, nil)

	p.snapshot = snap
	p.view.setImage(snap)
	p.armed = true
	p.popup.Show()
	p.popup.Resize(p.canvas.Size())
}

// Close hides the overlay. It is a no-op when nothing is shown.
func (p *Presenter) Close() {
	p.armed = false
	p.popup.Hide()
}

func (p *Presenter) Visible() bool {
	return p.popup.Visible()
}

// Snapshot returns the image currently held by the overlay, nil before the
// first Open. It must not be modified.
func (p *Presenter) Snapshot() *image.RGBA {
	return p.snapshot
}

func (p *Presenter) tapped() {
	if !p.armed {
		return
	}
	p.Close()
}
