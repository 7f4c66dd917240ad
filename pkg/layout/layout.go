package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// NewFixed returns a container that always asks for size and stretches its
// objects over it. Charts attach to these, so their surface size is known
// before the window is shown.
func NewFixed(size fyne.Size, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(&FixedContainer{size: size}, objects...)
}

type FixedContainer struct {
	size fyne.Size
}

func (d *FixedContainer) MinSize([]fyne.CanvasObject) fyne.Size {
	return d.size
}

func (d *FixedContainer) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(containerSize)
	}
}

// NewInset surrounds objects with inset on every side.
func NewInset(inset float32, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(&Inset{Inset: inset}, objects...)
}

type Inset struct {
	Inset float32
}

func (l *Inset) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	inner := fyne.NewSize(max(size.Width-2*l.Inset, 0), max(size.Height-2*l.Inset, 0))
	for _, o := range objects {
		o.Move(fyne.NewPos(l.Inset, l.Inset))
		o.Resize(inner)
	}
}

func (l *Inset) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var s fyne.Size
	for _, o := range objects {
		s = s.Max(o.MinSize())
	}
	return s.AddWidthHeight(2*l.Inset, 2*l.Inset)
}
