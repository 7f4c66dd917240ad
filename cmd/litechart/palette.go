package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/litechart/pkg/colors"
)

// editPalette shows one swatch per palette colour; tapping a swatch selects
// it for the picker.
func (mw *mainWindow) editPalette() {
	tokens := append([]string(nil), mw.palette...)
	if len(tokens) == 0 {
		tokens = append(tokens, colors.DefaultTokens...)
	}
	selected := 0

	swatches := container.NewHBox()
	var redraw func()
	redraw = func() {
		swatches.RemoveAll()
		for i, tok := range tokens {
			i := i
			c, err := colors.Parse(tok)
			if err != nil {
				c = color.RGBA{}
			}
			rect := canvas.NewRectangle(c)
			rect.SetMinSize(fyne.NewSize(32, 32))
			if i == selected {
				rect.StrokeColor = color.Black
				rect.StrokeWidth = 2
			}
			btn := widget.NewButton(tok, func() {
				selected = i
				redraw()
			})
			swatches.Add(container.NewVBox(rect, btn))
		}
	}
	redraw()

	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		if selected >= len(tokens) {
			return
		}
		tokens[selected] = colors.Hex(c)
		redraw()
	})

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		swatches,
		picker,
		container.NewHBox(
			widget.NewButton("Add", func() {
				tokens = append(tokens, tokens[len(tokens)-1])
				selected = len(tokens) - 1
				redraw()
			}),
			widget.NewButton("Remove", func() {
				if len(tokens) < 2 {
					return
				}
				tokens = append(tokens[:selected], tokens[selected+1:]...)
				selected = min(selected, len(tokens)-1)
				redraw()
			}),
			widget.NewButton("Apply", func() {
				modal.Hide()
				mw.setPalette(tokens)
			}),
			widget.NewButton("Close", func() {
				modal.Hide()
			}),
		),
	), mw.Canvas())
	modal.Show()
}
