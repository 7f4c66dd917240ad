// Package theme carries the default look of chart containers and the
// fullscreen overlay.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	ColorNameChartBackground fyne.ThemeColorName = "chart-background"
	ColorNameChartBorder     fyne.ThemeColorName = "chart-border"
	ColorNameSnapshot        fyne.ThemeColorName = "chart-snapshot"

	SizeNameChartPadding fyne.ThemeSizeName = "chart-padding"
	SizeNameChartRadius  fyne.ThemeSizeName = "chart-radius"
	SizeNameChartBorder  fyne.ThemeSizeName = "chart-border"
	// fraction of the window kept free around a fullscreen snapshot, in percent
	SizeNameOverlayInset fyne.ThemeSizeName = "chart-overlay-inset"
)

var _ fyne.Theme = ChartTheme{}

type ChartTheme struct{}

func (m ChartTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameChartBackground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	case ColorNameChartBorder:
		return color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	case ColorNameSnapshot:
		return color.White
	case theme.ColorNameShadow: // modal overlay
		return color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m ChartTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m ChartTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m ChartTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameChartPadding:
		return 16
	case SizeNameChartRadius:
		return 10
	case SizeNameChartBorder:
		return 1
	case SizeNameOverlayInset:
		return 2
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 5
	default:
		return theme.DefaultTheme().Size(name)
	}
}
