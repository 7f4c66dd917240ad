package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestChartTheme(t *testing.T) {
	test.NewTempApp(t)
	th := ChartTheme{}
	assert.Equal(t, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}, th.Color(ColorNameChartBorder, theme.VariantLight))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 204}, th.Color(theme.ColorNameShadow, theme.VariantDark))
	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantLight), th.Color(theme.ColorNamePrimary, theme.VariantLight))

	assert.Equal(t, float32(10), th.Size(SizeNameChartRadius))
	assert.Equal(t, float32(16), th.Size(SizeNameChartPadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}
