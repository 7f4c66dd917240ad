package colors

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "long hex", token: "#4e73df", want: color.RGBA{0x4e, 0x73, 0xdf, 0xff}},
		{name: "short hex", token: "#333", want: color.RGBA{0x33, 0x33, 0x33, 0xff}},
		{name: "upper case and spaces", token: "  #CCC ", want: color.RGBA{0xcc, 0xcc, 0xcc, 0xff}},
		{name: "with alpha", token: "#ffffff00", want: color.RGBA{}},
		{name: "name", token: "SteelBlue", want: color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{name: "transparent", token: "transparent", want: color.RGBA{}},
		{name: "unknown name", token: "notacolor", wantErr: true},
		{name: "bad hex", token: "#12", wantErr: true},
		{name: "garbage hex", token: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCached(t *testing.T) {
	first, err := Parse("#1cc88a")
	require.NoError(t, err)
	second, err := Parse("#1CC88A")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotNil(t, cache.Get("#1cc88a"))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#4e73df", Hex(MustParse("#4e73df")))
	assert.Equal(t, "transparent", Hex(color.RGBA{}))
}

func TestPaletteAt(t *testing.T) {
	for n := 1; n <= 5; n++ {
		p := make(Palette, n)
		for i := range p {
			p[i] = color.RGBA{R: uint8(i), A: 255}
		}
		for i := 0; i < 3*n; i++ {
			assert.Equal(t, p[i%n], p.At(i), "len %d index %d", n, i)
		}
	}
	assert.Equal(t, color.RGBA{}, Palette{}.At(3))
	assert.Equal(t, Palette{{R: 1}, {R: 2}}.At(-1), color.RGBA{R: 2})
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(DefaultTokens)
	require.NoError(t, err)
	assert.Len(t, p, 3)

	_, err = ParsePalette(nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = ParsePalette([]string{"#fff", "nope"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestSchemePalette(t *testing.T) {
	p := SchemePalette(ModeNormal, 3)
	require.Len(t, p, 3)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, p[0])
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, p[1])
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, p[2])

	assert.Len(t, SchemePalette(ModeUniversal, 1), 1)
	assert.Nil(t, SchemePalette(ModeUniversal, 0))
}

func TestStringToColorBlindMode(t *testing.T) {
	for i, name := range SupportedColorBlindModes {
		mode, ok := StringToColorBlindMode(name)
		assert.True(t, ok)
		assert.Equal(t, ColorBlindMode(i), mode)
		assert.Equal(t, name, mode.String())
	}
	mode, ok := StringToColorBlindMode("protanopia")
	assert.True(t, ok)
	assert.Equal(t, ModeProtanopia, mode)

	mode, ok = StringToColorBlindMode("sepia")
	assert.False(t, ok)
	assert.Equal(t, ModeNormal, mode)
	assert.Equal(t, Unknown, ColorBlindMode(42).String())
}
