// Package colors turns colour tokens such as "#4e73df" or "steelblue" into
// RGBA values and cycles them as chart palettes.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrEmptyPalette = errors.New("palette is empty")
)

// DefaultTokens is the palette used when a chart names no colours.
var DefaultTokens = []string{"#4e73df", "#1cc88a", "#36b9cc"}

var cache = ttlcache.New[string, color.RGBA](
	ttlcache.WithTTL[string, color.RGBA](10*time.Minute),
	ttlcache.WithCapacity[string, color.RGBA](512),
)

// Parse accepts #rgb, #rrggbb, #rrggbbaa, an SVG colour name or "transparent".
func Parse(token string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(token))
	if itm := cache.Get(key); itm != nil {
		return itm.Value(), nil
	}
	c, err := parse(key)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", err, token)
	}
	cache.Set(key, c, ttlcache.DefaultTTL)
	return c, nil
}

func parse(key string) (color.RGBA, error) {
	switch {
	case key == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(key, "#"):
		alpha := uint8(255)
		if len(key) == 9 {
			a, err := strconv.ParseUint(key[7:], 16, 8)
			if err != nil {
				return color.RGBA{}, ErrInvalidColor
			}
			alpha = uint8(a)
			key = key[:7]
		}
		if len(key) != 4 && len(key) != 7 {
			return color.RGBA{}, ErrInvalidColor
		}
		c, err := colorful.Hex(key)
		if err != nil {
			return color.RGBA{}, ErrInvalidColor
		}
		r, g, b := c.RGB255()
		return premultiply(color.NRGBA{R: r, G: g, B: b, A: alpha}), nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return color.RGBA{}, ErrInvalidColor
}

func premultiply(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// MustParse is Parse for tokens known to be valid at compile time.
func MustParse(token string) color.RGBA {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats an opaque colour as #rrggbb.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cf.Clamped().Hex()
}

type Palette []color.RGBA

// At cycles through the palette: At(i) == p[i mod len(p)].
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func ParsePalette(tokens []string) (Palette, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(tokens))
	for _, tok := range tokens {
		c, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}
