package chart

import (
	"fmt"
	"image/color"

	"github.com/roffe/litechart/pkg/colors"
)

const (
	DefaultType        = "line"
	DefaultPadding     = 40.0
	DefaultAxisColor   = "#333"
	DefaultGridColor   = "#ccc"
	DefaultLabelColor  = "#000"
	DefaultPointRadius = 5.0
	DefaultBarGap      = 10.0
	DefaultLineWidth   = 2.0
	DefaultAxisWidth   = 2.0
	DefaultGridWidth   = 1.0
)

var DefaultGridDash = []float64{5, 5}

// Config is what a chart is built from. Zero values select the defaults
// above, so a Config only needs Data. A layout constant cannot be set to
// zero: Padding, BarGap, PointRadius and the widths fall back to their
// defaults when 0, in files as well as in code. Use a small positive value
// such as 0.01 for an effectively zero setting.
type Config struct {
	Data   []float64 `json:"data" yaml:"data" toml:"data"`
	Type   string    `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Colors []string  `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	// Scheme generates one colour per data point from a colour blind safe
	// scale when Colors is empty.
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty" toml:"scheme,omitempty"`

	Padding     float64   `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	AxisColor   string    `json:"axisColor,omitempty" yaml:"axisColor,omitempty" toml:"axisColor,omitempty"`
	GridColor   string    `json:"gridColor,omitempty" yaml:"gridColor,omitempty" toml:"gridColor,omitempty"`
	LabelColor  string    `json:"labelColor,omitempty" yaml:"labelColor,omitempty" toml:"labelColor,omitempty"`
	PointRadius float64   `json:"pointRadius,omitempty" yaml:"pointRadius,omitempty" toml:"pointRadius,omitempty"`
	BarGap      float64   `json:"barGap,omitempty" yaml:"barGap,omitempty" toml:"barGap,omitempty"`
	LineWidth   float64   `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty" toml:"lineWidth,omitempty"`
	AxisWidth   float64   `json:"axisWidth,omitempty" yaml:"axisWidth,omitempty" toml:"axisWidth,omitempty"`
	GridWidth   float64   `json:"gridWidth,omitempty" yaml:"gridWidth,omitempty" toml:"gridWidth,omitempty"`
	GridDash    []float64 `json:"gridDash,omitempty" yaml:"gridDash,omitempty" toml:"gridDash,omitempty"`
}

// WithDefaults returns a copy of c with every unset field filled in.
func (c Config) WithDefaults() Config {
	c.Data = append([]float64(nil), c.Data...)
	if c.Type == "" {
		c.Type = DefaultType
	}
	if len(c.Colors) == 0 && c.Scheme == "" {
		c.Colors = colors.DefaultTokens
	}
	c.Colors = append([]string(nil), c.Colors...)
	c.Padding = orDefault(c.Padding, DefaultPadding)
	c.AxisColor = orDefaultString(c.AxisColor, DefaultAxisColor)
	c.GridColor = orDefaultString(c.GridColor, DefaultGridColor)
	c.LabelColor = orDefaultString(c.LabelColor, DefaultLabelColor)
	c.PointRadius = orDefault(c.PointRadius, DefaultPointRadius)
	c.BarGap = orDefault(c.BarGap, DefaultBarGap)
	c.LineWidth = orDefault(c.LineWidth, DefaultLineWidth)
	c.AxisWidth = orDefault(c.AxisWidth, DefaultAxisWidth)
	c.GridWidth = orDefault(c.GridWidth, DefaultGridWidth)
	if len(c.GridDash) == 0 {
		c.GridDash = DefaultGridDash
	}
	c.GridDash = append([]float64(nil), c.GridDash...)
	return c
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// style holds the parsed colours of a Config.
type style struct {
	palette colors.Palette
	axis    color.RGBA
	grid    color.RGBA
	label   color.RGBA
}

func (c Config) style() (style, error) {
	var s style
	var err error
	switch {
	case len(c.Colors) > 0:
		if s.palette, err = colors.ParsePalette(c.Colors); err != nil {
			return s, fmt.Errorf("%w: palette: %w", ErrInvalidInput, err)
		}
	default:
		mode, ok := colors.StringToColorBlindMode(c.Scheme)
		if !ok {
			return s, fmt.Errorf("%w: unknown colour scheme %q", ErrInvalidInput, c.Scheme)
		}
		s.palette = colors.SchemePalette(mode, max(len(c.Data), 1))
	}
	for _, f := range []struct {
		name  string
		token string
		dst   *color.RGBA
	}{
		{"axis colour", c.AxisColor, &s.axis},
		{"grid colour", c.GridColor, &s.grid},
		{"label colour", c.LabelColor, &s.label},
	} {
		if *f.dst, err = colors.Parse(f.token); err != nil {
			return s, fmt.Errorf("%w: %s: %w", ErrInvalidInput, f.name, err)
		}
	}
	return s, nil
}
