// Package paint is the 2D drawing context charts render through.
//
// Every primitive takes its style as an argument. Nothing about stroke colour,
// width or dash pattern is remembered between calls, so drawing routines can
// be reordered without leaking state into each other.
package paint

import (
	"image/color"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect follows fillRect semantics: a negative width or height extends the
// rectangle left or up from its origin.
type Rect struct {
	X, Y, W, H float64
}

// Canon returns the rectangle with a non-negative width and height.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

type Stroke struct {
	Color color.RGBA `json:"color"`
	Width float64    `json:"width"`
	// Dash alternates on and off lengths. Empty means solid.
	Dash []float64 `json:"dash,omitempty"`
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

type Painter interface {
	Size() (width, height int)
	// Clear resets every pixel to transparent.
	Clear()
	StrokePolyline(pts []Point, s Stroke)
	FillRect(r Rect, c color.RGBA)
	FillCircle(center Point, radius float64, c color.RGBA)
	// FillWedge fills the circle sector swept clockwise (y grows down) from
	// start to end, angles in radians with 0 pointing right.
	FillWedge(center Point, radius, start, end float64, c color.RGBA)
	// Text draws s with its baseline at at.Y, anchored horizontally by align.
	Text(s string, at Point, align Align, c color.RGBA)
}
