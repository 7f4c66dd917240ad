package paint

import (
	"image/color"
	"math"
)

type pixelSetter interface {
	SetRGBA(x int, y int, c color.RGBA)
}

// bresenhamThick draws a line as thickness parallel Bresenham lines offset
// along the perpendicular.
func bresenhamThick(p pixelSetter, x1, y1, x2, y2 int, thickness int, col color.RGBA) {
	if thickness <= 1 {
		bresenham(p, x1, y1, x2, y2, col)
		return
	}

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		fillCircle(p, float64(x1), float64(y1), float64(thickness)/2, col)
		return
	}

	perpX := -dy / length
	perpY := dx / length

	for i := -(thickness - 1) / 2; i <= thickness/2; i++ {
		offsetX := int(math.Round(float64(i) * perpX))
		offsetY := int(math.Round(float64(i) * perpY))
		bresenham(p,
			x1+offsetX, y1+offsetY,
			x2+offsetX, y2+offsetY,
			col)
	}
}

func bresenham(p pixelSetter, x1, y1, x2, y2 int, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	absDx, absDy := abs(dx), abs(dy)

	// Is line a point?
	if absDx == 0 && absDy == 0 {
		p.SetRGBA(x1, y1, col)
		return
	}

	xInc, yInc := sign(dx), sign(dy)

	var d, dInc1, dInc2 int
	isXDominant := absDx > absDy
	if isXDominant {
		d, dInc1, dInc2 = 2*absDy-absDx, 2*absDy, 2*(absDy-absDx)
	} else {
		d, dInc1, dInc2 = 2*absDx-absDy, 2*absDx, 2*(absDx-absDy)
	}

	for {
		p.SetRGBA(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		if isXDominant {
			if d < 0 {
				d += dInc1
			} else {
				y1 += yInc
				d += dInc2
			}
			x1 += xInc
		} else {
			if d < 0 {
				d += dInc1
			} else {
				x1 += xInc
				d += dInc2
			}
			y1 += yInc
		}
	}
}

func fillCircle(p pixelSetter, centerX, centerY, radius float64, col color.RGBA) {
	cx, cy := int(math.Round(centerX)), int(math.Round(centerY))
	r := int(math.Ceil(radius))
	rr := radius * radius
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if float64(x*x+y*y) <= rr {
				p.SetRGBA(cx+x, cy+y, col)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return 1
	}
	return 0
}
