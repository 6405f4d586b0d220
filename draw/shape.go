package draw

import (
	"image"
	"image/color"

	"github.com/BeatGlow/fbdraw/pixel"
)

// Line draws a line between (x0,y0) and (x1,y1), both end points included.
func Line(dst Image, x0, y0, x1, y1 int, c color.Color) {
	bresenham(newPlotter(dst, c), x0, y0, x1, y1)
}

// LinePt draws a line between two points.
func LinePt(dst Image, a, b image.Point, c color.Color) {
	Line(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	Line(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	Line(dst, x, y, x, y+h-1, c)
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		tl = rect.Min
		br = rect.Max.Sub(image.Pt(1, 1))
		tr = image.Pt(br.X, tl.Y)
		bl = image.Pt(tl.X, br.Y)
	)
	LinePt(dst, tl, tr, c)
	LinePt(dst, bl, br, c)
	LinePt(dst, tl, bl, c)
	LinePt(dst, tr, br, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon().Intersect(dst.Bounds())
	if s, ok := dst.(*pixel.Surface); ok && rect.Eq(s.Bounds()) {
		s.Fill(c)
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Grid draws horizontal lines every spacing rows followed by vertical lines every
// spacing columns, covering the whole destination.
func Grid(dst Image, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	r := dst.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += spacing {
		Line(dst, r.Min.X, y, r.Max.X-1, y, c)
	}
	for x := r.Min.X; x < r.Max.X; x += spacing {
		Line(dst, x, r.Min.Y, x, r.Max.Y-1, c)
	}
}

func bresenham(p plotter, x0, y0, x1, y1 int) {
	var (
		dx, dy = abs(x1 - x0), abs(y1 - y0)
		sx, sy = 1, 1
		err    int
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	if dx > dy {
		err = dx / 2
	} else {
		err = -dy / 2
	}

	for {
		p.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
