// Package draw implements the integer rasterizer for pixel surfaces.
//
// All functions accept any [Image]; a [*pixel.Surface] destination is written to directly
// with packed [pixel.Color] values. Coordinates that fall outside of the destination are
// silently dropped.
package draw

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/fbdraw/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Pixel sets the pixel at (x, y).
func Pixel(dst Image, x, y int, c color.Color) {
	newPlotter(dst, c).plot(x, y)
}

// plotter writes a single color, avoiding color model conversion for every pixel.
type plotter struct {
	dst     Image
	surface *pixel.Surface
	c       color.Color
	v       pixel.Color
}

func newPlotter(dst Image, c color.Color) plotter {
	p := plotter{dst: dst, c: c}
	if s, ok := dst.(*pixel.Surface); ok {
		p.surface = s
		p.v = pixel.Model.Convert(c).(pixel.Color)
	}
	return p
}

func (p plotter) plot(x, y int) {
	if p.surface != nil {
		p.surface.SetColor(x, y, p.v)
		return
	}
	if (image.Point{X: x, Y: y}).In(p.dst.Bounds()) {
		p.dst.Set(x, y, p.c)
	}
}
