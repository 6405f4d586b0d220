package main

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/BeatGlow/fbdraw/draw"
	"github.com/BeatGlow/fbdraw/pixel"
)

const (
	minSpacing  = 10
	maxSpacing  = 100
	spacingStep = 10
	hueStep     = 30
)

// Colors selected by key.
var (
	red   = pixel.RGB(31, 0, 0)
	green = pixel.RGB(0, 63, 0)
	blue  = pixel.RGB(0, 0, 31)
	white = pixel.RGB(31, 63, 31)
)

// demo is the state of the square grid.
type demo struct {
	spacing int
	color   pixel.Color
	hue     float64
}

func newDemo(spacing int) *demo {
	d := &demo{spacing: minSpacing, color: red}
	for d.spacing < spacing && d.spacing < maxSpacing {
		d.spacing += spacingStep
	}
	return d
}

// handle applies key to the demo state, it returns true if the demo should quit.
func (d *demo) handle(key byte) (quit bool) {
	switch key {
	case 'q':
		return true
	case '+':
		if d.spacing < maxSpacing {
			d.spacing += spacingStep
		}
	case '-':
		if d.spacing > minSpacing {
			d.spacing -= spacingStep
		}
	case 'r':
		d.color = red
	case 'g':
		d.color = green
	case 'b':
		d.color = blue
	case 'c':
		d.hue += hueStep
		if d.hue >= 360 {
			d.hue -= 360
		}
		d.color = pixel.Model.Convert(colorful.Hsv(d.hue, 1, 1)).(pixel.Color)
	}
	return false
}

func (d *demo) status() string {
	return fmt.Sprintf("spacing %d color %#04x", d.spacing, uint16(d.color))
}

// draw the grid and the status line onto dst.
func (d *demo) draw(dst draw.Image) {
	draw.Grid(dst, d.spacing, d.color)
	draw.Label(dst, image.Pt(2, 2), d.status(), white, pixel.Black)
}
