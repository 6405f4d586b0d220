package draw

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the bitmap font used by Text. Its glyph masks are fully opaque or fully
// transparent, so text is never blended.
var Face font.Face = basicfont.Face7x13

// Text draws s with its top left corner at pt.
func Text(dst Image, pt image.Point, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(pt.X, pt.Y+Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextBounds returns the area covered by Text when drawing s at pt.
func TextBounds(pt image.Point, s string) image.Rectangle {
	m := Face.Metrics()
	w := font.MeasureString(Face, s).Ceil()
	return image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+m.Height.Ceil())
}

// Label draws s on top of a filled background box.
func Label(dst Image, pt image.Point, s string, fg, bg color.Color) {
	Box(dst, TextBounds(pt, s), bg)
	Text(dst, pt, s, fg)
}
