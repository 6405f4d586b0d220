package pixel

import "image/color"

// Model for the Color type.
var Model color.Model = color.ModelFunc(model)

// Black is the zero pixel value.
const Black Color = 0

// Color represents a 16-bit 5-6-5 RGB color.
type Color uint16

// RGB packs the channels as red<<11 | green<<5 | blue.
//
// Channels are not clamped, values wider than their field (5, 6 and 5 bits) bleed into
// the neighbouring channel.
func RGB(r, g, b int) Color {
	return Color(r<<11 | g<<5 | b)
}

// R is the 5-bit red channel.
func (c Color) R() uint8 { return uint8(c>>11) & 0x1f }

// G is the 6-bit green channel.
func (c Color) G() uint8 { return uint8(c>>5) & 0x3f }

// B is the 5-bit blue channel.
func (c Color) B() uint8 { return uint8(c) & 0x1f }

// RGBA expands the channels to 16 bits by replicating their high bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := uint32(c&0xF800) >> 8
	grn := uint32(c&0x07E0) >> 3
	blu := uint32(c&0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return convert(c)
}

func convert(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800)
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return Color(r | g | b)
}
