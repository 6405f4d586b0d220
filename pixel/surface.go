package pixel

import (
	"image"
	"image/color"
	"unsafe"
)

// Surface is a flat pixel buffer, indexed as x + y*Width.
type Surface struct {
	// Geometry of the surface.
	Geometry Geometry

	// Pix are the surface pixels.
	Pix []Color
}

// New allocates a zeroed surface.
func New(g Geometry) *Surface {
	return &Surface{
		Geometry: g,
		Pix:      make([]Color, g.Len()),
	}
}

// FromBytes returns a surface backed by b, typically memory mapped device memory.
//
// Pixels are accessed in native byte order. The caller must keep b alive for the
// lifetime of the surface.
func FromBytes(g Geometry, b []byte) *Surface {
	s := &Surface{Geometry: g}
	if n := len(b) / WordSize; n > 0 {
		s.Pix = unsafe.Slice((*Color)(unsafe.Pointer(&b[0])), n)
	}
	return s
}

// In reports if (x, y) falls within the surface.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && x < s.Geometry.Width && y >= 0 && y < s.Geometry.Height
}

// PixOffset is the index of (x, y) in Pix.
func (s *Surface) PixOffset(x, y int) int {
	return x + y*s.Geometry.Width
}

func (s *Surface) Bounds() image.Rectangle {
	return s.Geometry.Bounds()
}

func (s *Surface) ColorModel() color.Model {
	return Model
}

func (s *Surface) At(x, y int) color.Color {
	if !s.In(x, y) {
		return color.Transparent
	}
	return s.Pix[s.PixOffset(x, y)]
}

// ColorAt returns the pixel at (x, y), or Black if out of bounds.
func (s *Surface) ColorAt(x, y int) Color {
	if !s.In(x, y) {
		return Black
	}
	return s.Pix[s.PixOffset(x, y)]
}

func (s *Surface) Set(x, y int, c color.Color) {
	if !s.In(x, y) {
		return
	}
	s.Pix[s.PixOffset(x, y)] = model(c).(Color)
}

// SetColor writes c at (x, y). Coordinates outside of the surface are ignored.
func (s *Surface) SetColor(x, y int, c Color) {
	if !s.In(x, y) {
		return
	}
	s.Pix[s.PixOffset(x, y)] = c
}

// Clear the surface.
func (s *Surface) Clear() {
	clear(s.Pix)
}

// Fill the surface with a single color.
func (s *Surface) Fill(c color.Color) {
	value := model(c).(Color)
	for i := range s.Pix {
		s.Pix[i] = value
	}
}
