package fbdraw

import (
	"github.com/BeatGlow/fbdraw/draw"
	"github.com/BeatGlow/fbdraw/pixel"
)

// DrawPixel sets the pixel at (x, y) of dst. Out of bounds coordinates are ignored.
func (s *Session) DrawPixel(dst *pixel.Surface, x, y int, c pixel.Color) {
	draw.Pixel(dst, x, y, c)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) onto dst.
func (s *Session) DrawLine(dst *pixel.Surface, x0, y0, x1, y1 int, c pixel.Color) {
	draw.Line(dst, x0, y0, x1, y1, c)
}

// Blit copies all pixels of src to the display.
func (s *Session) Blit(src *pixel.Surface) {
	copy(s.screen.Pix, src.Pix)
}

// Clear sets every pixel of both the display and buf to black, so the next frame
// starts from a blank state on both.
func (s *Session) Clear(buf *pixel.Surface) {
	s.screen.Clear()
	buf.Clear()
}
