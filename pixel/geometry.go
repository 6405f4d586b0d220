package pixel

import (
	"fmt"
	"image"
)

// WordSize is the size of one pixel in bytes.
const WordSize = 2

// Geometry describes the layout of a pixel surface as reported by the display.
type Geometry struct {
	// Width in pixels.
	Width int

	// Height in pixels.
	Height int

	// Stride is the number of bytes per scanline.
	Stride int
}

// Size in bytes.
func (g Geometry) Size() int {
	return g.Height * g.Stride
}

// Len is the number of pixel words.
func (g Geometry) Len() int {
	return g.Size() / WordSize
}

// Valid reports if the geometry describes a usable surface.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0 && g.Stride > 0 && g.Len() >= g.Width*g.Height
}

// Bounds is the geometry bounding box.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d stride %d", g.Width, g.Height, g.Stride)
}
