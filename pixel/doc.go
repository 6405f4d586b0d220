// Package pixel implements the 16-bit 5-6-5 color format and the flat pixel surfaces
// used for both the framebuffer and off-screen buffers.
//
// Colors and surfaces are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
