//go:build !linux

package framebuffer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/fbdraw/pixel"
)

// Device is a framebuffer device. It can not be opened on this platform.
type Device struct{}

// Open always fails with ErrNotSupported.
func Open(name string) (*Device, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotSupported, name)
}

func (*Device) Geometry() pixel.Geometry { return pixel.Geometry{} }
func (*Device) Surface() *pixel.Surface { return nil }
func (*Device) Close() error { return ErrNotSupported }
func (*Device) String() string { return "framebuffer" }
func (*Device) Halt() error { return ErrNotSupported }
func (*Device) ColorModel() color.Model { return pixel.Model }
func (*Device) Bounds() image.Rectangle { return image.Rectangle{} }
func (*Device) Draw(image.Rectangle, image.Image, image.Point) error { return ErrNotSupported }
