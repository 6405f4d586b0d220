// Package framebuffer provides access to the operating system's native framebuffer.
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, which maps the display memory into the process.
// Pixels are exposed as a [pixel.Surface] in the 16-bit 5-6-5 format.
package framebuffer

import (
	"errors"
	"log"
	"os"
)

// DefaultDevice is the first framebuffer device.
const DefaultDevice = "/dev/fb0"

// Errors
var (
	ErrUnavailable  = errors.New("framebuffer: device unavailable")
	ErrGeometry     = errors.New("framebuffer: invalid display geometry")
	ErrClosed       = errors.New("framebuffer: device closed")
	ErrNotSupported = errors.New("framebuffer: not supported")
)

var debug bool

func init() {
	debug = os.Getenv("FBDRAW_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf("framebuffer: "+format, args...)
	}
}
