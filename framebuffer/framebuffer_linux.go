package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/fbdraw/internal/ioctl"
	"github.com/BeatGlow/fbdraw/pixel"
)

// From <linux/fb.h>, these predate the direction/size encoding.
var (
	fbioGetVScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4600)
	fbioGetFScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4602)
)

// Device is a memory mapped Linux framebuffer device (fbdev).
type Device struct {
	f          *os.File
	name       string
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
	geometry   pixel.Geometry
	mem        []byte
	surface    *pixel.Surface
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
//
// The virtual resolution and line length reported by the device determine the mapped
// size. Failing screen info queries leave the geometry zeroed, which is reported as
// ErrGeometry.
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	fb := &Device{
		f:    f,
		name: name,
	}

	// Request virtual screen info.
	if err = ioctl.Get(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&fb.screenInfo)); err != nil {
		debugf("%s: %v", name, err)
	}
	if err = ioctl.Get(f.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&fb.info)); err != nil {
		debugf("%s: %v", name, err)
	}

	fb.geometry = pixel.Geometry{
		Width:  int(fb.screenInfo.XresVirtual),
		Height: int(fb.screenInfo.YresVirtual),
		Stride: int(fb.info.LineLength),
	}
	if !fb.geometry.Valid() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s reports %s", ErrGeometry, name, fb.geometry)
	}
	if bpp := fb.screenInfo.BitsPerPixel; bpp != 16 {
		debugf("%s: device uses %d bits per pixel, pixels are written as 16-bit words", name, bpp)
	}

	// Map pixel buffer.
	if fb.mem, err = unix.Mmap(int(f.Fd()), 0, fb.geometry.Size(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: mmap %s: %w", ErrUnavailable, name, err)
	}
	fb.surface = pixel.FromBytes(fb.geometry, fb.mem)

	debugf("%s: %q mapped %d bytes, %s", name, fb.ID(), len(fb.mem), fb.geometry)
	return fb, nil
}

// ID is the identification string reported by the driver.
func (fb *Device) ID() string {
	id := fb.info.ID[:]
	for i, b := range id {
		if b == 0 {
			return string(id[:i])
		}
	}
	return string(id)
}

// Geometry as reported by the device when it was opened.
func (fb *Device) Geometry() pixel.Geometry {
	return fb.geometry
}

// Surface is the visible, memory mapped display surface.
func (fb *Device) Surface() *pixel.Surface {
	return fb.surface
}

// Close unmaps the display memory and closes the device.
func (fb *Device) Close() error {
	if fb.mem == nil {
		return ErrClosed
	}
	err := unix.Munmap(fb.mem)
	fb.mem = nil
	fb.surface = nil
	if cerr := fb.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (fb *Device) String() string {
	return fmt.Sprintf("framebuffer %s (%s)", fb.name, fb.geometry)
}

// Halt clears the display.
func (fb *Device) Halt() error {
	if fb.surface == nil {
		return ErrClosed
	}
	fb.surface.Clear()
	return nil
}

func (fb *Device) ColorModel() color.Model {
	return pixel.Model
}

func (fb *Device) Bounds() image.Rectangle {
	return fb.geometry.Bounds()
}

// Draw src onto the display, replacing the pixels in dstRect.
func (fb *Device) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	if fb.surface == nil {
		return ErrClosed
	}
	draw.Draw(fb.surface, dstRect, src, sp, draw.Src)
	return nil
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// Interface checks.
var _ display.Drawer = (*Device)(nil)
