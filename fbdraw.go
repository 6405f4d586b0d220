// Package fbdraw is a minimal direct rendering graphics layer for the Linux framebuffer.
//
// A [Session] maps the display memory and puts the controlling terminal in single
// keystroke mode. Frames are composed on an off-screen [pixel.Surface] with the
// [draw] primitives, then pushed to the display with [Session.Blit]:
//
//	s, err := fbdraw.Init(nil)
//	if err != nil {
//		return err
//	}
//	defer s.Shutdown()
//
//	buf := s.NewOffscreen()
//	s.DrawLine(buf, 0, 0, 100, 50, pixel.RGB(31, 0, 0))
//	s.Blit(buf)
//
// Only one session can be live per process. A session is not safe for concurrent use.
package fbdraw

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/fbdraw/framebuffer"
	"github.com/BeatGlow/fbdraw/input"
	"github.com/BeatGlow/fbdraw/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("FBDRAW_DEBUG") != ""
}

// Errors
var (
	ErrActive = errors.New("fbdraw: a session is already active")
	ErrClosed = errors.New("fbdraw: session is shut down")
)

// active guards the single live session.
var active atomic.Bool

// Config is the session configuration.
type Config struct {
	// Device is the framebuffer device path, defaults to /dev/fb0.
	Device string

	// Input is the controlling terminal, defaults to os.Stdin.
	Input *os.File
}

type keyPoller interface {
	io.Closer
	PollKey() byte
}

type device interface {
	display.Drawer
	io.Closer
}

// Session owns the mapped display surface and the terminal mode.
type Session struct {
	screen *pixel.Surface
	device device
	input  keyPoller
	closed bool
}

// Init opens the framebuffer device, maps its memory and switches the terminal to
// non-canonical, no echo mode. A nil config uses the defaults.
func Init(config *Config) (*Session, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrActive
	}

	s, err := open(config)
	if err != nil {
		active.Store(false)
		return nil, err
	}
	return s, nil
}

func open(config *Config) (*Session, error) {
	var c Config
	if config != nil {
		c = *config
	}
	if c.Device == "" {
		c.Device = framebuffer.DefaultDevice
	}
	if c.Input == nil {
		c.Input = os.Stdin
	}

	fb, err := framebuffer.Open(c.Device)
	if err != nil {
		return nil, err
	}

	term, err := input.Open(c.Input)
	if err != nil {
		_ = fb.Close()
		return nil, fmt.Errorf("fbdraw: terminal: %w", err)
	}

	if debug {
		log.Printf("fbdraw: session on %s, terminal mode changed: %t", fb, term.Raw())
	}
	return &Session{
		screen: fb.Surface(),
		device: fb,
		input:  term,
	}, nil
}

// Shutdown clears the display, restores the terminal mode and releases the device.
//
// A failure to restore the terminal is not reported; the terminal may then remain
// in no echo mode after the process exits.
func (s *Session) Shutdown() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	defer active.Store(false)

	// The mapping is released below, drop the view onto it.
	s.screen = &pixel.Surface{}

	if err := s.device.Halt(); err != nil && debug {
		log.Printf("fbdraw: clear %s: %v", s.device, err)
	}
	if s.input != nil {
		if err := s.input.Close(); err != nil && debug {
			log.Printf("fbdraw: restore terminal: %v", err)
		}
	}
	return s.device.Close()
}

// Geometry of the display.
func (s *Session) Geometry() pixel.Geometry {
	return s.screen.Geometry
}

// Screen is the visible display surface. It is empty after Shutdown.
func (s *Session) Screen() *pixel.Surface {
	return s.screen
}

// NewOffscreen allocates a zeroed off-screen surface matching the display geometry.
func (s *Session) NewOffscreen() *pixel.Surface {
	return pixel.New(s.screen.Geometry)
}

// PollKey waits up to one second for a key press. It returns input.NoKey if no key
// was pressed.
func (s *Session) PollKey() byte {
	if s.input == nil {
		return input.NoKey
	}
	return s.input.PollKey()
}
