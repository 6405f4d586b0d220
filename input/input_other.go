//go:build !linux

package input

import "os"

// Terminal is a controlling terminal. It can not be opened on this platform.
type Terminal struct{}

// Open always fails with ErrNotSupported.
func Open(_ *os.File) (*Terminal, error) {
	return nil, ErrNotSupported
}

func (*Terminal) Close() error { return ErrNotSupported }

func (*Terminal) PollKey() byte { return NoKey }
func (*Terminal) Raw() bool { return false }
