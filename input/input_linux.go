package input

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a controlling terminal in non-canonical, no echo mode.
type Terminal struct {
	f     *os.File
	fd    int
	open  bool
	saved *term.State
}

// Open captures the current mode of the terminal f and disables canonical mode and echo.
//
// If f is not a terminal, or its mode can not be changed, the mode is left alone and
// keys are still polled from f.
func Open(f *os.File) (*Terminal, error) {
	t := &Terminal{
		f:    f,
		fd:   int(f.Fd()),
		open: true,
	}
	if !term.IsTerminal(t.fd) {
		debugf("%s is not a terminal, mode unchanged", f.Name())
		return t, nil
	}

	saved, err := term.GetState(t.fd)
	if err != nil {
		debugf("%s: get state: %v", f.Name(), err)
		return t, nil
	}

	termios, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		debugf("%s: get mode: %v", f.Name(), err)
		return t, nil
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err = unix.IoctlSetTermios(t.fd, unix.TCSETS, termios); err != nil {
		debugf("%s: set mode: %v", f.Name(), err)
		return t, nil
	}

	t.saved = saved
	return t, nil
}

// Raw reports if Open changed the terminal mode.
func (t *Terminal) Raw() bool {
	return t.saved != nil
}

// Close restores the terminal mode captured by Open.
func (t *Terminal) Close() error {
	if !t.open {
		return ErrClosed
	}
	t.open = false
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	return err
}

// PollKey waits up to PollTimeout for a key press and returns it. NoKey is returned if
// the wait times out, is interrupted or the read fails.
func (t *Terminal) PollKey() byte {
	return pollKey(t.fd, int(PollTimeout.Milliseconds()))
}

func pollKey(fd, timeout int) byte {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, timeout)
	if err != nil {
		if err != unix.EINTR {
			debugf("poll: %v", err)
		}
		return NoKey
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return NoKey
	}

	var buf [1]byte
	if rn, err := unix.Read(fd, buf[:]); err != nil || rn != 1 {
		if err != nil {
			debugf("read: %v", err)
		}
		return NoKey
	}
	return buf[0]
}
