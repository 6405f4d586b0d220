//go:build unix

// Package ioctl wraps the ioctl system call for device drivers in this module.
package ioctl

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Error is returned by a failed ioctl call.
type Error struct {
	Command Command
	Err     unix.Errno
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s failed: %v", err.Command, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Get executes command, which fills the value at ptr.
func Get(fd uintptr, command Command, ptr unsafe.Pointer) error {
	return Call(fd, uintptr(command), uintptr(ptr))
}

// Call does a plain ioctl system call.
func Call(fd, command, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, command, arg)
	if errno != 0 {
		return &Error{Command: Command(command), Err: errno}
	}
	return nil
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size)<<16 | Command(cmd)
}
