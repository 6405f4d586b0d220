// Package input reads single keystrokes from the controlling terminal.
//
// Opening a [Terminal] switches it to non-canonical mode with echo disabled, so every key
// press is delivered immediately. The previous mode is restored by [Terminal.Close]. If
// the process dies before that, the terminal stays in this mode until reset (for example
// with "stty sane").
package input

import (
	"errors"
	"log"
	"os"
	"time"
)

// NoKey is returned by PollKey when no key was pressed.
const NoKey byte = '\n'

// PollTimeout is the maximum time PollKey waits for a key press.
const PollTimeout = time.Second

// Errors
var (
	ErrClosed       = errors.New("input: terminal closed")
	ErrNotSupported = errors.New("input: not supported")
)

var debug bool

func init() {
	debug = os.Getenv("FBDRAW_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf("input: "+format, args...)
	}
}
