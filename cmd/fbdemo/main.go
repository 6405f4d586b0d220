package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BeatGlow/fbdraw"
	"github.com/BeatGlow/fbdraw/framebuffer"
)

func main() {
	deviceFlag := flag.String("device", framebuffer.DefaultDevice, "Framebuffer device")
	spacingFlag := flag.Int("spacing", minSpacing, "Initial grid spacing (10-100)")
	delayFlag := flag.Duration("delay", 200*time.Millisecond, "Delay between frames")
	flag.Parse()

	s, err := fbdraw.Init(&fbdraw.Config{
		Device: *deviceFlag,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using %s\n", s.Geometry())
	fmt.Println("keys: + - spacing, r g b c color, q quit")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var (
		d   = newDemo(*spacingFlag)
		buf = s.NewOffscreen()
	)
	d.draw(buf)
	s.Blit(buf)

loop:
	for {
		select {
		case <-sig:
			break loop
		default:
		}

		if d.handle(s.PollKey()) {
			break loop
		}

		s.Clear(buf)
		d.draw(buf)
		s.Blit(buf)

		time.Sleep(*delayFlag)
	}

	s.Clear(buf)
	if err = s.Shutdown(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
