// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbhost

import (
	"time"

	"github.com/gogpu/gg"
)

// Config describes the framebuffer output.
type Config struct {
	// Device is the framebuffer device path.
	Device string

	// Width and Height size the logical canvas. Zero uses the device size.
	Width  int
	Height int

	// Background is painted under the visuals every frame.
	Background gg.RGBA

	// FPS caps the redraw rate.
	FPS int

	// Fallback disables the accelerated surface lease.
	Fallback bool

	// Console switches the active virtual terminal to graphics mode while
	// the renderer is open, hiding the text cursor.
	Console bool
}

// DefaultConfig renders to /dev/fb0 at device size and 30 frames per second.
func DefaultConfig() Config {
	return Config{
		Device:     "/dev/fb0",
		Background: gg.White,
		FPS:        30,
	}
}

func (c Config) interval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
