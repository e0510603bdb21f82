// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"github.com/gogpu/gg"
)

// Config describes the window.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial client size in pixels.
	Width  int
	Height int

	// Background is painted under the visuals every frame.
	Background gg.RGBA

	// Fallback disables the accelerated surface lease so visuals take their
	// non-accelerated path.
	Fallback bool
}

// DefaultConfig returns an 800x600 window with a white background.
func DefaultConfig() Config {
	return Config{
		Title:      "ggfx",
		Width:      800,
		Height:     600,
		Background: gg.White,
	}
}

// WithTitle returns a copy of c with the title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the initial size set.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithBackground returns a copy of c with the background color set.
func (c Config) WithBackground(bg gg.RGBA) Config {
	c.Background = bg
	return c
}

// WithFallback returns a copy of c with the accelerated lease disabled
// when on is true.
func (c Config) WithFallback(on bool) Config {
	c.Fallback = on
	return c
}
