// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panel

import (
	"io"
	"os"
	"time"

	"github.com/gogpu/ggfx/effect"
	"github.com/gogpu/ggfx/glyph"
)

// DefaultFallbackText is drawn when no accelerated surface is available.
const DefaultFallbackText = "Current rendering API is not Skia"

// FallbackSize is the fallback text size in pixels.
const FallbackSize = 12

// Option configures a Panel.
type Option func(*options)

type options struct {
	diagnostics io.Writer
	clock       *effect.Clock
	now         func() time.Time
	text        string
	source      *glyph.FontSource
}

func defaultOptions() options {
	return options{
		diagnostics: os.Stdout,
		clock:       effect.DefaultClock,
		now:         time.Now,
		text:        DefaultFallbackText,
	}
}

// WithDiagnostics sets where the per-second frame count is written.
// A nil writer discards it.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.diagnostics = w
	}
}

// WithClock sets the animation clock. The default is effect.DefaultClock,
// shared by every panel in the process.
func WithClock(c *effect.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithNow sets the wall clock used by the frame counter.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithFallbackText replaces the text drawn without acceleration.
func WithFallbackText(s string) Option {
	return func(o *options) {
		o.text = s
	}
}

// WithFontSource sets the typeface of the fallback text. The default is
// glyph.DefaultSource.
func WithFontSource(src *glyph.FontSource) Option {
	return func(o *options) {
		o.source = src
	}
}
