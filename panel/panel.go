// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panel

import (
	"fmt"

	"github.com/gogpu/ggfx/effect"
	"github.com/gogpu/ggfx/glyph"
	"github.com/gogpu/ggfx/ui"
)

// Panel is a self-animating visual. It clips its drawing to its bounds.
type Panel struct {
	ui.Element

	fallback *glyph.Run
	clock    *effect.Clock
	counter  *FrameCounter
}

var _ ui.Visual = (*Panel)(nil)

// New creates a panel. The fallback text is shaped once here; New fails only
// if the typeface cannot be loaded or the text cannot be shaped.
func New(opts ...Option) (*Panel, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.source
	if src == nil {
		var err error
		if src, err = glyph.DefaultSource(); err != nil {
			return nil, fmt.Errorf("panel: load typeface: %w", err)
		}
	}
	run, err := glyph.NewRun(src, FallbackSize, o.text)
	if err != nil {
		return nil, fmt.Errorf("panel: shape fallback text: %w", err)
	}

	p := &Panel{
		fallback: run,
		clock:    o.clock,
		counter:  NewFrameCounter(o.now, o.diagnostics),
	}
	p.ClipToBounds = true
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Panel {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Fallback returns the text run drawn without acceleration.
func (p *Panel) Fallback() *glyph.Run { return p.fallback }

// Counter returns the panel's frame counter.
func (p *Panel) Counter() *FrameCounter { return p.counter }

// Render counts the frame, records one draw operation covering the panel
// and queues the next invalidation at background priority.
func (p *Panel) Render(dc *ui.DrawingContext) {
	p.counter.Tick()

	b := p.Bounds()
	dc.Custom(&drawOp{
		bounds: ui.Rect{W: b.W, H: b.H},
		run:    p.fallback,
		clock:  p.clock,
	})

	// A detached panel or a closed dispatcher drops the request.
	p.Post(p.InvalidateVisual, ui.PriorityBackground)
}
