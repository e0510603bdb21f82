// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggfx/glyph"
)

// Lease errors.
var (
	// ErrLeaseHeld is returned when a lease is requested while another lease
	// on the same surface is still open.
	ErrLeaseHeld = errors.New("ui: accelerated surface already leased")

	// ErrSurfaceClosed is returned when leasing from a closed context.
	ErrSurfaceClosed = errors.New("ui: surface is closed")
)

// ImmediateContext is the paint-time surface a DrawOperation renders onto.
//
// Every context can draw glyph runs. Contexts backed by an accelerated gg
// surface additionally expose a LeaseFeature; its absence is the signal to
// take the non-accelerated path.
type ImmediateContext interface {
	// Size returns the surface size in pixels.
	Size() Size

	// Push saves the transform and clip state; Pop restores it.
	Push()
	Pop()

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// ClipRect intersects the clip with r (current coordinates).
	ClipRect(r Rect)

	// LeaseFeature returns the accelerated-surface lease feature, if the
	// surface has one.
	LeaseFeature() (LeaseFeature, bool)

	// DrawGlyphRun draws run in color c at the run's baseline origin.
	DrawGlyphRun(c gg.RGBA, run *glyph.Run)
}

// LeaseFeature hands out scoped, exclusive access to an accelerated gg
// drawing context.
type LeaseFeature interface {
	Lease() (Lease, error)
}

// Lease is an exclusive handle to an accelerated gg.Context. The handle must
// be closed once painting is done; Close is idempotent.
type Lease interface {
	Context() *gg.Context
	Close() error
}

// ImmediateOption configures an immediate context.
type ImmediateOption func(*immediateOptions)

type immediateOptions struct {
	accelerated bool
}

func defaultImmediateOptions() immediateOptions {
	return immediateOptions{accelerated: gg.Accelerator() != nil}
}

// WithAcceleration overrides whether the context offers a LeaseFeature.
// By default the feature is offered when a gg GPU accelerator is registered.
func WithAcceleration(on bool) ImmediateOption {
	return func(o *immediateOptions) {
		o.accelerated = on
	}
}

// GGContext is an ImmediateContext that paints into a gg.Context.
//
// GGContext is NOT safe for concurrent use.
type GGContext struct {
	dc      *gg.Context
	opts    immediateOptions
	leased  bool
	closed  bool
	feature ggLeaseFeature
}

var _ ImmediateContext = (*GGContext)(nil)

// NewImmediateContext wraps dc as an ImmediateContext.
func NewImmediateContext(dc *gg.Context, opts ...ImmediateOption) *GGContext {
	o := defaultImmediateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ic := &GGContext{dc: dc, opts: o}
	ic.feature = ggLeaseFeature{ic: ic}
	return ic
}

// Accelerated reports whether the context offers a LeaseFeature.
func (ic *GGContext) Accelerated() bool { return ic.opts.accelerated }

// Size implements ImmediateContext.
func (ic *GGContext) Size() Size {
	return Size{W: float64(ic.dc.Width()), H: float64(ic.dc.Height())}
}

// Push implements ImmediateContext.
func (ic *GGContext) Push() { ic.dc.Push() }

// Pop implements ImmediateContext.
func (ic *GGContext) Pop() { ic.dc.Pop() }

// Translate implements ImmediateContext.
func (ic *GGContext) Translate(dx, dy float64) { ic.dc.Translate(dx, dy) }

// ClipRect implements ImmediateContext.
func (ic *GGContext) ClipRect(r Rect) { ic.dc.ClipRect(r.X, r.Y, r.W, r.H) }

// LeaseFeature implements ImmediateContext.
func (ic *GGContext) LeaseFeature() (LeaseFeature, bool) {
	if !ic.opts.accelerated || ic.closed {
		return nil, false
	}
	return ic.feature, true
}

// DrawGlyphRun implements ImmediateContext.
func (ic *GGContext) DrawGlyphRun(c gg.RGBA, run *glyph.Run) {
	if run == nil {
		return
	}
	origin := run.BaselineOrigin()
	run.Draw(ic.dc, c, origin.X, origin.Y)
}

// Close detaches the context from its gg.Context. Leases requested after
// Close fail with ErrSurfaceClosed.
func (ic *GGContext) Close() error {
	ic.closed = true
	return nil
}

type ggLeaseFeature struct {
	ic *GGContext
}

func (f ggLeaseFeature) Lease() (Lease, error) {
	ic := f.ic
	if ic.closed {
		return nil, ErrSurfaceClosed
	}
	if ic.leased {
		return nil, ErrLeaseHeld
	}
	ic.leased = true
	ic.dc.Push()
	return &ggLease{ic: ic}, nil
}

type ggLease struct {
	ic       *GGContext
	released bool
}

func (l *ggLease) Context() *gg.Context {
	if l.released {
		return nil
	}
	return l.ic.dc
}

// Close restores the state saved at lease time and flushes pending GPU
// shapes into the pixmap.
func (l *ggLease) Close() error {
	if l.released {
		return nil
	}
	l.released = true
	l.ic.dc.Pop()
	l.ic.leased = false
	if err := l.ic.dc.FlushGPU(); err != nil {
		return fmt.Errorf("ui: lease flush: %w", err)
	}
	return nil
}
