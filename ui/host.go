// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"errors"
	"slices"
)

// Host errors.
var (
	// ErrHostClosed is returned by Frame after Close.
	ErrHostClosed = errors.New("ui: host is closed")

	// ErrNilContext is returned by Frame when no immediate context is given.
	ErrNilContext = errors.New("ui: nil immediate context")
)

// HostOption configures a Host.
type HostOption func(*hostOptions)

type hostOptions struct {
	dispatcher *Dispatcher
}

// WithDispatcher makes the host use d instead of creating its own.
func WithDispatcher(d *Dispatcher) HostOption {
	return func(o *hostOptions) {
		o.dispatcher = d
	}
}

// Host is the root of a retained UI tree. It drives frames: it drains the
// dispatcher, asks invalid visuals to record draw operations and replays the
// resulting display list onto an immediate context.
//
// Host is NOT safe for concurrent use.
type Host struct {
	dispatcher *Dispatcher
	visuals    []Visual
	dirty      bool
	closed     bool
	frames     uint64
}

// NewHost creates an empty host.
func NewHost(opts ...HostOption) *Host {
	var o hostOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatcher == nil {
		o.dispatcher = NewDispatcher()
	}
	return &Host{dispatcher: o.dispatcher}
}

// Dispatcher returns the host's dispatcher.
func (h *Host) Dispatcher() *Dispatcher { return h.dispatcher }

// Frames returns the number of frames produced so far.
func (h *Host) Frames() uint64 { return h.frames }

// Attach adds v to the host and invalidates it. Attaching a visual that
// belongs to another host moves it.
func (h *Host) Attach(v Visual) {
	b := v.base()
	if b.host == h {
		return
	}
	if b.host != nil {
		b.host.Detach(v)
	}
	b.host = h
	h.visuals = append(h.visuals, v)
	b.InvalidateVisual()
	logger().Debug("ui: visual attached", "bounds", b.bounds.String())
}

// Detach removes v from the host and disposes its draw operations.
// Work v posted earlier still runs but no longer reaches the host.
func (h *Host) Detach(v Visual) {
	b := v.base()
	if b.host != h {
		return
	}
	h.visuals = slices.DeleteFunc(h.visuals, func(x Visual) bool { return x == v })
	closeOps(b.ops)
	b.ops = nil
	b.host = nil
	b.invalid = false
	h.dirty = true
}

// Visuals returns the attached visuals in paint order.
func (h *Host) Visuals() []Visual {
	return slices.Clone(h.visuals)
}

// Arrange gives every attached visual the bounds r.
func (h *Host) Arrange(r Rect) {
	for _, v := range h.visuals {
		v.base().SetBounds(r)
	}
}

// NeedsFrame reports whether a visual is invalid or work is queued.
func (h *Host) NeedsFrame() bool {
	if h.closed {
		return false
	}
	return h.dirty || h.dispatcher.Pending() > 0
}

// Frame produces one frame onto ic.
//
// Queued dispatcher work runs first. Invalid visuals then record fresh
// operations; a new operation that reports Equal to the one it replaces is
// dropped in favor of the old one. Every operation is replayed onto ic in
// paint order, translated to its visual's origin and clipped when the visual
// asks for it. Replaced operations are closed.
func (h *Host) Frame(ic ImmediateContext) (*DisplayList, error) {
	if h.closed {
		return nil, ErrHostClosed
	}
	if ic == nil {
		return nil, ErrNilContext
	}

	h.dispatcher.RunPending()

	list := &DisplayList{}
	for _, v := range h.visuals {
		b := v.base()
		if b.invalid || b.ops == nil {
			b.ops = retain(b.ops, record(v, b))
			b.invalid = false
		}
		for _, op := range b.ops {
			list.entries = append(list.entries, entry{
				visual: v,
				origin: Point{X: b.bounds.X, Y: b.bounds.Y},
				clip:   Rect{W: b.bounds.W, H: b.bounds.H},
				clipOn: b.ClipToBounds,
				op:     op,
			})
		}
	}
	h.dirty = false

	replay(ic, list)
	h.frames++
	return list, nil
}

// HitTest returns the topmost visual whose operations report a hit at p
// (host coordinates), or nil.
func (h *Host) HitTest(p Point) Visual {
	for i := len(h.visuals) - 1; i >= 0; i-- {
		v := h.visuals[i]
		b := v.base()
		if b.ClipToBounds && !b.bounds.Contains(p) {
			continue
		}
		local := Point{X: p.X - b.bounds.X, Y: p.Y - b.bounds.Y}
		for j := len(b.ops) - 1; j >= 0; j-- {
			if b.ops[j].HitTest(local) {
				return v
			}
		}
	}
	return nil
}

// Close detaches every visual, disposes all operations and closes the
// dispatcher. Close is idempotent.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	for _, v := range slices.Clone(h.visuals) {
		h.Detach(v)
	}
	h.dispatcher.Close()
	h.closed = true
	return nil
}

func record(v Visual, b *Element) []DrawOperation {
	dc := NewDrawingContext(b.bounds)
	v.Render(dc)
	return dc.Operations()
}

// retain merges freshly recorded operations with the previous ones, keeping
// old operations that compare equal and closing everything else that drops
// out.
func retain(old, fresh []DrawOperation) []DrawOperation {
	out := make([]DrawOperation, len(fresh))
	for i, op := range fresh {
		if i < len(old) && old[i].Equal(op) {
			out[i] = old[i]
			closeOp(op)
			old[i] = nil
			continue
		}
		out[i] = op
	}
	closeOps(old)
	return out
}

func replay(ic ImmediateContext, list *DisplayList) {
	for i := range list.entries {
		renderEntry(ic, &list.entries[i])
	}
}

// renderEntry replays one operation with the surface state saved around it.
func renderEntry(ic ImmediateContext, e *entry) {
	ic.Push()
	defer ic.Pop()
	ic.Translate(e.origin.X, e.origin.Y)
	if e.clipOn {
		ic.ClipRect(e.clip)
	}
	e.op.Render(ic)
}

func closeOp(op DrawOperation) {
	if op == nil {
		return
	}
	if err := op.Close(); err != nil {
		logger().Warn("ui: draw operation close failed", "err", err)
	}
}

func closeOps(ops []DrawOperation) {
	for _, op := range ops {
		closeOp(op)
	}
}
