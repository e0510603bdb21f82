// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Visual is a node of the retained UI tree. Implementations embed Element
// and provide Render, which records the visual's draw operations.
type Visual interface {
	// Render records draw operations for the current frame.
	Render(dc *DrawingContext)

	base() *Element
}

// Element is the embeddable base of every Visual. The zero value is ready to
// use and detached.
type Element struct {
	bounds Rect
	host   *Host

	// ClipToBounds restricts replayed operations to the element's bounds.
	ClipToBounds bool

	invalid bool
	ops     []DrawOperation
}

func (e *Element) base() *Element { return e }

// Bounds returns the arranged bounds in host coordinates.
func (e *Element) Bounds() Rect { return e.bounds }

// SetBounds arranges the element. A size or position change invalidates it.
func (e *Element) SetBounds(r Rect) {
	if e.bounds == r {
		return
	}
	e.bounds = r
	e.InvalidateVisual()
}

// Attached reports whether the element belongs to a host.
func (e *Element) Attached() bool { return e.host != nil }

// InvalidateVisual marks the element for re-recording on the next frame.
// It is a no-op for detached elements.
func (e *Element) InvalidateVisual() {
	if e.host == nil {
		return
	}
	e.invalid = true
	e.host.dirty = true
}

// Dispatcher returns the host's dispatcher, or nil when detached.
func (e *Element) Dispatcher() *Dispatcher {
	if e.host == nil {
		return nil
	}
	return e.host.dispatcher
}

// Post queues fn on the host dispatcher. Work posted by a detached element is
// dropped and Post reports false.
func (e *Element) Post(fn func(), p Priority) bool {
	d := e.Dispatcher()
	if d == nil {
		return false
	}
	return d.Post(fn, p)
}
