// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// DrawOperation is a custom drawing step recorded into a frame's display
// list and replayed later onto an ImmediateContext.
//
// The host uses Equal to decide whether an operation from the previous frame
// can be kept instead of the new one; an operation that never reports
// equality is re-rendered every frame. HitTest lets the host route pointer
// input to the visual that recorded the operation.
type DrawOperation interface {
	// Bounds returns the area the operation paints, in the recording
	// visual's coordinate space.
	Bounds() Rect

	// HitTest reports whether p (visual coordinates) hits the operation.
	HitTest(p Point) bool

	// Equal reports whether the operation would paint exactly what other
	// paints, allowing the host to skip re-rendering.
	Equal(other DrawOperation) bool

	// Render paints the operation onto ic.
	Render(ic ImmediateContext)

	// Close releases resources held by the operation. The host calls Close
	// once the operation is no longer part of any display list.
	Close() error
}
