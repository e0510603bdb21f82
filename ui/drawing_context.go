// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// DrawingContext records the draw operations a visual produces during one
// frame. It does not paint anything itself.
type DrawingContext struct {
	bounds Rect
	ops    []DrawOperation
}

// NewDrawingContext returns a recorder for a visual occupying bounds.
func NewDrawingContext(bounds Rect) *DrawingContext {
	return &DrawingContext{bounds: bounds}
}

// Bounds returns the arranged bounds of the visual being recorded.
func (dc *DrawingContext) Bounds() Rect { return dc.bounds }

// Custom records op. Nil operations are ignored.
func (dc *DrawingContext) Custom(op DrawOperation) {
	if op == nil {
		return
	}
	dc.ops = append(dc.ops, op)
}

// Operations returns the operations recorded so far, in recording order.
func (dc *DrawingContext) Operations() []DrawOperation {
	return dc.ops
}

// Len returns the number of recorded operations.
func (dc *DrawingContext) Len() int { return len(dc.ops) }

// entry is one display list slot: an operation and where to replay it.
type entry struct {
	visual Visual
	origin Point
	clip   Rect
	clipOn bool
	op     DrawOperation
}

// DisplayList is the flattened result of one frame's recording.
type DisplayList struct {
	entries []entry
}

// Len returns the number of operations in the list.
func (l *DisplayList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns the i-th operation.
func (l *DisplayList) At(i int) DrawOperation {
	return l.entries[i].op
}

// VisualAt returns the visual that recorded the i-th operation.
func (l *DisplayList) VisualAt(i int) Visual {
	return l.entries[i].visual
}

// Operations returns a copy of the operations in replay order.
func (l *DisplayList) Operations() []DrawOperation {
	if l == nil {
		return nil
	}
	ops := make([]DrawOperation, len(l.entries))
	for i := range l.entries {
		ops[i] = l.entries[i].op
	}
	return ops
}
