// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panel

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggfx/effect"
	"github.com/gogpu/ggfx/glyph"
	"github.com/gogpu/ggfx/ui"
)

// drawOp paints one frame of the panel. It never compares equal, so the
// host replays a fresh one every frame.
type drawOp struct {
	bounds ui.Rect
	run    *glyph.Run
	clock  *effect.Clock
}

var _ ui.DrawOperation = (*drawOp)(nil)

func (op *drawOp) Bounds() ui.Rect { return op.bounds }

func (op *drawOp) HitTest(ui.Point) bool { return false }

func (op *drawOp) Equal(ui.DrawOperation) bool { return false }

func (op *drawOp) Close() error { return nil }

// Render draws the effect through a surface lease, or the fallback text
// when the context cannot lease one.
func (op *drawOp) Render(ic ui.ImmediateContext) {
	if op.run == nil {
		return
	}
	feature, ok := ic.LeaseFeature()
	if !ok {
		ic.DrawGlyphRun(gg.Black, op.run)
		return
	}

	lease, err := feature.Lease()
	if err != nil {
		logger().Warn("panel: surface lease failed, drawing fallback", "err", err)
		ic.DrawGlyphRun(gg.Black, op.run)
		return
	}
	defer func() {
		if err := lease.Close(); err != nil {
			logger().Warn("panel: surface lease release failed", "err", err)
		}
	}()

	canvas := effect.NewCanvas(lease.Context(), op.bounds.W, op.bounds.H)
	effect.Render(canvas, op.bounds, op.clock.ElapsedSeconds())
}
