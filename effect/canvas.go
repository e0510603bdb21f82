// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"image"

	"github.com/gogpu/gg"
)

// GGCanvas adapts a gg.Context to Canvas over a fixed local extent.
//
// Shaders are evaluated in local coordinates: (0, 0) is the context's
// current origin when DrawPaint runs. DrawPaint covers the rectangle
// (0, 0, width, height) in those coordinates.
type GGCanvas struct {
	dc      *gg.Context
	width   float64
	height  float64
	brushes []gg.Brush
}

var _ Canvas = (*GGCanvas)(nil)

// NewCanvas returns a canvas painting onto dc over a width x height area
// at the current origin.
func NewCanvas(dc *gg.Context, width, height float64) *GGCanvas {
	return &GGCanvas{dc: dc, width: width, height: height}
}

// Save pushes the transform and clip and remembers the fill brush.
func (c *GGCanvas) Save() {
	c.dc.Push()
	c.brushes = append(c.brushes, c.dc.FillBrush())
}

// Restore undoes the matching Save. Extra calls are ignored.
func (c *GGCanvas) Restore() {
	n := len(c.brushes)
	if n == 0 {
		return
	}
	c.dc.Pop()
	if b := c.brushes[n-1]; b != nil {
		c.dc.SetFillBrush(b)
	}
	c.brushes = c.brushes[:n-1]
}

// DrawPaint fills the canvas area with p. A paint without a shader is
// ignored.
//
// The shader is sampled at pixel centres into an offscreen image, passed
// through the image filter if any, and drawn source-over at the origin.
func (c *GGCanvas) DrawPaint(p *Paint) {
	if p == nil || p.Shader == nil {
		return
	}
	w, h := int(c.width+0.5), int(c.height+0.5)
	if w <= 0 || h <= 0 {
		return
	}

	var img image.Image = rasterize(p.Shader, w, h)
	if p.ImageFilter != nil {
		img = p.ImageFilter.Apply(img)
	}
	c.dc.DrawImage(gg.ImageBufFromImage(img), 0, 0)
}

// rasterize samples shader over a w x h grid.
func rasterize(shader gg.Pattern, w, h int) *image.NRGBA {
	paint := gg.NewPaint()
	paint.SetBrush(gg.BrushFromPattern(shader))
	painter := gg.PainterFromPaint(paint)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	row := make([]gg.RGBA, w)
	for y := 0; y < h; y++ {
		painter.PaintSpan(row, 0, y, w)
		off := y * img.Stride
		for x, col := range row {
			img.Pix[off+x*4+0] = to8(col.R)
			img.Pix[off+x*4+1] = to8(col.G)
			img.Pix[off+x*4+2] = to8(col.B)
			img.Pix[off+x*4+3] = to8(col.A)
		}
	}
	return img
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
