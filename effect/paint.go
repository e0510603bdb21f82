// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"image"

	"github.com/gogpu/gg"
)

// Canvas is the drawing surface Render paints onto.
type Canvas interface {
	// Save pushes the surface state (transform, clip, fill).
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// DrawPaint fills the entire surface with p.
	DrawPaint(p *Paint)
}

// ImageFilter post-processes a rasterized fill before it is composited.
type ImageFilter interface {
	Apply(src image.Image) *image.RGBA
}

// Paint describes one full-surface fill.
type Paint struct {
	// Shader supplies the color of every pixel.
	Shader gg.Pattern

	// ImageFilter, when set, is applied to the rasterized shader before
	// compositing.
	ImageFilter ImageFilter
}

// BlendMode is a Porter-Duff compositing operator.
type BlendMode int

const (
	// BlendSrcOver draws the source over the destination.
	BlendSrcOver BlendMode = iota

	// BlendSrcATop draws the source only where the destination is opaque,
	// keeping the destination's alpha.
	BlendSrcATop

	// BlendDstIn keeps the destination where the source is opaque.
	BlendDstIn
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendSrcOver:
		return "SrcOver"
	case BlendSrcATop:
		return "SrcATop"
	case BlendDstIn:
		return "DstIn"
	default:
		return "Unknown"
	}
}

// Compose returns a pattern that blends src onto dst with mode.
func Compose(dst, src gg.Pattern, mode BlendMode) gg.Pattern {
	return &composeShader{dst: dst, src: src, mode: mode}
}

type composeShader struct {
	dst, src gg.Pattern
	mode     BlendMode
}

// ColorAt implements gg.Pattern.
func (s *composeShader) ColorAt(x, y float64) gg.RGBA {
	return Blend(s.src.ColorAt(x, y), s.dst.ColorAt(x, y), s.mode)
}

// Blend composites straight-alpha colors src over dst with mode and returns
// a straight-alpha result.
func Blend(src, dst gg.RGBA, mode BlendMode) gg.RGBA {
	sr, sg, sb, sa := src.R*src.A, src.G*src.A, src.B*src.A, src.A
	dr, dg, db, da := dst.R*dst.A, dst.G*dst.A, dst.B*dst.A, dst.A

	var r, g, b, a float64
	switch mode {
	case BlendSrcATop:
		r = sr*da + dr*(1-sa)
		g = sg*da + dg*(1-sa)
		b = sb*da + db*(1-sa)
		a = da
	case BlendDstIn:
		r, g, b, a = dr*sa, dg*sa, db*sa, da*sa
	default:
		r = sr + dr*(1-sa)
		g = sg + dg*(1-sa)
		b = sb + db*(1-sa)
		a = sa + da*(1-sa)
	}
	if a <= 0 {
		return gg.RGBA{}
	}
	return gg.RGBA{R: r / a, G: g / a, B: b / a, A: a}
}
