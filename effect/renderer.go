// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggfx/noise"
	"github.com/gogpu/ggfx/ui"
)

// Noise parameters of the color wheel texture.
const (
	NoiseFrequency = 0.05
	NoiseOctaves   = 4
	NoiseSeed      = 0
)

// Animation timing, in milliseconds per step.
const (
	blurStepMs  = 100
	alphaStepMs = 100
)

var (
	wheelCyan    = rgba8(0, 255, 255, 255)
	wheelMagenta = rgba8(255, 0, 255, 255)
	wheelYellow  = rgba8(255, 255, 0, 255)

	lightCore   = rgba8(255, 200, 200, 100)
	lightEdge   = gg.RGBA{R: 1, G: 1, B: 1, A: 0}
	shadowInner = rgba8(40, 40, 40, 220)
	shadowOuter = rgba8(20, 20, 20, 0)
)

// The noise lattice is immutable once built, so one generator serves every
// frame.
var wheelNoise = noise.MustFractal(NoiseFrequency, NoiseFrequency, NoiseOctaves, NoiseSeed)

// Render paints the effect onto c for the given bounds at elapsedSeconds.
// It issues exactly two DrawPaint calls between a Save and its Restore.
//
// Render panics if elapsedSeconds is negative.
func Render(c Canvas, bounds ui.Rect, elapsedSeconds float64) {
	ms := int64(elapsedSeconds * 1000)

	c.Save()
	defer c.Restore()

	c.DrawPaint(&Paint{
		Shader:      Compose(colorWheel(bounds), wheelNoise, BlendSrcATop),
		ImageFilter: NewBlur(float64(Animate(ms, blurStepMs, 2, 10)), float64(Animate(ms, blurStepMs, 5, 15))),
	})

	c.DrawPaint(&Paint{
		Shader: pseudoLight(bounds, elapsedSeconds, ms),
	})
}

// RenderNow is Render with the elapsed time read from DefaultClock.
func RenderNow(c Canvas, bounds ui.Rect) {
	Render(c, bounds, DefaultClock.ElapsedSeconds())
}

// colorWheel is the cyan, magenta, yellow sweep centred on bounds, with the
// centre truncated to whole pixels.
func colorWheel(bounds ui.Rect) *gg.SweepGradientBrush {
	cx := float64(int(bounds.W) / 2)
	cy := float64(int(bounds.H) / 2)
	return gg.NewSweepGradientBrush(cx, cy, 0).
		AddColorStop(0, wheelCyan).
		AddColorStop(1.0/3, wheelMagenta).
		AddColorStop(2.0/3, wheelYellow).
		AddColorStop(1, wheelCyan)
}

// pseudoLight is the radial highlight and vignette orbiting the centre. The
// coincident stops at 0.3 give the highlight a hard rim.
func pseudoLight(bounds ui.Rect, t float64, ms int64) *gg.RadialGradientBrush {
	x, y := LightPosition(bounds, t)
	outer := shadowOuter
	outer.A = float64(Animate(ms, alphaStepMs, 200, 220)) / 255
	return gg.NewRadialGradientBrush(x, y, 0, bounds.W/3).
		AddColorStop(0.3, lightCore).
		AddColorStop(0.3, lightEdge).
		AddColorStop(0.8, shadowInner).
		AddColorStop(1, outer).
		SetExtend(gg.ExtendPad)
}

func rgba8(r, g, b, a uint8) gg.RGBA {
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}
