// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// BlurFilter is a separable Gaussian blur with independent horizontal and
// vertical standard deviations.
type BlurFilter struct {
	SigmaX float64
	SigmaY float64
}

var _ ImageFilter = (*BlurFilter)(nil)

// NewBlur returns a blur filter with the given sigmas in pixels.
func NewBlur(sigmaX, sigmaY float64) *BlurFilter {
	return &BlurFilter{SigmaX: sigmaX, SigmaY: sigmaY}
}

// Apply blurs src. Pixels beyond the edges repeat the nearest edge pixel.
// A filter with both sigmas <= 0 returns an unmodified copy.
func (f *BlurFilter) Apply(src image.Image) *image.RGBA {
	out := clone.AsRGBA(src)
	if f.SigmaX > 0 {
		out = convolution.Convolve(out, gaussianKernel(f.SigmaX, false), nil)
	}
	if f.SigmaY > 0 {
		out = convolution.Convolve(out, gaussianKernel(f.SigmaY, true), nil)
	}
	return out
}

// gaussianKernel builds a normalized 1D Gaussian spanning three sigmas on
// each side, laid out as a row or, when vertical, a column.
func gaussianKernel(sigma float64, vertical bool) *convolution.Kernel {
	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1

	weights := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range weights {
		x := float64(i - half)
		weights[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += weights[i]
	}

	var k *convolution.Kernel
	if vertical {
		k = convolution.NewKernel(1, size)
	} else {
		k = convolution.NewKernel(size, 1)
	}
	for i, w := range weights {
		k.Matrix[i] = w / sum
	}
	return k
}
