// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		sigma    float64
		vertical bool
		wantLen  int
	}{
		{1, false, 7},
		{2, false, 13},
		{5, true, 31},
		{0.5, true, 5},
	}

	for _, tt := range tests {
		k := gaussianKernel(tt.sigma, tt.vertical)
		if len(k.Matrix) != tt.wantLen {
			t.Errorf("sigma %v: len = %d, want %d", tt.sigma, len(k.Matrix), tt.wantLen)
		}
		if tt.vertical && (k.MaxX() != 1 || k.MaxY() != tt.wantLen) {
			t.Errorf("sigma %v: vertical kernel is %dx%d", tt.sigma, k.MaxX(), k.MaxY())
		}
		if !tt.vertical && (k.MaxX() != tt.wantLen || k.MaxY() != 1) {
			t.Errorf("sigma %v: horizontal kernel is %dx%d", tt.sigma, k.MaxX(), k.MaxY())
		}

		var sum float64
		for i, w := range k.Matrix {
			sum += w
			if mirror := k.Matrix[len(k.Matrix)-1-i]; math.Abs(w-mirror) > 1e-12 {
				t.Errorf("sigma %v: kernel not symmetric at %d", tt.sigma, i)
			}
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("sigma %v: kernel sum = %v, want 1", tt.sigma, sum)
		}
		mid := len(k.Matrix) / 2
		if k.Matrix[mid] < k.Matrix[0] {
			t.Errorf("sigma %v: centre weight below tail", tt.sigma)
		}
	}
}

func TestBlurUniformImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	fill := color.RGBA{R: 100, G: 150, B: 200, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	out := NewBlur(3, 2).Apply(src)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), src.Bounds())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			c := out.RGBAAt(x, y)
			if absDiff(c.R, fill.R) > 1 || absDiff(c.G, fill.G) > 1 ||
				absDiff(c.B, fill.B) > 1 || absDiff(c.A, fill.A) > 1 {
				t.Fatalf("pixel (%d,%d) = %v, want about %v", x, y, c, fill)
			}
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 21, 21))
	src.SetRGBA(10, 10, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := NewBlur(2, 4).Apply(src)
	centre := out.RGBAAt(10, 10).A
	if centre == 0 || centre == 255 {
		t.Fatalf("centre alpha = %d, want partially spread", centre)
	}
	// Vertical sigma is larger, so energy travels further along y.
	if out.RGBAAt(10, 16).A <= out.RGBAAt(16, 10).A {
		t.Errorf("vertical spread %d not above horizontal %d",
			out.RGBAAt(10, 16).A, out.RGBAAt(16, 10).A)
	}
	if src.RGBAAt(10, 11).A != 0 {
		t.Error("Apply modified its input")
	}
}

func TestBlurZeroSigmaCopies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 9, A: 255})

	out := NewBlur(0, 0).Apply(src)
	if out == src {
		t.Fatal("Apply returned its input")
	}
	if out.RGBAAt(1, 2) != src.RGBAAt(1, 2) {
		t.Errorf("pixel = %v, want %v", out.RGBAAt(1, 2), src.RGBAAt(1, 2))
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
