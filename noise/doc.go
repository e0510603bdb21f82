// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package noise provides procedural Perlin noise patterns for gg.
//
// The generator follows the feTurbulence model used by SVG filters and
// Skia's Perlin noise shaders: a 256-entry permutation lattice and four
// independent gradient tables (one per RGBA channel), seeded by a
// Park-Miller generator and summed over octaves. Two modes exist:
//
//   - fractal noise: the signed octave sum mapped to [0, 1] as (sum+1)/2
//   - turbulence: the sum of absolute octave values
//
// A Generator is deterministic for a given seed and implements gg.Pattern,
// so it can be used directly as a fill:
//
//	n, _ := noise.NewFractal(0.05, 0.05, 4, 0)
//	dc.SetFillPattern(n)
//	dc.DrawRectangle(0, 0, 256, 256)
//	dc.Fill()
package noise
