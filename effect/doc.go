// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package effect renders the ggfx procedural animation.
//
// Render is a pure function of a Canvas, the target bounds and an elapsed
// time. Each call paints exactly two full-surface fills between Save and
// Restore:
//
//  1. fractal noise composed source-atop onto an opaque sweep gradient color
//     wheel, drawn through an animated anisotropic blur;
//  2. a radial "pseudo light" gradient whose centre orbits the bounds centre
//     once every 2π seconds.
//
// Animate is the triangle-wave helper driving the blur radii and the light's
// outer alpha. Canvas abstracts the drawing surface; NewCanvas adapts a
// gg.Context.
package effect
