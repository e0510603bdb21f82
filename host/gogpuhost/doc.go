// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuhost shows a ui.Visual in a gogpu window.
//
// Frames are drawn with gg into a ggcanvas.Canvas and presented as a GPU
// texture. The window renders on demand: an animation token is held while
// the ui.Host reports pending work and released once it goes idle, so a
// static scene costs no CPU.
//
//	p := panel.MustNew()
//	if err := gogpuhost.Run(gogpuhost.DefaultConfig().WithTitle("ggfx"), p); err != nil {
//		log.Fatal(err)
//	}
package gogpuhost
