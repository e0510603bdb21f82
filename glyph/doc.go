// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph builds immutable, pre-shaped glyph runs.
//
// A Run is shaped once with go-text/typesetting and can then be drawn any
// number of times onto a gg.Context. ggfx uses it for the text a control
// shows when no accelerated surface is available.
//
//	src, err := glyph.DefaultSource()
//	if err != nil { ... }
//	run, err := glyph.NewRun(src, 12, "Hello")
//	if err != nil { ... }
//	run.Draw(dc, gg.Black, 0, run.Ascent())
package glyph
