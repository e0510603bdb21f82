// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ui holds the host contracts a ggfx control renders against.
//
// The model is a small retained-mode tree: a Host owns attached Visuals,
// asks each invalid visual to record DrawOperations into a DrawingContext,
// and later replays the resulting DisplayList onto an ImmediateContext.
// Replay is where operations meet real pixels, and where an operation may
// lease an accelerated gg.Context through the context's LeaseFeature.
//
//	frame:   Dispatcher.RunPending -> Visual.Render(DrawingContext) -> DisplayList
//	replay:  DrawOperation.Render(ImmediateContext) -> LeaseFeature.Lease -> gg.Context
//
// Work that must run "later on the UI goroutine" is posted to the host's
// Dispatcher with a Priority. Posting is safe from any goroutine; jobs run
// on whichever goroutine drives Host.Frame.
//
// # Thread Safety
//
// Host, DrawingContext and ImmediateContext are NOT safe for concurrent use.
// Dispatcher.Post is.
package ui
