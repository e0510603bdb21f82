// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package panel provides Panel, a ui.Visual that paints the animated effect
// when an accelerated gg surface is available and a static line of text
// otherwise.
//
// A Panel keeps itself animating: every Render records a fresh draw
// operation and posts its own invalidation to the host dispatcher at
// background priority. It also counts rendered frames and writes the count
// to a diagnostic writer once per wall-clock second.
//
//	p, err := panel.New(panel.WithDiagnostics(os.Stderr))
//	if err != nil {
//		return err
//	}
//	host := ui.NewHost()
//	host.Attach(p)
//	host.Arrange(ui.Rect{W: 800, H: 600})
package panel
