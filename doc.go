// Package ggfx provides an animated, custom-drawn effect panel for gg hosts.
//
// # Overview
//
// The panel renders a looping procedural animation on top of a gg drawing
// context: fractal noise laid over a sweep gradient color wheel and blurred,
// lit by a radial "pseudo light" orbiting the panel centre. When the host
// cannot lease an accelerated gg context, the panel draws a short fallback
// text run instead.
//
// # Packages
//
//   - ui: host contracts (draw operations, display list, lease, dispatcher)
//   - panel: the control itself and its per-frame draw operation
//   - effect: the stateless effect renderer and animation helpers
//   - noise: fractal Perlin noise pattern
//   - glyph: the fallback text run
//   - host/gogpuhost, host/fbhost: window and framebuffer hosts
//
// # Quick Start
//
//	p := panel.MustNew()
//	h := ui.NewHost()
//	h.Attach(p)
//	h.Arrange(ui.Rect{W: 800, H: 600})
//
//	dc := gg.NewContext(800, 600)
//	ic := ui.NewImmediateContext(dc, ui.WithAcceleration(true))
//	if _, err := h.Frame(ic); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("frame.png")
//
// # Logging
//
// ggfx is silent by default. Call SetLogger to route diagnostics to a
// slog.Logger; the logger is forwarded to gg as well.
package ggfx

// Version is the current version of the module.
const Version = "0.1.0"
