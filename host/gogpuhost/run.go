// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"github.com/gogpu/gogpu"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/ui"
)

// Run opens a window showing v and blocks until it is closed.
func Run(cfg Config, v ui.Visual) error {
	log := ggfx.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	host := ui.NewHost()
	host.Attach(v)
	d := newDriver(cfg, host)

	var anim *gogpu.AnimationToken
	first := true

	app.OnDraw(func(dc *gogpu.Context) {
		if first {
			log.Info("gogpuhost: window ready", "backend", dc.Backend())
			first = false
		}
		if err := d.frame(app.GPUContextProvider(), dc.AsTextureDrawer(), dc.Width(), dc.Height()); err != nil {
			log.Warn("gogpuhost: frame failed", "err", err)
		}

		// Keep vsync-paced redraws only while the tree has work queued.
		switch busy := host.NeedsFrame(); {
		case busy && anim == nil:
			anim = app.StartAnimation()
		case !busy && anim != nil:
			anim.Stop()
			anim = nil
		}
	})

	app.OnClose(func() {
		if anim != nil {
			anim.Stop()
			anim = nil
		}
		if err := d.close(); err != nil {
			log.Warn("gogpuhost: canvas close failed", "err", err)
		}
		_ = host.Close()
	})

	return app.Run()
}
