// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/ui"
)

// ErrNoProvider is returned by a frame drawn before the window has a GPU
// device.
var ErrNoProvider = errors.New("gogpuhost: no GPU context provider")

// driver turns ui.Host frames into canvas textures. It owns the canvas and
// recreates nothing across frames except on resize.
//
// driver is NOT safe for concurrent use.
type driver struct {
	cfg    Config
	host   *ui.Host
	canvas *ggcanvas.Canvas
}

func newDriver(cfg Config, host *ui.Host) *driver {
	return &driver{cfg: cfg, host: host}
}

// frame renders one host frame at w x h and presents it on drawer.
// A non-positive size is skipped. The canvas is created on first use and
// resized to follow the window.
func (d *driver) frame(provider gpucontext.DeviceProvider, drawer gpucontext.TextureDrawer, w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if d.canvas == nil {
		if provider == nil {
			return ErrNoProvider
		}
		c, err := ggcanvas.New(provider, w, h)
		if err != nil {
			return fmt.Errorf("gogpuhost: create canvas: %w", err)
		}
		d.canvas = c
		ggfx.Logger().Info("gogpuhost: canvas created", "width", w, "height", h)
	}
	if cw, ch := d.canvas.Size(); cw != w || ch != h {
		if err := d.canvas.Resize(w, h); err != nil {
			ggfx.Logger().Warn("gogpuhost: canvas resize failed", "err", err)
		}
	}

	d.host.Arrange(ui.Rect{W: float64(w), H: float64(h)})

	var frameErr error
	if err := d.canvas.Draw(func(cc *gg.Context) {
		cc.ClearWithColor(d.cfg.Background)
		ic := ui.NewImmediateContext(cc, ui.WithAcceleration(!d.cfg.Fallback))
		defer ic.Close()
		_, frameErr = d.host.Frame(ic)
	}); err != nil {
		return fmt.Errorf("gogpuhost: draw: %w", err)
	}
	if frameErr != nil {
		return fmt.Errorf("gogpuhost: frame: %w", frameErr)
	}
	if err := d.canvas.RenderTo(drawer); err != nil {
		return fmt.Errorf("gogpuhost: present: %w", err)
	}
	return nil
}

func (d *driver) close() error {
	if d.canvas == nil {
		return nil
	}
	err := d.canvas.Close()
	d.canvas = nil
	return err
}
