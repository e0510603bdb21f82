// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbhost

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/ui"
)

// ErrClosed is returned by a renderer used after Close.
var ErrClosed = errors.New("fbhost: renderer closed")

// Renderer drives a ui.Host onto a framebuffer. It is NOT safe for
// concurrent use; Run owns it until its context is done.
type Renderer struct {
	cfg     Config
	dev     Device
	release func()
	host    *ui.Host
	dc      *gg.Context
	frames  uint64
	console bool
	closed  bool
}

// Device is the pixel sink a renderer blits into. *framebuffer.Device
// satisfies it.
type Device interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Open opens cfg.Device and attaches v to a new host.
func Open(cfg Config, v ui.Visual) (*Renderer, error) {
	dev, err := fb.Open(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("fbhost: open %s: %w", cfg.Device, err)
	}
	b := dev.Bounds()
	ggfx.Logger().Info("fbhost: framebuffer open", "device", cfg.Device, "width", b.Dx(), "height", b.Dy())

	r := NewRenderer(cfg, dev, func() { dev.Close() }, v)
	if cfg.Console {
		if err := setGraphicsMode(true); err != nil {
			ggfx.Logger().Warn("fbhost: console graphics mode", "err", err)
		} else {
			r.console = true
		}
	}
	return r, nil
}

// NewRenderer returns a renderer writing to dev. release, if non-nil, runs
// once on Close.
func NewRenderer(cfg Config, dev Device, release func(), v ui.Visual) *Renderer {
	w, h := cfg.Width, cfg.Height
	if b := dev.Bounds(); w <= 0 || h <= 0 {
		w, h = b.Dx(), b.Dy()
	}
	host := ui.NewHost()
	if v != nil {
		host.Attach(v)
	}
	return &Renderer{
		cfg:     cfg,
		dev:     dev,
		release: release,
		host:    host,
		dc:      gg.NewContext(w, h),
	}
}

// Host returns the host the renderer drives.
func (r *Renderer) Host() *ui.Host { return r.host }

// Frames returns the number of frames blitted so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// Frame draws one frame and blits it to the device.
func (r *Renderer) Frame() error {
	if r.closed {
		return ErrClosed
	}
	w, h := r.dc.Width(), r.dc.Height()
	r.dc.ClearWithColor(r.cfg.Background)
	r.host.Arrange(ui.Rect{W: float64(w), H: float64(h)})

	ic := ui.NewImmediateContext(r.dc, ui.WithAcceleration(!r.cfg.Fallback))
	_, err := r.host.Frame(ic)
	_ = ic.Close()
	if err != nil {
		return fmt.Errorf("fbhost: frame: %w", err)
	}
	if err := r.dc.FlushGPU(); err != nil {
		ggfx.Logger().Warn("fbhost: flush", "err", err)
	}
	r.blit()
	r.frames++
	return nil
}

func (r *Renderer) blit() {
	src := r.dc.Image()
	xdraw.NearestNeighbor.Scale(opaque{r.dev}, r.dev.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// Run redraws at the configured rate while the host has work, until ctx is
// done. The first frame is always drawn.
func (r *Renderer) Run(ctx context.Context) error {
	log := ggfx.Logger()
	if err := r.Frame(); err != nil {
		return err
	}

	ticker := time.NewTicker(r.cfg.interval())
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !r.host.NeedsFrame() {
				continue
			}
			if err := r.Frame(); err != nil {
				return err
			}
			if time.Since(lastLog) > time.Second {
				log.Debug("fbhost: heartbeat", "frames", r.frames)
				lastLog = time.Now()
			}
		}
	}
}

// Close releases the device and restores the console. Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.host.Close()
	_ = r.dc.Close()
	if r.console {
		if cerr := setGraphicsMode(false); cerr != nil {
			ggfx.Logger().Warn("fbhost: console text mode", "err", cerr)
		}
	}
	if r.release != nil {
		r.release()
	}
	return err
}

// opaque adapts a Device to draw.Image and forces full alpha on every pixel,
// since a framebuffer has no alpha channel of its own. It is write-only.
type opaque struct{ dev Device }

func (o opaque) ColorModel() color.Model { return color.RGBA64Model }
func (o opaque) Bounds() image.Rectangle { return o.dev.Bounds() }
func (o opaque) At(int, int) color.Color { return color.Black }
func (o opaque) Set(x, y int, c color.Color) {
	r, g, b, _ := c.RGBA()
	o.dev.Set(x, y, color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff})
}
