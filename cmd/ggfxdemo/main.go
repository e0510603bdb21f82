// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggfxdemo shows the animated effect panel.
//
// Usage:
//
//	ggfxdemo -mode window            # gogpu window
//	ggfxdemo -mode fb -fb /dev/fb0   # Linux framebuffer
//	ggfxdemo -mode png -frames 60    # write frame-0000.png ... to -output
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/effect"
	"github.com/gogpu/ggfx/host/fbhost"
	"github.com/gogpu/ggfx/host/gogpuhost"
	"github.com/gogpu/ggfx/panel"
	"github.com/gogpu/ggfx/ui"
)

func main() {
	var (
		mode     = flag.String("mode", "window", "output: window, fb or png")
		width    = flag.Int("width", 800, "width in pixels")
		height   = flag.Int("height", 600, "height in pixels")
		frames   = flag.Int("frames", 60, "frames to render in png mode")
		output   = flag.String("output", ".", "directory for png frames")
		fallback = flag.Bool("fallback", false, "disable the accelerated surface lease")
		device   = flag.String("fb", "/dev/fb0", "framebuffer device in fb mode")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	switch *mode {
	case "window":
		err = runWindow(*width, *height, *fallback)
	case "fb":
		err = runFramebuffer(*device, *width, *height, *fallback)
	case "png":
		err = runPNG(*output, *width, *height, *frames, *fallback)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("ggfxdemo: %v", err)
	}
}

func runWindow(w, h int, fallback bool) error {
	p, err := panel.New()
	if err != nil {
		return err
	}
	cfg := gogpuhost.DefaultConfig().
		WithTitle("ggfx demo").
		WithSize(w, h).
		WithFallback(fallback)
	return gogpuhost.Run(cfg, p)
}

func runFramebuffer(device string, w, h int, fallback bool) error {
	p, err := panel.New()
	if err != nil {
		return err
	}
	cfg := fbhost.DefaultConfig()
	cfg.Device = device
	cfg.Width, cfg.Height = w, h
	cfg.Fallback = fallback
	cfg.Console = true

	r, err := fbhost.Open(cfg, p)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Run(ctx)
}

// runPNG renders frames at a fixed 60 Hz step so the output does not depend
// on how fast the machine encodes PNGs.
func runPNG(dir string, w, h, n int, fallback bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	const step = time.Second / 60
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	p, err := panel.New(
		panel.WithClock(effect.NewClock(clock)),
		panel.WithNow(clock),
		panel.WithDiagnostics(io.Discard),
	)
	if err != nil {
		return err
	}
	host := ui.NewHost()
	defer host.Close()
	host.Attach(p)

	dc := gg.NewContext(w, h)
	defer dc.Close()

	for i := 0; i < n; i++ {
		dc.ClearWithColor(gg.White)
		host.Arrange(ui.Rect{W: float64(w), H: float64(h)})
		ic := ui.NewImmediateContext(dc, ui.WithAcceleration(!fallback))
		_, err := host.Frame(ic)
		_ = ic.Close()
		if err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := dc.SavePNG(name); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		now = now.Add(step)
	}
	ggfx.Logger().Info("frames written", "dir", dir, "count", n, "width", w, "height", h)
	return nil
}
