// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbhost shows a ui.Visual on a Linux framebuffer device.
//
// Frames are drawn with gg into an offscreen logical canvas and scaled onto
// the device with nearest-neighbor sampling, so the same scene can run
// headless on kiosk hardware without a GPU or window system.
//
//	r, err := fbhost.Open(fbhost.DefaultConfig(), panel.MustNew())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//	err = r.Run(ctx)
package fbhost
