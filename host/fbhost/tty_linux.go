// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package fbhost

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A
)

var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

// setGraphicsMode switches the active virtual terminal between graphics and
// text mode. The first terminal that accepts the ioctl wins.
func setGraphicsMode(on bool) error {
	mode := kdText
	if on {
		mode = kdGraphics
	}
	var lastErr error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}
