// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"log/slog"

	"github.com/gogpu/ggfx"
)

func logger() *slog.Logger { return ggfx.Logger() }
