// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package fbhost

func setGraphicsMode(bool) error { return nil }
