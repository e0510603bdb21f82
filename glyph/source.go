// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyFont is returned when a font source is created from no data.
var ErrEmptyFont = errors.New("glyph: empty font data")

// FontSource is a parsed typeface usable both for shaping (go-text) and for
// drawing (gg).
//
// FontSource is safe for concurrent use.
type FontSource struct {
	shaping *font.Font
	drawing *text.FontSource
	name    string
}

// NewFontSource parses TTF or OTF data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	drawing, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: load font: %w", err)
	}
	return &FontSource{
		shaping: face.Font,
		drawing: drawing,
		name:    drawing.Name(),
	}, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string { return s.name }

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
	defaultErr    error
)

// DefaultSource returns the default typeface (Go Regular), parsed once.
func DefaultSource() (*FontSource, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = NewFontSource(goregular.TTF)
	})
	return defaultSource, defaultErr
}
