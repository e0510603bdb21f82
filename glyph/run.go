// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// ErrNilSource is returned by NewRun when no font source is given.
var ErrNilSource = errors.New("glyph: nil font source")

// Glyph is one positioned glyph of a Run.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint32

	// Cluster is the rune index the glyph was produced from.
	Cluster int

	// X is the pen position relative to the run origin.
	X float64

	// Advance is the horizontal advance to the next glyph.
	Advance float64
}

// Origin is a baseline position.
type Origin struct {
	X, Y float64
}

// Run is an immutable, shaped sequence of glyphs.
type Run struct {
	text    string
	size    float64
	glyphs  []Glyph
	advance float64
	ascent  float64
	descent float64
	face    text.Face
}

// NewRun shapes s (NFC-normalized) with src at size pixels.
func NewRun(src *FontSource, size float64, s string) (*Run, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	s = norm.NFC.String(s)
	runes := []rune(s)

	run := &Run{
		text: s,
		size: size,
		face: src.drawing.Face(size),
	}
	if len(runes) == 0 {
		return run, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(src.shaping),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	run.glyphs = make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		run.glyphs[i] = Glyph{
			ID:      uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Advance: adv,
		}
		x += adv
	}
	run.advance = fromFixed(out.Advance)
	run.ascent = fromFixed(out.LineBounds.Ascent)
	run.descent = -fromFixed(out.LineBounds.Descent)
	return run, nil
}

// Text returns the (normalized) text of the run.
func (r *Run) Text() string { return r.text }

// Size returns the font size in pixels.
func (r *Run) Size() float64 { return r.size }

// Glyphs returns the shaped glyphs. The slice must not be modified.
func (r *Run) Glyphs() []Glyph { return r.glyphs }

// Len returns the number of glyphs.
func (r *Run) Len() int { return len(r.glyphs) }

// Advance returns the total advance width.
func (r *Run) Advance() float64 { return r.advance }

// Ascent returns the distance from the baseline to the top of the line.
func (r *Run) Ascent() float64 { return r.ascent }

// Descent returns the distance from the baseline to the bottom of the line,
// as a positive value.
func (r *Run) Descent() float64 { return r.descent }

// BaselineOrigin returns where the run's baseline starts when its line box
// is placed at (0, 0).
func (r *Run) BaselineOrigin() Origin {
	return Origin{X: 0, Y: r.ascent}
}

// Draw paints the run in color c with its baseline starting at (x, y).
// The text is rasterized by gg's face for the same font, so the painted
// width follows the shaped advance up to kerning. The context's font and
// fill brush are restored afterwards.
func (r *Run) Draw(dc *gg.Context, c gg.RGBA, x, y float64) {
	if r == nil || dc == nil || r.text == "" {
		return
	}
	prevFont, prevBrush := dc.Font(), dc.FillBrush()
	dc.SetFont(r.face)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.DrawString(r.text, x, y)
	dc.SetFont(prevFont)
	dc.SetFillBrush(prevBrush)
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
