// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	xlang "golang.org/x/text/language"
)

// Format describes how a piece of text should be laid out. The zero value
// is not useful; use NewFormat.
type Format struct {
	// Size is the font size in logical units (points at 96 DPI).
	Size float64

	// Language is the BCP 47 language the text is written in. It steers
	// shaping decisions such as ligature and form selection.
	Language language.Language
}

// NewFormat builds a Format with a canonicalized language tag. An empty or
// unparseable locale falls back to "en".
func NewFormat(size float64, locale string) Format {
	tag, err := xlang.Parse(locale)
	if err != nil {
		tag = xlang.English
	}
	return Format{
		Size:     size,
		Language: language.NewLanguage(tag.String()),
	}
}

// WithSize returns a copy of the format at a different size, keeping the
// language. Layouts are cheap to recreate, so per-line size variations are
// handled by laying out each line with its own format.
func (f Format) WithSize(size float64) Format {
	f.Size = size
	return f
}

// Shaper is the text-layout factory. It owns a HarfBuzz shaper and produces
// Layout objects from a font Source and a Format.
//
// A Shaper has internal mutable shaping state and therefore follows the
// single-threaded model of the rest of present: use it from the window
// event thread only.
type Shaper struct {
	hb shaping.HarfbuzzShaper
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{}
}

// Layout shapes a single line of text. Newlines are not treated specially;
// callers lay out one line per call, as the paint path draws positioned
// lines.
//
// The returned Layout is device-independent: it survives device loss and
// can be drawn any number of times.
func (s *Shaper) Layout(src *Source, str string, f Format) *Layout {
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(src.shaped),
		Size:      floatToFixed(f.Size),
		Script:    detectScript(runes),
		Language:  f.Language,
	}
	out := s.hb.Shape(input)

	ascent := fixedToFloat(out.LineBounds.Ascent)
	descent := fixedToFloat(out.LineBounds.Descent)
	gap := fixedToFloat(out.LineBounds.Gap)

	return &Layout{
		source: src,
		text:   str,
		size:   f.Size,
		width:  fixedToFloat(out.Advance),
		// Descent is negative (below the baseline).
		height: ascent - descent + gap,
		ascent: ascent,
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// callers should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
