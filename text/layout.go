// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Layout is a shaped line of text: the glyph metrics computed by the shaper
// plus everything needed to draw the line. It holds no device resources.
type Layout struct {
	source *Source
	text   string
	size   float64
	width  float64
	height float64
	ascent float64
}

// Text returns the source string.
func (l *Layout) Text() string { return l.text }

// Width returns the advance width of the line in logical units.
func (l *Layout) Width() float64 { return l.width }

// Height returns the line height (ascent - descent + line gap) in logical
// units. Stacked lines are positioned by accumulating this value.
func (l *Layout) Height() float64 { return l.height }

// Ascent returns the distance from the top of the line to the baseline.
func (l *Layout) Ascent() float64 { return l.ascent }

// Draw renders the line into dst with its top-left corner at (x, y) in
// logical units. The dpi parameter maps logical units to dst pixels (96
// draws at 1:1).
func (l *Layout) Draw(dst draw.Image, x, y float64, dpi float64, col color.Color) error {
	face, err := opentype.NewFace(l.source.drawn, &opentype.FaceOptions{
		Size:    l.size,
		DPI:     dpi * 72 / 96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	scale := dpi / 96
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * scale * 64),
			Y: fixed.Int26_6((y + l.ascent) * scale * 64),
		},
	}
	d.DrawString(l.text)
	return nil
}
