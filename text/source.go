// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a parsed font file. It holds the font in two parsed forms: the
// go-text representation used for shaping and metrics, and the x/image
// representation used for glyph rasterization. Both are read-only after
// construction, so a Source is safe for concurrent use.
type Source struct {
	data   []byte
	shaped *gtfont.Font
	drawn  *opentype.Font
}

// NewSource parses TTF or OTF font data.
func NewSource(data []byte) (*Source, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for drawing: %w", err)
	}
	return &Source{data: data, shaped: face.Font, drawn: ot}, nil
}

// NewSourceFromFile reads and parses a font file from disk.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name, or the empty string if unavailable.
func (s *Source) Name() string {
	if name, err := s.drawn.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}
