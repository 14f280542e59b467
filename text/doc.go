// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text is the text-layout factory used by present.
//
// A Shaper is created once per Device and never reset: like the GPU driver
// entry point, it is adapter-independent and survives device loss. Layouts
// it produces carry shaped glyph metrics (via go-text/typesetting HarfBuzz
// shaping) and can be drawn into any image, including a surface's canvas.
package text
