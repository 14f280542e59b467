// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// hello2d is the windowed demo for present: it renders rows of "Hello
// World!" text at increasing font sizes into a gogpu window, surviving
// resizes, DPI changes, and device loss.
//
// Usage:
//
//	hello2d [-dpi 96] [-v]
//
// -dpi forces a fixed DPI instead of the value reported by the system,
// which makes output deterministic across monitors.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/present"
	"github.com/gogpu/present/driver"
	wgpudrv "github.com/gogpu/present/driver/wgpu"
	"github.com/gogpu/present/text"
)

const (
	windowTitle = "Hello Desktop 2D"
	lineCount   = 24
	marginDips  = 10.0
)

func main() {
	forceDPI := flag.Float64("dpi", 0, "force a fixed DPI (0 = use system DPI)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		present.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*forceDPI); err != nil {
		log.Fatal(err)
	}
}

func run(forceDPI float64) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(windowTitle).
		WithSize(800, 600).
		WithContinuousRender(false))

	dev, err := present.NewDevice(present.WithForcedDPI(forceDPI))
	if err != nil {
		return err
	}

	// The frame's draw context, captured per OnDraw invocation so the
	// driver window can present into the current frame.
	var frameDC *gogpu.Context
	var surface *present.Surface

	app.OnDraw(func(dc *gogpu.Context) {
		frameDC = dc

		if surface == nil {
			win, err := wgpudrv.NewWindow(wgpudrv.WindowConfig{
				Provider: app.GPUContextProvider(),
				Drawer:   func() gpucontext.TextureDrawer { return frameDC.AsTextureDrawer() },
				Size:     func() (int, int) { return frameDC.Width(), frameDC.Height() },
			})
			if err != nil {
				log.Fatal(err)
			}
			content, err := newHelloContent(dev)
			if err != nil {
				log.Fatal(err)
			}
			surface = present.NewSurface(dev, win, content)
			content.surface = surface
			surface.AddResource(content.textBrush)
		}

		// The windowing glue delivers size changes here: compare the
		// client size against the surface and resize when they differ.
		if w, h := dc.Width(), dc.Height(); w != surface.PixelWidth() || h != surface.PixelHeight() {
			if err := surface.Resize(w, h); err != nil {
				log.Fatal(err)
			}
		}

		// Errors here are fatal: a half-initialized window must not keep
		// running, and Paint already retried recoverable loss once.
		if err := surface.Paint(); err != nil {
			log.Fatal(err)
		}
	})

	return app.Run()
}

// helloContent renders the demo: a white background and lineCount rows of
// greeting text at increasing font sizes, painted with a device brush that
// survives device loss through the surface's resource registry.
type helloContent struct {
	surface   *present.Surface
	textBrush *present.SolidBrush
	source    *text.Source
	lines     []*text.Layout
}

func newHelloContent(dev *present.Device) (*helloContent, error) {
	source, err := text.NewSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	c := &helloContent{
		textBrush: present.NewSolidBrush(gg.Black),
		source:    source,
	}

	// Layouts are device-independent: build them once and draw them on
	// every frame, whatever happens to the device underneath.
	shaper := dev.TextShaper()
	format := text.NewFormat(0, "en-US")
	for i := 0; i < lineCount; i++ {
		layout := shaper.Layout(source, "Hello World! \U0001F600", format.WithSize(8+float64(i)))
		c.lines = append(c.lines, layout)
	}
	return c, nil
}

// RenderContent implements present.Renderer.
func (c *helloContent) RenderContent(dc driver.DrawContext) error {
	canvas := dc.Canvas()
	canvas.ClearWithColor(gg.White)

	// Rasterize the text block at device resolution, then blit it onto the
	// canvas 1:1. The canvas transform is logical, so it is dropped for the
	// blit and restored afterwards.
	dpi := c.surface.DPI()
	overlay := image.NewRGBA(image.Rect(0, 0, c.surface.PixelWidth(), c.surface.PixelHeight()))
	y := marginDips
	for _, line := range c.lines {
		if err := line.Draw(overlay, marginDips, y, dpi, c.textBrush.Color().Color()); err != nil {
			return err
		}
		y += line.Height()
	}

	canvas.Identity()
	canvas.DrawImage(gg.ImageBufFromImage(overlay), 0, 0)
	canvas.Scale(dpi/96, dpi/96)
	return nil
}

// SizeChanged implements present.SizeListener.
func (c *helloContent) SizeChanged() {
	present.Logger().Debug("hello2d: size changed",
		slog.Float64("logicalWidth", c.surface.LogicalWidth()),
		slog.Float64("logicalHeight", c.surface.LogicalHeight()))
}

// DPIChanged implements present.DPIListener.
func (c *helloContent) DPIChanged() {
	present.Logger().Debug("hello2d: dpi changed", slog.Float64("dpi", c.surface.DPI()))
}
