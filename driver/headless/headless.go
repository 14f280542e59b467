// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless is a CPU driver for present. It rasterizes with gg and
// presents into an in-memory front buffer, so it needs no window system and
// no GPU. It serves tests, screenshots, and server-side rendering.
//
// Importing the package registers the driver:
//
//	import _ "github.com/gogpu/present/driver/headless"
//
// or construct it explicitly with New for dependency injection.
package headless

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/present/driver"
)

func init() {
	driver.Register(New())
}

// FramePresenter is an optional capability of driver.Window. A headless
// window that implements it receives a copy of the front buffer on every
// Present; this is how tests and screenshot tools observe output.
type FramePresenter interface {
	PresentFrame(*image.RGBA)
}

// GPU implements driver.GPU with CPU rasterization.
type GPU struct {
	logger *slog.Logger
}

// New creates the headless driver entry point.
func New() *GPU {
	return &GPU{}
}

// Name implements driver.GPU.
func (g *GPU) Name() string { return "headless" }

// SetLogger accepts the shared package logger from present.SetLogger.
func (g *GPU) SetLogger(l *slog.Logger) { g.logger = l }

// NewDevice implements driver.GPU. Headless device creation cannot fail:
// there is no adapter to be missing.
func (g *GPU) NewDevice() (driver.Device, error) {
	return &device{gpu: g}, nil
}

type device struct {
	gpu *GPU
}

func (d *device) NewSwapchain(win driver.Window, desc driver.SwapchainDesc) (driver.Swapchain, error) {
	if desc.Width < 1 || desc.Height < 1 {
		return nil, fmt.Errorf("headless: invalid swapchain size %dx%d", desc.Width, desc.Height)
	}
	return &swapchain{
		win:   win,
		tex:   &texture{w: desc.Width, h: desc.Height, ctx: gg.NewContext(desc.Width, desc.Height)},
		front: image.NewRGBA(image.Rect(0, 0, desc.Width, desc.Height)),
	}, nil
}

func (d *device) NewDrawContext() (driver.DrawContext, error) {
	return &drawContext{dpi: 96}, nil
}

func (d *device) Release() {}

// texture is a CPU render target: a gg context over a pixel buffer.
type texture struct {
	w, h int
	ctx  *gg.Context
}

func (t *texture) Size() (int, int) { return t.w, t.h }

type swapchain struct {
	win   driver.Window
	tex   *texture
	front *image.RGBA
}

func (s *swapchain) Backbuffer() (driver.Texture, error) {
	return s.tex, nil
}

// Present copies the back buffer into the front buffer and hands it to the
// window if it implements FramePresenter.
func (s *swapchain) Present() error {
	draw.Draw(s.front, s.front.Bounds(), s.tex.ctx.Image(), image.Point{}, draw.Src)
	if p, ok := s.win.(FramePresenter); ok {
		p.PresentFrame(s.front)
	}
	return nil
}

// Frontbuffer returns the last presented frame.
func (s *swapchain) Frontbuffer() *image.RGBA { return s.front }

func (s *swapchain) Release() {
	s.tex = nil
}

type drawContext struct {
	dpi    float64
	target *texture
}

func (c *drawContext) SetTarget(t driver.Texture) error {
	tex, ok := t.(*texture)
	if !ok {
		return fmt.Errorf("headless: foreign texture %T", t)
	}
	c.target = tex
	c.applyScale()
	return nil
}

func (c *drawContext) SetDPI(dpi float64) {
	if dpi > 0 {
		c.dpi = dpi
	}
	c.applyScale()
}

// applyScale maps logical units to pixels on the canvas, so render
// callbacks draw in DPI-independent coordinates.
func (c *drawContext) applyScale() {
	if c.target == nil {
		return
	}
	k := c.dpi / 96
	c.target.ctx.Identity()
	c.target.ctx.Scale(k, k)
}

func (c *drawContext) Begin() {}

func (c *drawContext) End() error { return nil }

func (c *drawContext) Canvas() *gg.Context {
	if c.target == nil {
		return nil
	}
	return c.target.ctx
}

func (c *drawContext) NewSolidBrush(col gg.RGBA) (driver.Brush, error) {
	return &brush{color: col}, nil
}

func (c *drawContext) Release() {
	c.target = nil
}

// brush is a mutable solid brush. Paint returns a gg brush that reads the
// color at draw time, so SetColor takes effect without recreating anything.
type brush struct {
	color    gg.RGBA
	released bool
}

func (b *brush) Paint() gg.Brush {
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return b.color
	}).WithName("headless-solid")
}

func (b *brush) Color() gg.RGBA { return b.color }

func (b *brush) SetColor(c gg.RGBA) { b.color = c }

func (b *brush) Release() { b.released = true }
