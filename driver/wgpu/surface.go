// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/present/driver"
)

// textureDestroyer matches the Destroy method of host GPU textures.
type textureDestroyer interface {
	Destroy()
}

// texture is the CPU staging target: drawing goes into a gg context and is
// uploaded to the GPU on Present.
type texture struct {
	w, h int
	ctx  *gg.Context
}

func (t *texture) Size() (int, int) { return t.w, t.h }

// swapchain implements driver.Swapchain by uploading the staged pixels as a
// host texture and drawing it through the frame's texture drawer. The GPU
// texture is created lazily on the first Present and updated in place on
// later frames.
type swapchain struct {
	win    *Window
	tex    *texture
	gpuTex any
}

func newSwapchain(win *Window, desc driver.SwapchainDesc) *swapchain {
	return &swapchain{
		win: win,
		tex: &texture{
			w:   desc.Width,
			h:   desc.Height,
			ctx: gg.NewContext(desc.Width, desc.Height),
		},
	}
}

func (s *swapchain) Backbuffer() (driver.Texture, error) {
	if s.tex == nil {
		return nil, errors.New("wgpu: swapchain released")
	}
	return s.tex, nil
}

func (s *swapchain) Present() error {
	if s.win.lost() {
		return fmt.Errorf("wgpu: host device gone: %w", driver.ErrDeviceLost)
	}
	drawer := s.win.cfg.Drawer()
	if drawer == nil {
		return fmt.Errorf("wgpu: no frame drawer: %w", driver.ErrDeviceLost)
	}

	data := s.tex.ctx.ResizeTarget().Data()

	if s.gpuTex == nil {
		creator := drawer.TextureCreator()
		if creator == nil {
			return errors.New("wgpu: drawer has no texture creator")
		}
		// NewTextureFromRGBA waits for the GPU internally, so prior frames
		// are complete when it returns.
		tex, err := creator.NewTextureFromRGBA(s.tex.w, s.tex.h, data)
		if err != nil {
			return s.classify("create texture", err)
		}
		// gg pixel data is premultiplied alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		s.gpuTex = tex
	} else if updater, ok := s.gpuTex.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return s.classify("update texture", err)
		}
	}

	gpuTex, ok := s.gpuTex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("wgpu: host returned unusable texture %T", s.gpuTex)
	}
	if err := drawer.DrawTexture(gpuTex, 0, 0); err != nil {
		return s.classify("draw texture", err)
	}
	return nil
}

// classify wraps a host error, folding in device loss when the provider's
// device disappeared underneath the failing call.
func (s *swapchain) classify(op string, err error) error {
	if s.win.lost() {
		return fmt.Errorf("wgpu: %s: %v: %w", op, err, driver.ErrDeviceLost)
	}
	return fmt.Errorf("wgpu: %s: %w", op, err)
}

func (s *swapchain) Release() {
	if d, ok := s.gpuTex.(textureDestroyer); ok {
		d.Destroy()
	}
	s.gpuTex = nil
	s.tex = nil
}

// drawContext implements driver.DrawContext over the staging texture. The
// canvas scale maps logical units to pixels at the current DPI.
type drawContext struct {
	dpi    float64
	target *texture
}

func (c *drawContext) SetTarget(t driver.Texture) error {
	tex, ok := t.(*texture)
	if !ok {
		return fmt.Errorf("wgpu: foreign texture %T", t)
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

// brush is a mutable solid brush; Paint reads the color at draw time so
// SetColor takes effect on the next draw without recreating the brush.
type brush struct {
	color gg.RGBA
}

func (b *brush) Paint() gg.Brush {
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return b.color
	}).WithName("wgpu-solid")
}

func (b *brush) Color() gg.RGBA { return b.color }

func (b *brush) SetColor(c gg.RGBA) { b.color = c }

func (b *brush) Release() {}
