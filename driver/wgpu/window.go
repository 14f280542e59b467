// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/present/driver"
)

// WindowConfig bridges a gogpu host window into the driver.Window
// interface. The callbacks are invoked on the window event thread.
type WindowConfig struct {
	// Provider is the host's GPU device provider, from
	// gogpu.App.GPUContextProvider. A nil device from the provider is
	// treated as device loss.
	Provider gpucontext.DeviceProvider

	// Drawer returns the texture drawer for the frame being presented,
	// from gogpu.Context.AsTextureDrawer. Required.
	Drawer func() gpucontext.TextureDrawer

	// Size returns the client area in physical pixels. Required.
	Size func() (width, height int)

	// DPI returns the monitor DPI. Optional; 96 is assumed when nil.
	DPI func() float64

	// SetBounds repositions the window. Optional.
	SetBounds func(driver.Rect)
}

// Window adapts a gogpu host window for use with present.NewSurface.
type Window struct {
	cfg WindowConfig
}

// NewWindow validates the config and returns the window adapter.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if cfg.Provider == nil {
		return nil, errors.New("wgpu: WindowConfig.Provider is required")
	}
	if cfg.Drawer == nil {
		return nil, errors.New("wgpu: WindowConfig.Drawer is required")
	}
	if cfg.Size == nil {
		return nil, errors.New("wgpu: WindowConfig.Size is required")
	}
	return &Window{cfg: cfg}, nil
}

// Size implements driver.Window.
func (w *Window) Size() (int, int) {
	return w.cfg.Size()
}

// DPI implements driver.Window.
func (w *Window) DPI() float64 {
	if w.cfg.DPI == nil {
		return 96
	}
	return w.cfg.DPI()
}

// SetBounds implements driver.BoundsSetter. Without a SetBounds callback
// the host window keeps whatever bounds the windowing system chose.
func (w *Window) SetBounds(r driver.Rect) {
	if w.cfg.SetBounds != nil {
		w.cfg.SetBounds(r)
	}
}

// lost reports whether the host's GPU device is gone.
func (w *Window) lost() bool {
	return w.cfg.Provider.Device() == nil
}
