// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the hardware abstraction used by present.
//
// A GPU is the adapter-independent entry point: it can create hardware
// Devices, which in turn create per-window Swapchains and DrawContexts.
// Driver implementations live in subpackages (wgpu, headless) and register
// themselves via Register, typically from an init function enabled by a
// blank import:
//
//	import _ "github.com/gogpu/present/driver/wgpu"
package driver

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// ErrDeviceLost reports that the hardware device or its swapchain has been
// invalidated (adapter removed, driver reset) and must be recreated before
// further use. Drivers wrap this sentinel, so callers test for it with
// errors.Is. It is the only error class the paint loop recovers from.
var ErrDeviceLost = errors.New("driver: device lost")

// GPU is a graphics driver entry point. It is adapter-independent and
// survives device loss: a GPU is created once and never reset, while the
// Devices it creates may come and go.
type GPU interface {
	// Name returns the driver identifier (e.g., "wgpu", "headless").
	Name() string

	// NewDevice creates a hardware rendering device. Each call produces an
	// independent device; failure (e.g., no compatible adapter) is returned
	// to the caller and is not retried by the driver.
	NewDevice() (Device, error)
}

// Device is a hardware rendering device. A single Device may serve several
// windows, each with its own Swapchain and DrawContext.
type Device interface {
	// NewSwapchain creates a presentable buffer chain for a window.
	NewSwapchain(win Window, desc SwapchainDesc) (Swapchain, error)

	// NewDrawContext creates a drawing context bound to this device.
	// The context has no target until SetTarget is called.
	NewDrawContext() (DrawContext, error)

	// Release frees the device. The Device must not be used afterwards.
	Release()
}

// Window is the handle a swapchain presents into. The windowing glue
// implements it; the core only reads the client size and monitor DPI.
type Window interface {
	// Size returns the client area in physical pixels.
	Size() (width, height int)

	// DPI returns the current monitor DPI (96 means 100% scale).
	DPI() float64
}

// BoundsSetter is an optional Window capability. Windows that support
// programmatic repositioning implement it; DPI-change handling uses it to
// apply the bounds suggested by the windowing system.
type BoundsSetter interface {
	SetBounds(Rect)
}

// Rect is a window rectangle in physical pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// SwapchainDesc describes a swapchain to be created.
type SwapchainDesc struct {
	// Width and Height are the buffer size in physical pixels, at least 1.
	Width, Height int

	// Format is the buffer pixel format.
	Format gputypes.TextureFormat

	// BufferCount is the number of back buffers.
	BufferCount int
}

// DefaultSwapchainDesc returns the descriptor used by present: a single
// BGRA8 back buffer with discard semantics, sized w by h.
func DefaultSwapchainDesc(w, h int) SwapchainDesc {
	return SwapchainDesc{
		Width:       w,
		Height:      h,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		BufferCount: 1,
	}
}

// Swapchain is a presentable buffer chain bound to one window.
type Swapchain interface {
	// Backbuffer returns the texture drawing is directed into.
	Backbuffer() (Texture, error)

	// Present makes the back buffer visible. A lost device is reported by
	// an error wrapping ErrDeviceLost.
	Present() error

	// Release frees the swapchain.
	Release()
}

// Texture is a device-created image that can serve as a render target.
type Texture interface {
	// Size returns the texture size in physical pixels.
	Size() (width, height int)
}

// DrawContext issues 2D draw commands against a target texture. One context
// serves one window; it is recreated together with the swapchain.
type DrawContext interface {
	// SetTarget binds a texture as the render target. Drawing before a
	// target is bound is invalid.
	SetTarget(t Texture) error

	// SetDPI sets the DPI used to map logical units to pixels. It affects
	// only the coordinate scale, never the target.
	SetDPI(dpi float64)

	// Begin starts a frame.
	Begin()

	// End finishes a frame and reports any deferred drawing error. A lost
	// device is reported by an error wrapping ErrDeviceLost.
	End() error

	// Canvas returns the drawing surface for the current target, with
	// coordinates in logical (DPI-scaled) units. Nil until a target is set.
	Canvas() *gg.Context

	// NewSolidBrush creates a device-side solid color brush.
	NewSolidBrush(c gg.RGBA) (Brush, error)

	// Release frees the context.
	Release()
}

// Brush is a device-side paint object created by a DrawContext.
type Brush interface {
	// Paint returns the live gg brush for use with Context.SetFillBrush.
	Paint() gg.Brush

	// Color returns the current brush color.
	Color() gg.RGBA

	// SetColor updates the brush color in place, affecting subsequent
	// draws without recreating the brush.
	SetColor(c gg.RGBA)

	// Release frees the brush.
	Release()
}
