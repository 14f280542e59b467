package present

import (
	"errors"
	"log/slog"

	"github.com/gogpu/present/driver"
)

// Renderer produces the content of a surface. RenderContent is invoked once
// per successful frame with the live draw context; it must not block or do
// unbounded work, since it runs inline on the window event thread.
type Renderer interface {
	RenderContent(dc driver.DrawContext) error
}

// SizeListener is an optional Renderer capability. SizeChanged is invoked
// after a resize has rebuilt the surface, with the new size already visible
// through the surface accessors.
type SizeListener interface {
	SizeChanged()
}

// DPIListener is an optional Renderer capability. DPIChanged is invoked
// after a DPI change has been applied to the draw context, so the listener
// can re-derive layout from the new logical size.
type DPIListener interface {
	DPIChanged()
}

// Surface manages one window's presentation state: a swapchain and a draw
// context bound to a shared Device, plus a registry of device-dependent
// resources scoped to that context.
//
// The swapchain and draw context are created lazily on the first paint,
// rebuilt on resize, and dropped together on device loss. The two handles
// are always both present or both absent. A generation captured from the
// device at initialization time tells the surface whether its device-scoped
// state is still valid; a mismatch means a sibling surface already reset and
// reinitialized the shared device.
//
// Surface is not safe for concurrent use; every operation runs on the
// thread that owns the window event loop.
type Surface struct {
	device   *Device
	win      driver.Window
	renderer Renderer

	capturedGen uint64
	pixelW      int
	pixelH      int
	dpi         float64
	swapchain   driver.Swapchain
	dc          driver.DrawContext
	resources   Registry
}

// NewSurface creates a surface for a window. The initial pixel size comes
// from the window's current client area (clamped to at least 1x1) and the
// initial DPI from the window's monitor, unless the device carries a forced
// DPI override. Nothing device-dependent is created yet.
func NewSurface(dev *Device, win driver.Window, r Renderer) *Surface {
	w, h := win.Size()
	dpi := dev.ForcedDPI()
	if dpi == 0 {
		dpi = win.DPI()
	}
	if dpi <= 0 {
		dpi = 96
	}
	return &Surface{
		device:   dev,
		win:      win,
		renderer: r,
		pixelW:   max(1, w),
		pixelH:   max(1, h),
		dpi:      dpi,
	}
}

// AddResource registers a device-dependent resource with this surface. The
// resource is initialized on the next paint and reinitialized whenever the
// draw context is replaced. The resource must outlive the surface.
func (s *Surface) AddResource(res Resource) {
	s.resources.Add(res)
}

// Device returns the shared device this surface renders with.
func (s *Surface) Device() *Device {
	return s.device
}

// Window returns the window handle this surface presents into.
func (s *Surface) Window() driver.Window {
	return s.win
}

// DrawContext returns the live draw context, or nil while the surface is
// uninitialized.
func (s *Surface) DrawContext() driver.DrawContext {
	return s.dc
}

// PixelWidth returns the surface width in physical pixels.
func (s *Surface) PixelWidth() int { return s.pixelW }

// PixelHeight returns the surface height in physical pixels.
func (s *Surface) PixelHeight() int { return s.pixelH }

// DPI returns the surface's current DPI (96 means 100% scale).
func (s *Surface) DPI() float64 { return s.dpi }

// LogicalWidth returns the width in logical (DPI-independent) units:
// pixels * 96 / dpi.
func (s *Surface) LogicalWidth() float64 {
	return float64(s.pixelW) * 96 / s.dpi
}

// LogicalHeight returns the height in logical (DPI-independent) units.
func (s *Surface) LogicalHeight() float64 {
	return float64(s.pixelH) * 96 / s.dpi
}

// EnsureInitialized brings the surface to a paintable state.
//
// When the draw context already exists, only the resource registry is swept
// so resources added since the last paint get initialized. Otherwise the
// shared device is initialized first, its generation captured, and then the
// swapchain and draw context are built at the current pixel size and DPI,
// the backbuffer bound as the render target, and the registry swept.
func (s *Surface) EnsureInitialized() error {
	if s.dc != nil {
		return s.resources.EnsureInitialized(s.dc)
	}

	if err := s.device.EnsureInitialized(); err != nil {
		return err
	}
	s.capturedGen = s.device.Generation()

	dev := s.device.Handle()
	desc := driver.DefaultSwapchainDesc(s.pixelW, s.pixelH)
	sc, err := dev.NewSwapchain(s.win, desc)
	if err != nil {
		return platformErr("create swapchain", err)
	}

	dc, err := dev.NewDrawContext()
	if err != nil {
		sc.Release()
		return platformErr("create draw context", err)
	}
	dc.SetDPI(s.dpi)

	tex, err := sc.Backbuffer()
	if err != nil {
		dc.Release()
		sc.Release()
		return platformErr("get backbuffer", err)
	}
	if err := dc.SetTarget(tex); err != nil {
		dc.Release()
		sc.Release()
		return platformErr("set render target", err)
	}

	if err := s.resources.EnsureInitialized(dc); err != nil {
		s.resources.ResetAll()
		dc.Release()
		sc.Release()
		return err
	}

	s.swapchain = sc
	s.dc = dc
	Logger().Debug("present: surface initialized",
		slog.Int("width", s.pixelW),
		slog.Int("height", s.pixelH),
		slog.Float64("dpi", s.dpi),
		slog.Uint64("generation", s.capturedGen))
	return nil
}

// Resize reacts to a window size change, given the new client size in
// physical pixels. An unchanged size is a no-op. Otherwise the stored size
// is updated first, the swapchain and draw context are torn down and rebuilt
// at the new size, context-scoped resources are reinitialized, and finally
// the renderer's SizeChanged hook (if any) runs with the new size already
// visible.
func (s *Surface) Resize(pixelWidth, pixelHeight int) error {
	w, h := max(1, pixelWidth), max(1, pixelHeight)
	if w == s.pixelW && h == s.pixelH {
		return nil
	}
	s.pixelW, s.pixelH = w, h

	// The old draw context goes away with the surface, so the resources
	// created from it must be rebuilt against the new one.
	s.ResetSurface()
	s.resources.ResetAll()

	if err := s.EnsureInitialized(); err != nil {
		return err
	}

	if l, ok := s.renderer.(SizeListener); ok {
		l.SizeChanged()
	}
	return nil
}

// SetDPI reacts to a DPI change, given the new DPI and the window bounds
// suggested by the windowing system for the new scale. A forced device DPI
// overrides newDPI entirely. When the effective DPI differs from the current
// one, the scale is stored, pushed to the live draw context if present (the
// swapchain is untouched: DPI affects only logical-to-physical mapping), and
// the renderer's DPIChanged hook runs. The window is repositioned to bounds
// in every case.
func (s *Surface) SetDPI(newDPI float64, bounds driver.Rect) {
	if forced := s.device.ForcedDPI(); forced != 0 {
		newDPI = forced
	}
	if newDPI > 0 && newDPI != s.dpi {
		s.dpi = newDPI
		if s.dc != nil {
			s.dc.SetDPI(newDPI)
		}
		if l, ok := s.renderer.(DPIListener); ok {
			l.DPIChanged()
		}
	}
	if bs, ok := s.win.(driver.BoundsSetter); ok {
		bs.SetBounds(bounds)
	}
}

// Paint renders and presents one frame. Device loss is recovered from
// exactly once: the device and surface are reset and the frame retried. A
// second failure of any kind propagates to the caller.
func (s *Surface) Paint() error {
	err := s.paintOnce()
	if err == nil || !errors.Is(err, ErrDeviceLost) {
		return err
	}

	Logger().Warn("present: device lost, retrying frame", slog.Any("err", err))
	s.ResetDevice()
	return s.paintOnce()
}

// paintOnce runs a single frame: initialize, begin, render callback, end,
// present. The callback always runs to completion; the end-draw and present
// statuses are only checked afterwards, so a device about to be reported
// lost still sees a full frame's worth of commands.
func (s *Surface) paintOnce() error {
	if err := s.EnsureInitialized(); err != nil {
		return err
	}

	s.dc.Begin()
	if err := s.renderer.RenderContent(s.dc); err != nil {
		return platformErr("render content", err)
	}
	if err := s.dc.End(); err != nil {
		return platformErr("end draw", err)
	}
	if err := s.swapchain.Present(); err != nil {
		return platformErr("present", err)
	}
	return nil
}

// ResetSurface drops the draw context and swapchain together. It never
// fails and may be called at any time, including when the surface is
// already uninitialized.
func (s *Surface) ResetSurface() {
	if s.dc != nil {
		s.dc.Release()
		s.dc = nil
	}
	if s.swapchain != nil {
		s.swapchain.Release()
		s.swapchain = nil
	}
}

// ResetDevice tears down everything device-scoped this surface holds: the
// swapchain and draw context, then every registered resource. The shared
// device itself is reset only if this surface's captured generation still
// matches the device generation; a mismatch means a sibling surface already
// reset and reinitialized it, and resetting again would pull a fresh device
// out from under that sibling. Either way this surface rebuilds its own
// state on the next paint.
func (s *Surface) ResetDevice() {
	s.ResetSurface()
	s.resources.ResetAll()
	if s.capturedGen == s.device.Generation() {
		s.device.Reset()
	}
}
