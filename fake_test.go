package present

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/present/driver"
)

// The fakes below implement the driver interfaces with call counters and
// scriptable failures, so the lifecycle tests can drive device loss and
// creation errors deterministically without a GPU.

type fakeGPU struct {
	newDeviceErr error

	// alwaysLose makes every swapchain, including ones created later,
	// report a lost device at present time.
	alwaysLose bool

	devices []*fakeDevice
}

func (g *fakeGPU) Name() string { return "fake" }

func (g *fakeGPU) NewDevice() (driver.Device, error) {
	if g.newDeviceErr != nil {
		return nil, g.newDeviceErr
	}
	d := &fakeDevice{gpu: g}
	g.devices = append(g.devices, d)
	return d, nil
}

type fakeDevice struct {
	gpu *fakeGPU

	newSwapchainErr   error
	newDrawContextErr error

	swapchains []*fakeSwapchain
	contexts   []*fakeDrawContext
	released   bool
}

func (d *fakeDevice) NewSwapchain(win driver.Window, desc driver.SwapchainDesc) (driver.Swapchain, error) {
	if d.newSwapchainErr != nil {
		return nil, d.newSwapchainErr
	}
	sc := &fakeSwapchain{gpu: d.gpu, desc: desc}
	d.swapchains = append(d.swapchains, sc)
	return sc, nil
}

func (d *fakeDevice) NewDrawContext() (driver.DrawContext, error) {
	if d.newDrawContextErr != nil {
		return nil, d.newDrawContextErr
	}
	dc := &fakeDrawContext{}
	d.contexts = append(d.contexts, dc)
	return dc, nil
}

func (d *fakeDevice) Release() { d.released = true }

type fakeSwapchain struct {
	gpu  *fakeGPU
	desc driver.SwapchainDesc

	// presentErrs is consumed one per Present call; nil entries mean
	// success, and an exhausted script always succeeds.
	presentErrs  []error
	presentCalls int
	released     bool
}

func (s *fakeSwapchain) Backbuffer() (driver.Texture, error) {
	return &fakeTexture{w: s.desc.Width, h: s.desc.Height}, nil
}

func (s *fakeSwapchain) Present() error {
	s.presentCalls++
	if s.gpu != nil && s.gpu.alwaysLose {
		return deviceLost()
	}
	if len(s.presentErrs) == 0 {
		return nil
	}
	err := s.presentErrs[0]
	s.presentErrs = s.presentErrs[1:]
	return err
}

func (s *fakeSwapchain) Release() { s.released = true }

type fakeTexture struct {
	w, h int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeDrawContext struct {
	target driver.Texture
	dpi    float64

	endErrs    []error
	beginCalls int
	endCalls   int
	released   bool

	brushes []*fakeBrush
}

func (c *fakeDrawContext) SetTarget(t driver.Texture) error {
	c.target = t
	return nil
}

func (c *fakeDrawContext) SetDPI(dpi float64) { c.dpi = dpi }

func (c *fakeDrawContext) Begin() { c.beginCalls++ }

func (c *fakeDrawContext) End() error {
	c.endCalls++
	if len(c.endErrs) == 0 {
		return nil
	}
	err := c.endErrs[0]
	c.endErrs = c.endErrs[1:]
	return err
}

func (c *fakeDrawContext) Canvas() *gg.Context { return nil }

func (c *fakeDrawContext) NewSolidBrush(col gg.RGBA) (driver.Brush, error) {
	b := &fakeBrush{color: col}
	c.brushes = append(c.brushes, b)
	return b, nil
}

func (c *fakeDrawContext) Release() { c.released = true }

type fakeBrush struct {
	color         gg.RGBA
	setColorCalls int
	released      bool
}

func (b *fakeBrush) Paint() gg.Brush { return gg.Solid(b.color) }

func (b *fakeBrush) Color() gg.RGBA { return b.color }

func (b *fakeBrush) SetColor(c gg.RGBA) {
	b.color = c
	b.setColorCalls++
}

func (b *fakeBrush) Release() { b.released = true }

// fakeWindow implements driver.Window and driver.BoundsSetter.
type fakeWindow struct {
	w, h   int
	dpi    float64
	bounds []driver.Rect
}

func (w *fakeWindow) Size() (int, int) { return w.w, w.h }

func (w *fakeWindow) DPI() float64 { return w.dpi }

func (w *fakeWindow) SetBounds(r driver.Rect) { w.bounds = append(w.bounds, r) }

// countingRenderer records RenderContent calls and the surface state seen by
// the optional listener hooks.
type countingRenderer struct {
	surface *Surface

	renderCalls int
	renderErr   error

	sizeChanges []int // PixelWidth observed at each SizeChanged
	dpiChanges  []float64
}

func (r *countingRenderer) RenderContent(dc driver.DrawContext) error {
	r.renderCalls++
	return r.renderErr
}

func (r *countingRenderer) SizeChanged() {
	r.sizeChanges = append(r.sizeChanges, r.surface.PixelWidth())
}

func (r *countingRenderer) DPIChanged() {
	r.dpiChanges = append(r.dpiChanges, r.surface.DPI())
}

func deviceLost() error {
	return fmt.Errorf("fake: adapter removed: %w", driver.ErrDeviceLost)
}

var (
	solidRed  = gg.RGB(1, 0, 0)
	solidBlue = gg.RGB(0, 0, 1)
)
