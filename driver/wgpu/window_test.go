// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/present/driver"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider. A nil device simulates
// device loss.
type mockProvider struct {
	device gpucontext.Device
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

func validConfig() WindowConfig {
	return WindowConfig{
		Provider: &mockProvider{device: &mockDevice{}},
		Drawer:   func() gpucontext.TextureDrawer { return nil },
		Size:     func() (int, int) { return 640, 480 },
	}
}

func TestNewWindowValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WindowConfig)
	}{
		{"nil provider", func(c *WindowConfig) { c.Provider = nil }},
		{"nil drawer", func(c *WindowConfig) { c.Drawer = nil }},
		{"nil size", func(c *WindowConfig) { c.Size = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if _, err := NewWindow(cfg); err == nil {
				t.Error("NewWindow accepted an incomplete config")
			}
		})
	}

	if _, err := NewWindow(validConfig()); err != nil {
		t.Errorf("NewWindow rejected a valid config: %v", err)
	}
}

func TestWindowDefaults(t *testing.T) {
	win, err := NewWindow(validConfig())
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}

	if w, h := win.Size(); w != 640 || h != 480 {
		t.Errorf("Size = %dx%d, want 640x480", w, h)
	}
	if got := win.DPI(); got != 96 {
		t.Errorf("DPI = %v without callback, want 96", got)
	}

	// SetBounds without a callback is a no-op, not a panic.
	win.SetBounds(driver.Rect{X: 1, Y: 2, Width: 3, Height: 4})
}

func TestWindowCallbacks(t *testing.T) {
	var gotBounds []driver.Rect
	cfg := validConfig()
	cfg.DPI = func() float64 { return 144 }
	cfg.SetBounds = func(r driver.Rect) { gotBounds = append(gotBounds, r) }

	win, err := NewWindow(cfg)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if got := win.DPI(); got != 144 {
		t.Errorf("DPI = %v, want 144", got)
	}

	want := driver.Rect{X: 10, Y: 20, Width: 800, Height: 600}
	win.SetBounds(want)
	if len(gotBounds) != 1 || gotBounds[0] != want {
		t.Errorf("SetBounds forwarded %v, want one call with %v", gotBounds, want)
	}
}

func TestWindowLost(t *testing.T) {
	provider := &mockProvider{device: &mockDevice{}}
	cfg := validConfig()
	cfg.Provider = provider

	win, err := NewWindow(cfg)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if win.lost() {
		t.Error("window reports loss while the provider has a device")
	}

	provider.device = nil
	if !win.lost() {
		t.Error("window does not report loss after the device vanished")
	}
}
