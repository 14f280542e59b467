// Package present manages the lifecycle of hardware-accelerated 2D
// rendering surfaces bound to on-screen windows.
//
// # Overview
//
// A graphics device can be invalidated at any time: the adapter is removed,
// the driver resets, the machine switches GPUs. present owns the exacting
// state machine that deals with this: a lazily created Device shared by all
// windows, a per-window Surface (swapchain plus draw context), and a
// registry of device-dependent resources that are rebuilt whenever the
// device or surface is recreated.
//
// The typical shape of an application:
//
//	dev, err := present.NewDevice()            // driver via blank import
//	surface := present.NewSurface(dev, win, renderer)
//	surface.AddResource(textBrush)
//
//	// From the window event loop:
//	surface.Resize(w, h)                       // on size change
//	surface.SetDPI(dpi, bounds)                // on monitor DPI change
//	err := surface.Paint()                     // on paint request
//
// Paint recovers from device loss automatically: the device and surface are
// reset and the frame retried exactly once. Several surfaces may share one
// Device; a generation counter guarantees a lost device is reset by exactly
// one of them, while the others simply rebuild against the fresh device.
//
// # Drivers
//
// Hardware access goes through the driver package. Enable the wgpu driver
// with a blank import:
//
//	import _ "github.com/gogpu/present/driver/wgpu"
//
// The headless driver renders into memory and needs no window system; it is
// useful for tests and screenshots.
//
// # Threading
//
// present is single-threaded by design: every operation runs synchronously
// on the thread that owns the window event loop, and render callbacks run
// inline. There is no locking because there is no concurrent mutation.
package present
