// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu is the GPU driver for present, built on gogpu/wgpu. It
// creates a real hardware device (Vulkan, Metal, or DX12 through wgpu) and
// presents through a gogpu host window via gpucontext.
//
// Importing the package registers the driver:
//
//	import _ "github.com/gogpu/present/driver/wgpu"
//
// Windows are adapted with NewWindow, which bridges the host window's
// texture drawer, client size, and DPI callbacks into the driver.Window
// interface.
package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/present/driver"
)

func init() {
	driver.Register(New())
}

// ErrNoAdapter is returned by NewDevice when no compatible GPU adapter is
// available on this machine.
var ErrNoAdapter = errors.New("wgpu: no compatible GPU adapter")

// GPU implements driver.GPU on gogpu/wgpu. It is adapter-independent: the
// wgpu instance is created per device request, while GPU itself holds no
// hardware state and survives any device loss.
type GPU struct{}

// New creates the wgpu driver entry point.
func New() *GPU {
	return &GPU{}
}

// Name implements driver.GPU.
func (g *GPU) Name() string { return "wgpu" }

// NewDevice implements driver.GPU. It creates an instance, requests a
// high-performance adapter, creates the logical device, and retrieves its
// command queue. Partial failures release what was created.
func (g *GPU) NewDevice() (driver.Device, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	logAdapter(adapterID)

	deviceID, err := createDevice(adapterID, "present-wgpu-device")
	if err != nil {
		releaseAdapter(adapterID)
		return nil, err
	}

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		releaseDevice(deviceID)
		releaseAdapter(adapterID)
		return nil, err
	}

	return &device{
		instance: instance,
		adapter:  adapterID,
		device:   deviceID,
		queue:    queueID,
	}, nil
}

// device implements driver.Device over wgpu core resources.
type device struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	released bool
}

func (d *device) NewSwapchain(win driver.Window, desc driver.SwapchainDesc) (driver.Swapchain, error) {
	hw, ok := win.(*Window)
	if !ok {
		return nil, fmt.Errorf("wgpu: window %T was not created by wgpu.NewWindow", win)
	}
	if desc.Width < 1 || desc.Height < 1 {
		return nil, fmt.Errorf("wgpu: invalid swapchain size %dx%d", desc.Width, desc.Height)
	}
	return newSwapchain(hw, desc), nil
}

func (d *device) NewDrawContext() (driver.DrawContext, error) {
	if d.released {
		return nil, errors.New("wgpu: draw context requested from released device")
	}
	return &drawContext{dpi: 96}, nil
}

// Release frees the wgpu resources in reverse order of creation. The queue
// goes away with the device.
func (d *device) Release() {
	if d.released {
		return
	}
	d.released = true
	releaseDevice(d.device)
	releaseAdapter(d.adapter)
	d.device = core.DeviceID{}
	d.adapter = core.AdapterID{}
	d.queue = core.QueueID{}
	d.instance = nil
}
