// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/present"
)

// logAdapter reports the selected adapter through the shared logger.
func logAdapter(adapterID core.AdapterID) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		present.Logger().Warn("wgpu: adapter info unavailable", slog.Any("err", err))
		return
	}
	present.Logger().Info("wgpu: adapter selected",
		slog.String("name", info.Name),
		slog.Any("type", info.DeviceType),
		slog.Any("backend", info.Backend),
		slog.String("driver", info.Driver))
}

// createDevice requests a logical device with default limits.
func createDevice(adapterID core.AdapterID, label string) (core.DeviceID, error) {
	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:          label,
		RequiredLimits: types.DefaultLimits(),
	})
	if err != nil {
		return core.DeviceID{}, fmt.Errorf("wgpu: create device: %w", err)
	}
	return deviceID, nil
}

func getDeviceQueue(deviceID core.DeviceID) (core.QueueID, error) {
	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		return core.QueueID{}, fmt.Errorf("wgpu: get device queue: %w", err)
	}
	return queueID, nil
}

func releaseDevice(deviceID core.DeviceID) {
	if deviceID.IsZero() {
		return
	}
	if err := core.DeviceDrop(deviceID); err != nil {
		present.Logger().Warn("wgpu: release device", slog.Any("err", err))
	}
}

func releaseAdapter(adapterID core.AdapterID) {
	if adapterID.IsZero() {
		return
	}
	if err := core.AdapterDrop(adapterID); err != nil {
		present.Logger().Warn("wgpu: release adapter", slog.Any("err", err))
	}
}
