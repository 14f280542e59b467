package present

import "github.com/gogpu/present/driver"

// DeviceOption configures a Device during creation.
// Use functional options to customize Device behavior.
//
// Example:
//
//	// Registered driver, DPI reported by the windowing system
//	dev, err := present.NewDevice()
//
//	// Explicit driver (dependency injection, tests)
//	dev, err := present.NewDevice(present.WithGPU(fakeGPU))
type DeviceOption func(*deviceOptions)

// deviceOptions holds optional configuration for Device creation.
type deviceOptions struct {
	gpu       driver.GPU
	forcedDPI float64
}

// defaultDeviceOptions returns the default device options.
func defaultDeviceOptions() deviceOptions {
	return deviceOptions{
		gpu:       nil, // Resolved from driver.Default in NewDevice
		forcedDPI: 0,   // 0 means use the DPI reported by the window
	}
}

// WithGPU selects the GPU driver for the device instead of the registered
// default. Use this for dependency injection of a custom or fake driver.
func WithGPU(g driver.GPU) DeviceOption {
	return func(o *deviceOptions) {
		o.gpu = g
	}
}

// WithForcedDPI makes every surface on this device use a fixed DPI value,
// ignoring what the windowing system reports. Useful for deterministic
// rendering and tests. Zero disables the override.
func WithForcedDPI(dpi float64) DeviceOption {
	return func(o *deviceOptions) {
		o.forcedDPI = dpi
	}
}
