package present

import (
	"log/slog"

	"github.com/gogpu/present/driver"
	"github.com/gogpu/present/text"
)

// Device owns the shared hardware rendering device and the two
// adapter-independent factories: the GPU driver entry point and the text
// shaping factory. One Device is typically shared by every window in the
// process; no single surface owns it.
//
// The hardware device is created lazily by EnsureInitialized and dropped by
// Reset. The factories are created once at construction and survive any
// number of device resets. Each successful (re)creation bumps a generation
// counter that surfaces use to detect staleness after device loss.
//
// Device is not safe for concurrent use; all lifecycle operations run on the
// thread that owns the window event loop.
type Device struct {
	gpu       driver.GPU
	shaper    *text.Shaper
	forcedDPI float64

	handle     driver.Device
	generation uint64
}

// NewDevice creates a Device using the given options. The hardware device
// is not created yet; that happens on the first EnsureInitialized.
//
// Without WithGPU, the driver registered via driver.Register is used;
// ErrNoDriver is returned when there is none.
func NewDevice(opts ...DeviceOption) (*Device, error) {
	o := defaultDeviceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gpu := o.gpu
	if gpu == nil {
		gpu = driver.Default()
	}
	if gpu == nil {
		return nil, ErrNoDriver
	}
	return &Device{
		gpu:       gpu,
		shaper:    text.NewShaper(),
		forcedDPI: o.forcedDPI,
	}, nil
}

// IsInitialized reports whether the hardware device currently exists.
func (d *Device) IsInitialized() bool {
	return d.handle != nil
}

// EnsureInitialized creates the hardware device if it does not exist.
// It is idempotent: when the device is already present it does nothing and
// the generation is unchanged. On success after a fresh creation the
// generation counter is incremented.
//
// Creation failure (for example, no compatible adapter) is returned as a
// *PlatformError and is not retried here; the caller decides.
func (d *Device) EnsureInitialized() error {
	if d.IsInitialized() {
		return nil
	}

	handle, err := d.gpu.NewDevice()
	if err != nil {
		return platformErr("create device", err)
	}

	d.handle = handle
	d.generation++
	Logger().Info("present: device created",
		slog.String("driver", d.gpu.Name()),
		slog.Uint64("generation", d.generation))
	return nil
}

// Reset drops the hardware device. It never fails and is idempotent. The
// factories and the generation counter are untouched; the next
// EnsureInitialized will create a fresh device and bump the generation.
func (d *Device) Reset() {
	if d.handle == nil {
		return
	}
	d.handle.Release()
	d.handle = nil
	Logger().Warn("present: device reset", slog.Uint64("generation", d.generation))
}

// Generation returns the monotonic counter identifying the current live
// device instantiation. Surfaces capture it at initialization time and
// compare it later to detect that a sibling already reset the shared device.
func (d *Device) Generation() uint64 {
	return d.generation
}

// Handle returns the live hardware device, or nil while uninitialized.
func (d *Device) Handle() driver.Device {
	return d.handle
}

// GPU returns the driver entry point this device was built on.
func (d *Device) GPU() driver.GPU {
	return d.gpu
}

// TextShaper returns the text shaping factory. It is adapter-independent
// and never reset, mirroring the GPU entry point.
func (d *Device) TextShaper() *text.Shaper {
	return d.shaper
}

// ForcedDPI returns the fixed DPI override configured with WithForcedDPI,
// or 0 when surfaces should use the DPI reported by their window.
func (d *Device) ForcedDPI() float64 {
	return d.forcedDPI
}
