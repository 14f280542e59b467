package present

import (
	"errors"
	"testing"
)

func TestNewDeviceNoDriver(t *testing.T) {
	if _, err := NewDevice(); !errors.Is(err, ErrNoDriver) {
		t.Errorf("NewDevice() error = %v, want ErrNoDriver", err)
	}
}

func TestDeviceLazyCreation(t *testing.T) {
	gpu := &fakeGPU{}
	dev, err := NewDevice(WithGPU(gpu))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if dev.IsInitialized() {
		t.Error("device initialized before EnsureInitialized")
	}
	if len(gpu.devices) != 0 {
		t.Errorf("NewDevice created %d hardware devices, want 0", len(gpu.devices))
	}
	if dev.Generation() != 0 {
		t.Errorf("Generation = %d before first init, want 0", dev.Generation())
	}
	if dev.TextShaper() == nil {
		t.Error("TextShaper is nil; factories must exist before device creation")
	}
}

func TestDeviceEnsureInitializedIdempotent(t *testing.T) {
	gpu := &fakeGPU{}
	dev, err := NewDevice(WithGPU(gpu))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := dev.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized #%d: %v", i+1, err)
		}
	}

	if len(gpu.devices) != 1 {
		t.Errorf("created %d hardware devices, want 1", len(gpu.devices))
	}
	if dev.Generation() != 1 {
		t.Errorf("Generation = %d after repeated init, want 1", dev.Generation())
	}
}

func TestDeviceGenerationCountsCreations(t *testing.T) {
	gpu := &fakeGPU{}
	dev, err := NewDevice(WithGPU(gpu))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if err := dev.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	dev.Reset()
	if dev.IsInitialized() {
		t.Error("device still initialized after Reset")
	}
	if !gpu.devices[0].released {
		t.Error("Reset did not release the hardware device")
	}
	if dev.Generation() != 1 {
		t.Errorf("Generation = %d after Reset, want 1 (bump happens on creation)", dev.Generation())
	}

	// Reset of an uninitialized device is a no-op.
	dev.Reset()

	if err := dev.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized after Reset: %v", err)
	}
	if dev.Generation() != 2 {
		t.Errorf("Generation = %d after recreation, want 2", dev.Generation())
	}
	if len(gpu.devices) != 2 {
		t.Errorf("created %d hardware devices, want 2", len(gpu.devices))
	}
}

func TestDeviceCreationFailure(t *testing.T) {
	cause := errors.New("no compatible adapter")
	gpu := &fakeGPU{newDeviceErr: cause}
	dev, err := NewDevice(WithGPU(gpu))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	err = dev.EnsureInitialized()
	var perr *PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("EnsureInitialized error = %v, want *PlatformError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap the driver cause", err)
	}
	if dev.IsInitialized() {
		t.Error("device marked initialized after creation failure")
	}
	if dev.Generation() != 0 {
		t.Errorf("Generation = %d after failed creation, want 0", dev.Generation())
	}

	// The failure is not sticky: a later attempt may succeed.
	gpu.newDeviceErr = nil
	if err := dev.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized after transient failure: %v", err)
	}
	if dev.Generation() != 1 {
		t.Errorf("Generation = %d, want 1", dev.Generation())
	}
}

func TestDeviceForcedDPI(t *testing.T) {
	gpu := &fakeGPU{}

	dev, err := NewDevice(WithGPU(gpu))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if got := dev.ForcedDPI(); got != 0 {
		t.Errorf("ForcedDPI = %v without override, want 0", got)
	}

	dev, err = NewDevice(WithGPU(gpu), WithForcedDPI(144))
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if got := dev.ForcedDPI(); got != 144 {
		t.Errorf("ForcedDPI = %v, want 144", got)
	}
}
