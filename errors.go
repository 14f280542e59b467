package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/present/driver"
)

// ErrDeviceLost reports that the rendering device was invalidated and must
// be recreated. It is the only error Paint recovers from: the surface resets
// the device and retries the frame exactly once. All other errors propagate
// to the caller unretried.
//
// ErrDeviceLost is the driver sentinel re-exported for convenience; test for
// it with errors.Is.
var ErrDeviceLost = driver.ErrDeviceLost

// ErrNoDriver is returned when a device is created without a GPU driver:
// none was passed via WithGPU and none is registered. Enable a driver with a
// blank import, e.g.
//
//	import _ "github.com/gogpu/present/driver/wgpu"
var ErrNoDriver = errors.New("present: no GPU driver registered")

// PlatformError wraps a failing driver or windowing call that is not a
// recognized device-loss signal. It is never retried by this package.
type PlatformError struct {
	// Op names the failing operation, e.g. "create swapchain".
	Op string

	// Err is the underlying driver error.
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("present: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// platformErr classifies a driver error. Device-loss signals pass through
// unchanged so that errors.Is(err, ErrDeviceLost) keeps working; anything
// else is wrapped as a PlatformError.
func platformErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrDeviceLost) {
		return err
	}
	return &PlatformError{Op: op, Err: err}
}
