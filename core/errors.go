package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Result errors a Driver wraps so creation failures can be classified.
var (
	ErrLayerNotPresent     = errors.New("layer not present")
	ErrExtensionNotPresent = errors.New("extension not present")
	ErrFeatureNotPresent   = errors.New("feature not present")
)

// Reason is the classified cause of an instance or device creation failure.
type Reason int

// Known creation failure reasons
const (
	ReasonUnknown Reason = iota
	ReasonLayerNotPresent
	ReasonExtensionNotPresent
	ReasonFeatureNotPresent
)

func (r Reason) String() string {
	switch r {
	case ReasonLayerNotPresent:
		return "layer not present"
	case ReasonExtensionNotPresent:
		return "extension not present"
	case ReasonFeatureNotPresent:
		return "feature not present"
	default:
		return "unknown reason"
	}
}

// classifyInstance maps instance creation failures. Only missing layers
// and extensions are distinguished.
func classifyInstance(err error) Reason {
	switch {
	case errors.Is(err, ErrLayerNotPresent):
		return ReasonLayerNotPresent
	case errors.Is(err, ErrExtensionNotPresent):
		return ReasonExtensionNotPresent
	default:
		return ReasonUnknown
	}
}

// classifyDevice maps logical device creation failures. Only missing
// extensions and features are distinguished.
func classifyDevice(err error) Reason {
	switch {
	case errors.Is(err, ErrExtensionNotPresent):
		return ReasonExtensionNotPresent
	case errors.Is(err, ErrFeatureNotPresent):
		return ReasonFeatureNotPresent
	default:
		return ReasonUnknown
	}
}

// StageError is implemented by every bootstrap failure.
type StageError interface {
	error

	// Stage names the bootstrap step that failed.
	Stage() string
}

// WindowCreationError is returned when the native window cannot be opened.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("window creation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *WindowCreationError) Unwrap() error { return e.Err }

// Stage implements StageError
func (e *WindowCreationError) Stage() string { return "window" }

// InstanceCreationError is returned when the API instance cannot be created.
type InstanceCreationError struct {
	Reason Reason
	Err    error
}

func (e *InstanceCreationError) Error() string {
	return fmt.Sprintf("instance creation failed (%s): %v", e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *InstanceCreationError) Unwrap() error { return e.Err }

// Stage implements StageError
func (e *InstanceCreationError) Stage() string { return "instance" }

// SurfaceCreationError is returned when the window surface cannot be created.
type SurfaceCreationError struct {
	Err error
}

func (e *SurfaceCreationError) Error() string {
	return fmt.Sprintf("surface creation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *SurfaceCreationError) Unwrap() error { return e.Err }

// Stage implements StageError
func (e *SurfaceCreationError) Stage() string { return "surface" }

// NoSuitableDeviceError is returned when no physical device qualifies.
type NoSuitableDeviceError struct {
	// Candidates is the number of devices that were examined.
	Candidates int
	// Err is set when enumeration itself failed.
	Err error
}

func (e *NoSuitableDeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no suitable physical device: %v", e.Err)
	}
	return fmt.Sprintf("no suitable physical device among %d candidates", e.Candidates)
}

// Unwrap returns the underlying error
func (e *NoSuitableDeviceError) Unwrap() error { return e.Err }

// Stage implements StageError
func (e *NoSuitableDeviceError) Stage() string { return "physical device" }

// DeviceCreationError is returned when the logical device cannot be created.
type DeviceCreationError struct {
	Reason Reason
	Err    error
}

func (e *DeviceCreationError) Error() string {
	return fmt.Sprintf("logical device creation failed (%s): %v", e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *DeviceCreationError) Unwrap() error { return e.Err }

// Stage implements StageError
func (e *DeviceCreationError) Stage() string { return "logical device" }
