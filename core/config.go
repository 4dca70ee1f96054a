package core

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Bootstrap BootstrapOptions
	Time      TimeConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the interval between window event polls.
	// Zero polls as fast as possible.
	EventPollDelay time.Duration
}

// WindowConfiguration describes the native window to open
type WindowConfiguration struct {
	Width     uint32
	Height    uint32
	Title     string
	Resizable bool
}

// BootstrapOptions are the inputs of one Bootstrap call
type BootstrapOptions struct {
	Window WindowConfiguration

	// Validation enables the validation layer and the diagnostics hook.
	Validation bool

	// DeviceFilter, when set, restricts selection to devices
	// whose name contains it (case insensitive).
	DeviceFilter string
}

// Validate checks that the options can describe a window. Dimensions
// must fit in a signed 32 bit integer.
func (o BootstrapOptions) Validate() error {
	if o.Window.Width == 0 || o.Window.Height == 0 {
		return errors.New("window dimensions must be positive")
	}
	if o.Window.Width > math.MaxInt32 || o.Window.Height > math.MaxInt32 {
		return errors.Errorf("window dimensions %dx%d out of range", o.Window.Width, o.Window.Height)
	}
	return nil
}
