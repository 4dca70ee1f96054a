// Package core bootstraps a GPU-backed rendering context. It is written
// against small interfaces describing the windowing system and the graphics
// API, so the acquisition chain can run on top of Vulkan (see package device)
// or on in-memory stand-ins.
package core

// Destroyable is implemented by every owned native resource.
type Destroyable interface {
	// Destroy releases the resource. It must be safe to call once.
	Destroy()
}

// Platform describes a windowing system that has already been initialised.
type Platform interface {
	// OpenWindow opens a native window suitable for Vulkan rendering.
	OpenWindow(cfg WindowConfiguration) (Window, error)
}

// Window is a native window that can host a drawable surface.
type Window interface {
	Destroyable

	// RequiredExtensions returns the instance extensions the windowing
	// system needs to create surfaces.
	RequiredExtensions() []string

	// CreateSurface derives a drawable surface bound to this window
	// and the given instance.
	CreateSurface(instance Instance) (Surface, error)

	// ShouldClose reports whether the user requested the window to close.
	ShouldClose() bool

	// PollEvents processes pending window events.
	PollEvents()
}

// Driver is the entry point of a graphics API.
type Driver interface {
	// CreateInstance creates the top level API instance with the given
	// extensions and layers enabled.
	CreateInstance(extensions, layers []string) (Instance, error)
}

// Instance describes a graphics API instance.
type Instance interface {
	Destroyable

	// PhysicalDevices enumerates the GPUs visible to the instance.
	PhysicalDevices() ([]PhysicalDevice, error)

	// AttachDebugCallback registers fn to receive diagnostics messages.
	AttachDebugCallback(fn DebugCallback) (DebugHook, error)

	// AdoptSurface takes ownership of a raw surface handle created
	// by the windowing system for this instance.
	AdoptSurface(raw uintptr) Surface

	// Inner returns the inner handle of the underlying API
	Inner() interface{}
}

// Surface is a drawable target bound to a window.
type Surface interface {
	Destroyable

	// Inner returns the inner handle of the underlying API
	Inner() interface{}
}

// DebugHook is an attached diagnostics callback.
type DebugHook interface {
	// Detach unregisters the callback.
	Detach()
}

// PhysicalDevice is a GPU enumerated from an instance. It is not owned.
type PhysicalDevice interface {
	// Properties returns identification and memory info of the device.
	Properties() PhysicalDeviceProperties

	// QueueFamilies returns the queue families in enumeration order.
	QueueFamilies() []QueueFamilyProperties

	// SurfaceSupport reports whether the queue family can present to surface.
	SurfaceSupport(family uint32, surface Surface) (bool, error)

	// CreateDevice creates a logical device with the requested queues
	// and default features.
	CreateDevice(queues []QueueRequest) (Device, error)
}

// Device is a logical device.
type Device interface {
	Destroyable

	// Queue retrieves queue index of the given family.
	Queue(family, index uint32) Queue
}

// Queue is a device queue. Queues retrieved for the same family
// and index compare equal.
type Queue interface {
	// Family returns the queue family the queue belongs to.
	Family() uint32
}

// Logger is the leveled logging capability used during bootstrap.
type Logger interface {
	Fatalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Verbosef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}
