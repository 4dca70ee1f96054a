package core

import "github.com/pkg/errors"

// State is a step of the bootstrap sequence
type State int

// Bootstrap states in acquisition order
const (
	StateInit State = iota
	StateWindowCreated
	StateInstanceCreated
	StateDiagnosticsAttached
	StateDiagnosticsSkipped
	StateSurfaceCreated
	StatePhysicalDeviceSelected
	StateLogicalDeviceCreated
	StateReady
	StateTearingDown
	StateDestroyed
)

var stateNames = [...]string{
	StateInit:                   "init",
	StateWindowCreated:          "window created",
	StateInstanceCreated:        "instance created",
	StateDiagnosticsAttached:    "diagnostics attached",
	StateDiagnosticsSkipped:     "diagnostics skipped",
	StateSurfaceCreated:         "surface created",
	StatePhysicalDeviceSelected: "physical device selected",
	StateLogicalDeviceCreated:   "logical device created",
	StateReady:                  "ready",
	StateTearingDown:            "tearing down",
	StateDestroyed:              "destroyed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Context owns every resource acquired by Bootstrap
type Context struct {
	log    Logger
	guards guards
	state  State

	window   Window
	instance Instance
	debug    DebugHook
	surface  Surface
	physical Candidate
	device   Device
	graphics Queue
	present  Queue
}

// Bootstrap opens a window and brings up a Vulkan instance, surface and
// logical device on the best physical device. Resources are acquired in
// dependency order. If any step fails, everything acquired so far is
// released in reverse order and the error of the failing step is returned.
func Bootstrap(platform Platform, driver Driver, opts BootstrapOptions, log Logger) (ctx *Context, err error) {
	c := &Context{
		log:    log,
		guards: guards{log: log},
	}
	defer func() {
		if err != nil {
			c.fail(err)
			ctx = nil
		}
	}()

	if err := opts.Validate(); err != nil {
		return nil, &WindowCreationError{Err: err}
	}

	if err := c.openWindow(platform, opts.Window); err != nil {
		return nil, err
	}

	extensions := NegotiateExtensions(c.window.RequiredExtensions(), opts.Validation)
	layers := NegotiateLayers(opts.Validation)
	instance, err := CreateInstance(driver, extensions, layers, opts.Validation, log)
	if err != nil {
		return nil, err
	}
	c.instance = instance
	c.guards.push("instance", instance.Destroy)
	c.advance(StateInstanceCreated)

	c.attachDiagnostics(opts.Validation)

	if err := c.createSurface(); err != nil {
		return nil, err
	}

	physical, err := SelectPhysicalDevice(c.instance, c.surface, opts.DeviceFilter, log)
	if err != nil {
		return nil, err
	}
	c.physical = physical
	c.advance(StatePhysicalDeviceSelected)

	device, graphics, present, err := CreateLogicalDevice(physical.Device, physical.Queues, log)
	if err != nil {
		return nil, err
	}
	c.device, c.graphics, c.present = device, graphics, present
	c.guards.push("logical device", device.Destroy)
	c.advance(StateLogicalDeviceCreated)

	c.advance(StateReady)
	return c, nil
}

func (c *Context) openWindow(platform Platform, cfg WindowConfiguration) error {
	window, err := platform.OpenWindow(cfg)
	if err != nil {
		var wce *WindowCreationError
		if errors.As(err, &wce) {
			return wce
		}
		return &WindowCreationError{Err: err}
	}
	c.window = window
	c.guards.push("window", window.Destroy)
	c.log.Verbosef("Opened window %q (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	c.advance(StateWindowCreated)
	return nil
}

func (c *Context) attachDiagnostics(validation bool) {
	if !validation {
		c.advance(StateDiagnosticsSkipped)
		return
	}
	hook := AttachDiagnostics(c.instance, c.log)
	if hook == nil {
		c.advance(StateDiagnosticsSkipped)
		return
	}
	c.debug = hook
	c.guards.push("debug hook", func() { DetachDiagnostics(hook) })
	c.advance(StateDiagnosticsAttached)
}

func (c *Context) createSurface() error {
	surface, err := c.window.CreateSurface(c.instance)
	if err != nil {
		var sce *SurfaceCreationError
		if errors.As(err, &sce) {
			return sce
		}
		return &SurfaceCreationError{Err: err}
	}
	c.surface = surface
	c.guards.push("surface", surface.Destroy)
	c.advance(StateSurfaceCreated)
	return nil
}

func (c *Context) advance(s State) {
	c.state = s
	c.log.Debugf("Bootstrap state: %s", s)
}

func (c *Context) fail(err error) {
	stage := "bootstrap"
	if se, ok := err.(StageError); ok {
		stage = se.Stage()
	}
	c.log.Warnf("Failed to create %s: %v", stage, err)
	c.advance(StateTearingDown)
	c.guards.unwind()
	c.advance(StateDestroyed)
}

// Destroy releases every owned resource in reverse acquisition order.
// Calling it more than once is a no-op.
func (c *Context) Destroy() {
	if c == nil || c.state == StateDestroyed {
		return
	}
	c.advance(StateTearingDown)
	c.guards.unwind()
	c.advance(StateDestroyed)
}

// State returns the current lifecycle state
func (c *Context) State() State {
	return c.state
}

// Window returns the native window
func (c *Context) Window() Window {
	return c.window
}

// Instance returns the API instance
func (c *Context) Instance() Instance {
	return c.instance
}

// Surface returns the window surface
func (c *Context) Surface() Surface {
	return c.surface
}

// PhysicalDevice returns the selected physical device. It is owned by the instance.
func (c *Context) PhysicalDevice() PhysicalDevice {
	return c.physical.Device
}

// PhysicalDeviceProperties returns the properties of the selected physical device
func (c *Context) PhysicalDeviceProperties() PhysicalDeviceProperties {
	return c.physical.Properties
}

// Device returns the logical device
func (c *Context) Device() Device {
	return c.device
}

// GraphicsQueue returns the queue used for graphics submission
func (c *Context) GraphicsQueue() Queue {
	return c.graphics
}

// PresentQueue returns the queue used for presentation
func (c *Context) PresentQueue() Queue {
	return c.present
}

// QueueFamilies returns the queue families resolved for the selected device
func (c *Context) QueueFamilies() QueueFamilyInfo {
	return c.physical.Queues
}

// Unified reports whether graphics and present share one queue. Submissions
// to a shared queue must be serialized by the caller.
func (c *Context) Unified() bool {
	return c.physical.Queues.Unified()
}

// DiagnosticsAttached reports whether the validation callback is registered
func (c *Context) DiagnosticsAttached() bool {
	return c.debug != nil
}
