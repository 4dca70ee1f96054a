package core_test

import (
	"fmt"

	"github.com/devblok/vkctx/core"
	"github.com/pkg/errors"
)

const gib = 1 << 30

// fakeSystem is an in-memory Platform and Driver. It records every
// acquisition and release in order.
type fakeSystem struct {
	events []string

	windowExtensions []string
	windowErr        error
	instanceErr      error
	debugErr         error
	surfaceErr       error
	enumerateErr     error
	deviceErr        error

	devices []*fakePhysicalDevice

	gotExtensions []string
	gotLayers     []string
	gotRequests   []core.QueueRequest
	gotWindow     core.WindowConfiguration
	debugCallback core.DebugCallback

	closeAfterPolls int
}

func (s *fakeSystem) record(format string, args ...interface{}) {
	s.events = append(s.events, fmt.Sprintf(format, args...))
}

func (s *fakeSystem) OpenWindow(cfg core.WindowConfiguration) (core.Window, error) {
	if s.windowErr != nil {
		return nil, s.windowErr
	}
	s.gotWindow = cfg
	s.record("create window")
	return &fakeWindow{sys: s}, nil
}

func (s *fakeSystem) CreateInstance(extensions, layers []string) (core.Instance, error) {
	s.gotExtensions = extensions
	s.gotLayers = layers
	if s.instanceErr != nil {
		return nil, s.instanceErr
	}
	s.record("create instance")
	return &fakeInstance{sys: s}, nil
}

type fakeWindow struct {
	sys   *fakeSystem
	polls int
}

func (w *fakeWindow) Destroy() { w.sys.record("destroy window") }

func (w *fakeWindow) RequiredExtensions() []string { return w.sys.windowExtensions }

func (w *fakeWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	if w.sys.surfaceErr != nil {
		return nil, w.sys.surfaceErr
	}
	w.sys.record("create surface")
	return &fakeSurface{sys: w.sys, name: "main"}, nil
}

func (w *fakeWindow) ShouldClose() bool {
	return w.sys.closeAfterPolls > 0 && w.polls >= w.sys.closeAfterPolls
}

func (w *fakeWindow) PollEvents() { w.polls++ }

type fakeInstance struct {
	sys *fakeSystem
}

func (i *fakeInstance) Destroy() { i.sys.record("destroy instance") }

func (i *fakeInstance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	if i.sys.enumerateErr != nil {
		return nil, i.sys.enumerateErr
	}
	devices := make([]core.PhysicalDevice, 0, len(i.sys.devices))
	for _, d := range i.sys.devices {
		d.sys = i.sys
		devices = append(devices, d)
	}
	return devices, nil
}

func (i *fakeInstance) AttachDebugCallback(fn core.DebugCallback) (core.DebugHook, error) {
	if i.sys.debugErr != nil {
		return nil, i.sys.debugErr
	}
	i.sys.debugCallback = fn
	i.sys.record("attach debug")
	return &fakeHook{sys: i.sys}, nil
}

func (i *fakeInstance) AdoptSurface(raw uintptr) core.Surface {
	return &fakeSurface{sys: i.sys, name: fmt.Sprintf("%#x", raw)}
}

func (i *fakeInstance) Inner() interface{} { return i }

type fakeHook struct {
	sys *fakeSystem
}

func (h *fakeHook) Detach() { h.sys.record("detach debug") }

type fakeSurface struct {
	sys  *fakeSystem
	name string
}

func (s *fakeSurface) Destroy() {
	if s.sys != nil {
		s.sys.record("destroy surface")
	}
}

func (s *fakeSurface) Inner() interface{} { return s.name }

type fakePhysicalDevice struct {
	sys      *fakeSystem
	props    core.PhysicalDeviceProperties
	families []core.QueueFamilyProperties

	// present decides surface support; nil means every graphics family presents.
	present func(family uint32, surface core.Surface) (bool, error)
}

func newDevice(name string, typ core.DeviceType, localGiB uint64, families ...core.QueueCapabilities) *fakePhysicalDevice {
	d := &fakePhysicalDevice{
		props: core.PhysicalDeviceProperties{
			Name: name,
			Type: typ,
			MemoryHeaps: []core.MemoryHeap{
				{Size: localGiB * gib, DeviceLocal: true},
				{Size: 8 * gib},
			},
		},
	}
	for _, caps := range families {
		d.families = append(d.families, core.QueueFamilyProperties{Capabilities: caps, QueueCount: 1})
	}
	return d
}

func (d *fakePhysicalDevice) Properties() core.PhysicalDeviceProperties { return d.props }

func (d *fakePhysicalDevice) QueueFamilies() []core.QueueFamilyProperties { return d.families }

func (d *fakePhysicalDevice) SurfaceSupport(family uint32, surface core.Surface) (bool, error) {
	if d.present != nil {
		return d.present(family, surface)
	}
	return d.families[family].Capabilities.Graphics(), nil
}

func (d *fakePhysicalDevice) CreateDevice(queues []core.QueueRequest) (core.Device, error) {
	if d.sys != nil {
		d.sys.gotRequests = queues
		if d.sys.deviceErr != nil {
			return nil, d.sys.deviceErr
		}
		d.sys.record("create device")
	}
	return &fakeDevice{sys: d.sys}, nil
}

type fakeDevice struct {
	sys *fakeSystem
}

func (d *fakeDevice) Destroy() {
	if d.sys != nil {
		d.sys.record("destroy device")
	}
}

func (d *fakeDevice) Queue(family, index uint32) core.Queue {
	return fakeQueue{family: family, index: index}
}

type fakeQueue struct {
	family, index uint32
}

func (q fakeQueue) Family() uint32 { return q.family }

// fakeLogger collects formatted lines prefixed by their tier.
type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) add(tier, format string, args ...interface{}) {
	l.lines = append(l.lines, tier+": "+fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Fatalf(format string, args ...interface{})   { l.add("fatal", format, args...) }
func (l *fakeLogger) Errorf(format string, args ...interface{})   { l.add("error", format, args...) }
func (l *fakeLogger) Warnf(format string, args ...interface{})    { l.add("warn", format, args...) }
func (l *fakeLogger) Infof(format string, args ...interface{})    { l.add("info", format, args...) }
func (l *fakeLogger) Verbosef(format string, args ...interface{}) { l.add("verbose", format, args...) }
func (l *fakeLogger) Debugf(format string, args ...interface{})   { l.add("debug", format, args...) }

func (l *fakeLogger) tier(tier string) []string {
	var lines []string
	for _, line := range l.lines {
		if len(line) > len(tier)+2 && line[:len(tier)+2] == tier+": " {
			lines = append(lines, line[len(tier)+2:])
		}
	}
	return lines
}

var errBoom = errors.New("boom")

func engineOptions() core.BootstrapOptions {
	return core.BootstrapOptions{
		Window: core.WindowConfiguration{
			Width:  640,
			Height: 400,
			Title:  "Engine",
		},
	}
}
