// Package device implements the core graphics API interfaces on Vulkan.
package device

import (
	"unsafe"

	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"

	"github.com/devblok/vkctx/core"
)

// DefaultVulkanApplicationInfo application info describes a Vulkan application
var DefaultVulkanApplicationInfo = &vk.ApplicationInfo{
	SType:      vk.StructureTypeApplicationInfo,
	ApiVersion: vk.MakeVersion(1, 0, 0),
}

// NewVulkanDriver loads the Vulkan entry points. procAddr is the
// vkGetInstanceProcAddr provided by the windowing system; when nil the
// system loader is used.
func NewVulkanDriver(procAddr unsafe.Pointer) (*VulkanDriver, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr()")
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vk.Init()")
	}
	return &VulkanDriver{appInfo: DefaultVulkanApplicationInfo}, nil
}

// VulkanDriver creates Vulkan instances
type VulkanDriver struct {
	appInfo *vk.ApplicationInfo
}

// CreateInstance implements core.Driver
func (d *VulkanDriver) CreateInstance(extensions, layers []string) (core.Instance, error) {
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        d.appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}

	var instance vk.Instance
	if err := resultError(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.WithMessage(err, "vk.CreateInstance()")
	}
	vk.InitInstance(instance)

	return &vulkanInstance{instance: instance}, nil
}

type vulkanInstance struct {
	instance vk.Instance
}

func (v *vulkanInstance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	var deviceCount uint32
	if err := resultError(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, nil)); err != nil {
		return nil, errors.WithMessage(err, "vulkan physical device enumeration failed")
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := resultError(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, availableDevices)); err != nil {
		return nil, errors.WithMessage(err, "vulkan physical device enumeration failed")
	}

	devices := make([]core.PhysicalDevice, 0, deviceCount)
	for _, pd := range availableDevices[:deviceCount] {
		devices = append(devices, &vulkanPhysicalDevice{physicalDevice: pd})
	}
	return devices, nil
}

func (v *vulkanInstance) AttachDebugCallback(fn core.DebugCallback) (core.DebugHook, error) {
	createInfo := vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       reportFlags,
		PfnCallback: reportCallback(fn),
	}

	var callback vk.DebugReportCallback
	if err := resultError(vk.CreateDebugReportCallback(v.instance, &createInfo, nil, &callback)); err != nil {
		return nil, errors.WithMessage(err, "vk.CreateDebugReportCallback()")
	}
	return &debugHook{instance: v.instance, callback: callback}, nil
}

func (v *vulkanInstance) AdoptSurface(raw uintptr) core.Surface {
	return &vulkanSurface{
		instance: v.instance,
		surface:  vk.SurfaceFromPointer(raw),
	}
}

// Inner returns vk.Instance
func (v *vulkanInstance) Inner() interface{} {
	return v.instance
}

func (v *vulkanInstance) Destroy() {
	vk.DestroyInstance(v.instance, nil)
}

type debugHook struct {
	instance vk.Instance
	callback vk.DebugReportCallback
}

func (h *debugHook) Detach() {
	vk.DestroyDebugReportCallback(h.instance, h.callback, nil)
}

type vulkanSurface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Inner returns vk.Surface
func (s *vulkanSurface) Inner() interface{} {
	return s.surface
}

func (s *vulkanSurface) Destroy() {
	if s.surface == vk.NullSurface {
		return
	}
	vk.DestroySurface(s.instance, s.surface, nil)
	s.surface = vk.NullSurface
}

type vulkanPhysicalDevice struct {
	physicalDevice vk.PhysicalDevice
}

func (p *vulkanPhysicalDevice) Properties() core.PhysicalDeviceProperties {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(p.physicalDevice, &properties)
	properties.Deref()

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(p.physicalDevice, &memoryProperties)
	memoryProperties.Deref()

	heaps := make([]core.MemoryHeap, 0, memoryProperties.MemoryHeapCount)
	for i := uint32(0); i < memoryProperties.MemoryHeapCount; i++ {
		heap := memoryProperties.MemoryHeaps[i]
		heap.Deref()
		heaps = append(heaps, core.MemoryHeap{
			Size:        uint64(heap.Size),
			DeviceLocal: vk.MemoryHeapFlagBits(heap.Flags)&vk.MemoryHeapDeviceLocalBit != 0,
		})
	}

	return core.PhysicalDeviceProperties{
		Name:          vk.ToString(properties.DeviceName[:]),
		Type:          deviceType(properties.DeviceType),
		VendorID:      properties.VendorID,
		DeviceID:      properties.DeviceID,
		DriverVersion: properties.DriverVersion,
		APIVersion:    properties.ApiVersion,
		MemoryHeaps:   heaps,
	}
}

func (p *vulkanPhysicalDevice) QueueFamilies() []core.QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.physicalDevice, &count, nil)
	families := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.physicalDevice, &count, families)

	props := make([]core.QueueFamilyProperties, 0, count)
	for _, family := range families[:count] {
		family.Deref()
		props = append(props, core.QueueFamilyProperties{
			Capabilities: queueCapabilities(family.QueueFlags),
			QueueCount:   family.QueueCount,
		})
	}
	return props
}

func (p *vulkanPhysicalDevice) SurfaceSupport(family uint32, surface core.Surface) (bool, error) {
	vkSurface, ok := surface.Inner().(vk.Surface)
	if !ok {
		return false, errors.Errorf("unexpected surface type %T", surface.Inner())
	}

	var supported vk.Bool32
	if err := resultError(vk.GetPhysicalDeviceSurfaceSupport(p.physicalDevice, family, vkSurface, &supported)); err != nil {
		return false, errors.WithMessage(err, "vk.GetPhysicalDeviceSurfaceSupport()")
	}
	return supported.B(), nil
}

func (p *vulkanPhysicalDevice) CreateDevice(queues []core.QueueRequest) (core.Device, error) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, 0, len(queues))
	for _, q := range queues {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.Family,
			QueueCount:       uint32(len(q.Priorities)),
			PQueuePriorities: q.Priorities,
		})
	}

	dci := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
		PEnabledFeatures:     []vk.PhysicalDeviceFeatures{{}},
	}

	var device vk.Device
	if err := resultError(vk.CreateDevice(p.physicalDevice, &dci, nil, &device)); err != nil {
		return nil, errors.WithMessage(err, "vk.CreateDevice()")
	}
	return &vulkanDevice{device: device}, nil
}

type vulkanDevice struct {
	device vk.Device
}

func (d *vulkanDevice) Queue(family, index uint32) core.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.device, family, index, &queue)
	return vulkanQueue{family: family, queue: queue}
}

func (d *vulkanDevice) Destroy() {
	vk.DeviceWaitIdle(d.device)
	vk.DestroyDevice(d.device, nil)
}

// vulkanQueue is a value so queues from the same family compare equal.
type vulkanQueue struct {
	family uint32
	queue  vk.Queue
}

func (q vulkanQueue) Family() uint32 {
	return q.family
}
