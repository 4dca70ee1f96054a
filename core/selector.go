package core

import (
	"strings"

	units "github.com/docker/go-units"
)

const gibibyte = 1 << 30

// DeviceType is the kind of a physical device
type DeviceType int

// Physical device types
const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated GPU"
	case DeviceTypeDiscreteGPU:
		return "discrete GPU"
	case DeviceTypeVirtualGPU:
		return "virtual GPU"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return "other"
	}
}

// Weight is the score multiplier of the device type.
// Discrete ranks above integrated, integrated above everything else.
func (t DeviceType) Weight() int {
	switch t {
	case DeviceTypeDiscreteGPU:
		return 4
	case DeviceTypeIntegratedGPU:
		return 2
	default:
		return 1
	}
}

// MemoryHeap is one memory heap of a physical device
type MemoryHeap struct {
	Size        uint64
	DeviceLocal bool
}

// PhysicalDeviceProperties describes available physical properties of a rendering device
type PhysicalDeviceProperties struct {
	Name          string
	Type          DeviceType
	VendorID      uint32
	DeviceID      uint32
	DriverVersion uint32
	APIVersion    uint32
	MemoryHeaps   []MemoryHeap
}

// LocalMemory sums the sizes of all device local heaps.
func (p PhysicalDeviceProperties) LocalMemory() uint64 {
	var local uint64
	for _, heap := range p.MemoryHeaps {
		if heap.DeviceLocal {
			local += heap.Size
		}
	}
	return local
}

// Score rates a device: the type weight times the whole gibibytes of
// device local memory. Devices lacking a graphics or a present queue
// family score zero.
func Score(props PhysicalDeviceProperties, queues QueueFamilyInfo) int {
	if !queues.CanRender() {
		return 0
	}
	return props.Type.Weight() * int(props.LocalMemory()/gibibyte)
}

// Candidate is a physical device examined during selection
type Candidate struct {
	Index      int
	Device     PhysicalDevice
	Properties PhysicalDeviceProperties
	Queues     QueueFamilyInfo
	Score      int
}

// RankDevices examines every device against surface and returns them
// in enumeration order with their scores. A non empty filter zeroes the
// score of devices whose name does not contain it.
func RankDevices(devices []PhysicalDevice, surface Surface, filter string, log Logger) []Candidate {
	candidates := make([]Candidate, 0, len(devices))
	for i, device := range devices {
		props := device.Properties()
		log.Verbosef("Found device #%d: %s (%s)", i, props.Name, props.Type)
		logMemory(props, log)
		logQueueFamilies(device.QueueFamilies(), log)

		queues := ResolveQueueFamilies(device, surface, log)
		score := Score(props, queues)
		if !queues.CanRender() {
			log.Verbosef("No proper queues found")
		}
		if filter != "" && !strings.Contains(strings.ToLower(props.Name), strings.ToLower(filter)) {
			log.Verbosef("Excluded by device filter %q", filter)
			score = 0
		}
		log.Verbosef("Device #%d score: %d", i, score)

		candidates = append(candidates, Candidate{
			Index:      i,
			Device:     device,
			Properties: props,
			Queues:     queues,
			Score:      score,
		})
	}
	return candidates
}

// Best returns the position of the strictly highest scoring candidate.
// Ties keep the earliest one. It returns -1 if no candidate scores above zero.
func Best(candidates []Candidate) int {
	best, max := -1, 0
	for i, c := range candidates {
		if c.Score > max {
			max = c.Score
			best = i
		}
	}
	return best
}

// SelectPhysicalDevice picks the best physical device of instance for
// rendering to surface.
func SelectPhysicalDevice(instance Instance, surface Surface, filter string, log Logger) (Candidate, error) {
	devices, err := instance.PhysicalDevices()
	if err != nil {
		log.Warnf("Physical device enumeration failed: %v", err)
		return Candidate{}, &NoSuitableDeviceError{Err: err}
	}
	if len(devices) == 0 {
		log.Warnf("No GPU found")
	}

	candidates := RankDevices(devices, surface, filter, log)
	best := Best(candidates)
	if best < 0 {
		log.Warnf("Could not find appropriate physical device")
		return Candidate{}, &NoSuitableDeviceError{Candidates: len(candidates)}
	}

	picked := candidates[best]
	log.Verbosef("Picked physical device #%d: %s", picked.Index, picked.Properties.Name)
	return picked, nil
}

func logMemory(props PhysicalDeviceProperties, log Logger) {
	log.Verbosef("Device memory:")
	for i, heap := range props.MemoryHeaps {
		local := ""
		if heap.DeviceLocal {
			local = " (device local)"
		}
		log.Verbosef("\tHeap #%d: %s%s", i, units.BytesSize(float64(heap.Size)), local)
	}
	log.Verbosef("\t%s of memory is device local", units.BytesSize(float64(props.LocalMemory())))
}

func logQueueFamilies(families []QueueFamilyProperties, log Logger) {
	log.Verbosef("Queue families:")
	for i, family := range families {
		log.Verbosef("\tQueueFamily #%d: %s (%d queues)", i, family.Capabilities, family.QueueCount)
	}
}
