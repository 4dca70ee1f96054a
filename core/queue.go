package core

import (
	"fmt"
	"strings"
)

// QueueCapabilities is the set of operations a queue family supports
type QueueCapabilities uint32

// Queue capabilities
const (
	QueueGraphics QueueCapabilities = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// Has reports whether all capabilities in c2 are present.
func (c QueueCapabilities) Has(c2 QueueCapabilities) bool { return c&c2 == c2 }

// Graphics reports graphics support
func (c QueueCapabilities) Graphics() bool { return c.Has(QueueGraphics) }

// Compute reports compute support
func (c QueueCapabilities) Compute() bool { return c.Has(QueueCompute) }

// Transfer reports transfer support
func (c QueueCapabilities) Transfer() bool { return c.Has(QueueTransfer) }

// SparseBinding reports sparse binding support
func (c QueueCapabilities) SparseBinding() bool { return c.Has(QueueSparseBinding) }

func (c QueueCapabilities) String() string {
	var names []string
	if c.Graphics() {
		names = append(names, "GRAPHICS")
	}
	if c.Compute() {
		names = append(names, "COMPUTE")
	}
	if c.Transfer() {
		names = append(names, "TRANSFER")
	}
	if c.SparseBinding() {
		names = append(names, "SPARSE")
	}
	return strings.Join(names, " | ")
}

// QueueFamilyProperties describes one queue family of a physical device
type QueueFamilyProperties struct {
	Capabilities QueueCapabilities
	QueueCount   uint32
}

// QueueFamilyIndex is a queue family index that is only meaningful when Found.
type QueueFamilyIndex struct {
	Index uint32 `json:"index"`
	Found bool   `json:"found"`
}

func (i QueueFamilyIndex) String() string {
	if !i.Found {
		return "none"
	}
	return fmt.Sprintf("#%d", i.Index)
}

// QueueFamilyInfo holds the queue families resolved for a physical device
type QueueFamilyInfo struct {
	Graphics QueueFamilyIndex `json:"graphics"`
	Present  QueueFamilyIndex `json:"present"`
	Compute  QueueFamilyIndex `json:"compute"`
	Transfer QueueFamilyIndex `json:"transfer"`
}

// CanRender reports whether both a graphics and a present family were found.
func (q QueueFamilyInfo) CanRender() bool {
	return q.Graphics.Found && q.Present.Found
}

// Unified reports whether one family serves both graphics and present.
func (q QueueFamilyInfo) Unified() bool {
	return q.CanRender() && q.Graphics.Index == q.Present.Index
}

// ResolveQueueFamilies inspects every queue family of device. For each
// capability the last family supporting it is kept. Present support is
// queried against surface; query errors count as no support.
func ResolveQueueFamilies(device PhysicalDevice, surface Surface, log Logger) QueueFamilyInfo {
	var info QueueFamilyInfo
	for i, family := range device.QueueFamilies() {
		index := uint32(i)
		if family.Capabilities.Graphics() {
			info.Graphics = QueueFamilyIndex{Index: index, Found: true}
		}
		if family.Capabilities.Compute() {
			info.Compute = QueueFamilyIndex{Index: index, Found: true}
		}
		if family.Capabilities.Transfer() {
			info.Transfer = QueueFamilyIndex{Index: index, Found: true}
		}

		canPresent, err := device.SurfaceSupport(index, surface)
		if err != nil {
			log.Warnf("Surface support query failed for queue family #%d: %v", index, err)
			continue
		}
		if canPresent {
			info.Present = QueueFamilyIndex{Index: index, Found: true}
		}
	}
	return info
}
