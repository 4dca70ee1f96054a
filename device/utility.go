package device

import (
	"fmt"
	"unsafe"

	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"

	"github.com/devblok/vkctx/core"
)

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}

// resultError converts a Vulkan result into an error. Results the
// bootstrap can classify wrap the matching core sentinel.
func resultError(res vk.Result) error {
	err := vk.Error(res)
	if err == nil {
		return nil
	}
	switch res {
	case vk.ErrorLayerNotPresent:
		return errors.WithMessage(core.ErrLayerNotPresent, err.Error())
	case vk.ErrorExtensionNotPresent:
		return errors.WithMessage(core.ErrExtensionNotPresent, err.Error())
	case vk.ErrorFeatureNotPresent:
		return errors.WithMessage(core.ErrFeatureNotPresent, err.Error())
	default:
		return err
	}
}

func deviceType(t vk.PhysicalDeviceType) core.DeviceType {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return core.DeviceTypeIntegratedGPU
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return core.DeviceTypeDiscreteGPU
	case vk.PhysicalDeviceTypeVirtualGpu:
		return core.DeviceTypeVirtualGPU
	case vk.PhysicalDeviceTypeCpu:
		return core.DeviceTypeCPU
	default:
		return core.DeviceTypeOther
	}
}

func queueCapabilities(flags vk.QueueFlags) core.QueueCapabilities {
	var caps core.QueueCapabilities
	if flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
		caps |= core.QueueGraphics
	}
	if flags&vk.QueueFlags(vk.QueueComputeBit) != 0 {
		caps |= core.QueueCompute
	}
	if flags&vk.QueueFlags(vk.QueueTransferBit) != 0 {
		caps |= core.QueueTransfer
	}
	if flags&vk.QueueFlags(vk.QueueSparseBindingBit) != 0 {
		caps |= core.QueueSparseBinding
	}
	return caps
}

// reportFlags are the debug report categories forwarded to the callback.
var reportFlags = vk.DebugReportFlags(vk.DebugReportErrorBit |
	vk.DebugReportWarningBit |
	vk.DebugReportPerformanceWarningBit |
	vk.DebugReportInformationBit |
	vk.DebugReportDebugBit)

func debugMessage(flags vk.DebugReportFlags, layer, text string) core.DebugMessage {
	msg := core.DebugMessage{Layer: layer, Text: text}
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		msg.Severity = core.SeverityError
		msg.Types = core.MessageValidation
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		msg.Severity = core.SeverityWarning
		msg.Types = core.MessagePerformance
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		msg.Severity = core.SeverityWarning
		msg.Types = core.MessageValidation
	default:
		msg.Severity = core.SeverityVerbose
		msg.Types = core.MessageGeneral
	}
	return msg
}

// reportCallback adapts fn to the debug report callback signature.
// Reports never abort the triggering call.
func reportCallback(fn core.DebugCallback) vk.DebugReportCallbackFunc {
	return func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
		object uint, location uint, messageCode int32, pLayerPrefix string,
		pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
		fn(debugMessage(flags, pLayerPrefix, pMessage))
		return vk.Bool32(vk.False)
	}
}
