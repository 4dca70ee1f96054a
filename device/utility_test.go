package device

import (
	"testing"

	vk "github.com/devblok/vulkan"
	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkctx/core"
)

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(safeStrings([]string{"VK_KHR_surface"}), qt.DeepEquals, []string{"VK_KHR_surface\x00"})
	c.Assert(safeStrings(nil), qt.HasLen, 0)
}

func TestResultError(t *testing.T) {
	c := qt.New(t)

	c.Assert(resultError(vk.Success), qt.IsNil)
	c.Assert(resultError(vk.ErrorLayerNotPresent), qt.ErrorIs, core.ErrLayerNotPresent)
	c.Assert(resultError(vk.ErrorExtensionNotPresent), qt.ErrorIs, core.ErrExtensionNotPresent)
	c.Assert(resultError(vk.ErrorFeatureNotPresent), qt.ErrorIs, core.ErrFeatureNotPresent)

	err := resultError(vk.ErrorOutOfHostMemory)
	c.Assert(err, qt.IsNotNil)
	c.Assert(err, qt.Not(qt.ErrorIs), core.ErrLayerNotPresent)
}

func TestDeviceType(t *testing.T) {
	c := qt.New(t)
	c.Assert(deviceType(vk.PhysicalDeviceTypeDiscreteGpu), qt.Equals, core.DeviceTypeDiscreteGPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeIntegratedGpu), qt.Equals, core.DeviceTypeIntegratedGPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeCpu), qt.Equals, core.DeviceTypeCPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeOther), qt.Equals, core.DeviceTypeOther)
}

func TestQueueCapabilities(t *testing.T) {
	c := qt.New(t)

	flags := vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueTransferBit)
	caps := queueCapabilities(flags)
	c.Assert(caps.Graphics(), qt.IsTrue)
	c.Assert(caps.Transfer(), qt.IsTrue)
	c.Assert(caps.Compute(), qt.IsFalse)
	c.Assert(queueCapabilities(0), qt.Equals, core.QueueCapabilities(0))
}

func TestDebugMessage(t *testing.T) {
	tests := []struct {
		flags    vk.DebugReportFlagBits
		severity core.Severity
		types    core.MessageType
	}{
		{vk.DebugReportErrorBit, core.SeverityError, core.MessageValidation},
		{vk.DebugReportWarningBit, core.SeverityWarning, core.MessageValidation},
		{vk.DebugReportPerformanceWarningBit, core.SeverityWarning, core.MessagePerformance},
		{vk.DebugReportInformationBit, core.SeverityVerbose, core.MessageGeneral},
		{vk.DebugReportDebugBit, core.SeverityVerbose, core.MessageGeneral},
	}
	for _, test := range tests {
		c := qt.New(t)
		msg := debugMessage(vk.DebugReportFlags(test.flags), "Validation", "text")
		c.Assert(msg, qt.Equals, core.DebugMessage{
			Severity: test.severity,
			Types:    test.types,
			Layer:    "Validation",
			Text:     "text",
		})
	}
}

func TestReportCallback(t *testing.T) {
	c := qt.New(t)

	var got []core.DebugMessage
	createInfo := vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       reportFlags,
		PfnCallback: reportCallback(func(msg core.DebugMessage) { got = append(got, msg) }),
	}

	ret := createInfo.PfnCallback(vk.DebugReportFlags(vk.DebugReportWarningBit),
		vk.DebugReportObjectTypeUnknown, 0, 0, 0, "Validation", "leaked handle", nil)
	c.Assert(ret, qt.Equals, vk.Bool32(vk.False))
	c.Assert(got, qt.DeepEquals, []core.DebugMessage{{
		Severity: core.SeverityWarning,
		Types:    core.MessageValidation,
		Layer:    "Validation",
		Text:     "leaked handle",
	}})
}
