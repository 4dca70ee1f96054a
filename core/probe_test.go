package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkctx/core"
)

func TestProbeReportsAllDevices(t *testing.T) {
	c := qt.New(t)
	sys := &fakeSystem{
		devices: []*fakePhysicalDevice{
			newDevice("integrated", core.DeviceTypeIntegratedGPU, 2, renderFamily),
			newDevice("discrete", core.DeviceTypeDiscreteGPU, 8, renderFamily),
			newDevice("headless", core.DeviceTypeCPU, 8, core.QueueCompute),
		},
	}

	reports, err := core.Probe(sys, sys, engineOptions(), &fakeLogger{})
	c.Assert(err, qt.IsNil)
	c.Assert(reports, qt.HasLen, 3)
	c.Assert(reports[1], qt.DeepEquals, core.DeviceReport{
		Index:       1,
		Name:        "discrete",
		Type:        "discrete GPU",
		LocalMemory: 8 * gib,
		Queues: core.QueueFamilyInfo{
			Graphics: core.QueueFamilyIndex{Index: 0, Found: true},
			Present:  core.QueueFamilyIndex{Index: 0, Found: true},
			Compute:  core.QueueFamilyIndex{Index: 0, Found: true},
			Transfer: core.QueueFamilyIndex{Index: 0, Found: true},
		},
		Unified:  true,
		Score:    32,
		Selected: true,
	})
	c.Assert(reports[0].Selected, qt.IsFalse)
	c.Assert(reports[2].Score, qt.Equals, 0)

	c.Assert(sys.events, qt.DeepEquals, []string{
		"create window", "create instance", "create surface",
		"destroy surface", "destroy instance", "destroy window",
	})
}

func TestProbeNoDevices(t *testing.T) {
	c := qt.New(t)
	sys := &fakeSystem{}

	reports, err := core.Probe(sys, sys, engineOptions(), &fakeLogger{})
	c.Assert(err, qt.IsNil)
	c.Assert(reports, qt.HasLen, 0)
	c.Assert(sys.events, qt.HasLen, 6)
}

func TestProbeSurfaceFailure(t *testing.T) {
	c := qt.New(t)
	sys := &fakeSystem{surfaceErr: errBoom}

	_, err := core.Probe(sys, sys, engineOptions(), &fakeLogger{})
	c.Assert(err, qt.ErrorAs, new(*core.SurfaceCreationError))
	c.Assert(sys.events, qt.DeepEquals, []string{
		"create window", "create instance", "destroy instance", "destroy window",
	})
}
