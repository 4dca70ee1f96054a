package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkctx/core"
)

func TestNegotiateWithoutValidation(t *testing.T) {
	c := qt.New(t)

	exts := core.NegotiateExtensions([]string{"VK_KHR_surface", "VK_KHR_xlib_surface"}, false)
	c.Assert(exts, qt.DeepEquals, []string{"VK_KHR_surface", "VK_KHR_xlib_surface"})

	layers := core.NegotiateLayers(false)
	c.Assert(layers, qt.IsNotNil)
	c.Assert(layers, qt.HasLen, 0)
}

func TestNegotiateWithValidation(t *testing.T) {
	c := qt.New(t)

	exts := core.NegotiateExtensions([]string{"VK_KHR_surface"}, true)
	c.Assert(exts, qt.DeepEquals, []string{"VK_KHR_surface", core.DiagnosticsExtension})
	c.Assert(core.NegotiateLayers(true), qt.DeepEquals, []string{core.ValidationLayer})
}

func TestNegotiateDropsDuplicates(t *testing.T) {
	c := qt.New(t)

	required := []string{core.DiagnosticsExtension, "VK_KHR_surface", "VK_KHR_surface"}
	exts := core.NegotiateExtensions(required, true)
	c.Assert(exts, qt.DeepEquals, []string{core.DiagnosticsExtension, "VK_KHR_surface"})
}

func TestNegotiateEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(core.NegotiateExtensions(nil, false), qt.HasLen, 0)
	c.Assert(core.NegotiateExtensions(nil, true), qt.DeepEquals, []string{core.DiagnosticsExtension})
}

func TestCreateInstanceClassifiesFailure(t *testing.T) {
	tests := []struct {
		err    error
		reason core.Reason
	}{
		{core.ErrLayerNotPresent, core.ReasonLayerNotPresent},
		{core.ErrExtensionNotPresent, core.ReasonExtensionNotPresent},
		{core.ErrFeatureNotPresent, core.ReasonUnknown},
		{errBoom, core.ReasonUnknown},
	}
	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			c := qt.New(t)
			sys := &fakeSystem{instanceErr: test.err}
			log := &fakeLogger{}

			_, err := core.CreateInstance(sys, []string{"VK_KHR_surface"}, nil, false, log)
			var ice *core.InstanceCreationError
			c.Assert(err, qt.ErrorAs, &ice)
			c.Assert(ice.Reason, qt.Equals, test.reason)
			c.Assert(ice.Stage(), qt.Equals, "instance")
			c.Assert(log.tier("warn"), qt.HasLen, 1)
		})
	}
}

func TestCreateInstanceLogsRequests(t *testing.T) {
	c := qt.New(t)
	sys := &fakeSystem{}
	log := &fakeLogger{}

	_, err := core.CreateInstance(sys, []string{"a", "b"}, []string{"layer"}, true, log)
	c.Assert(err, qt.IsNil)
	c.Assert(log.tier("verbose"), qt.DeepEquals, []string{
		"Creating vulkan instance with following extensions:",
		"\ta",
		"\tb",
		"Validation layers requested:",
		"\tlayer",
	})
	c.Assert(sys.gotExtensions, qt.DeepEquals, []string{"a", "b"})
	c.Assert(sys.gotLayers, qt.DeepEquals, []string{"layer"})
}
