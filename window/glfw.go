// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/devblok/vkctx/core"
)

type glfwPlatform struct{}

func openGLFW() (Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw.Init()")
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("glfw: vulkan loader not found")
	}
	return glfwPlatform{}, nil
}

func (glfwPlatform) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (glfwPlatform) Terminate() {
	glfw.Terminate()
}

func (glfwPlatform) OpenWindow(cfg core.WindowConfiguration) (core.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		return nil, &core.WindowCreationError{Err: errors.Wrap(err, "glfw.CreateWindow()")}
	}
	return &glfwWindow{window: window}, nil
}

type glfwWindow struct {
	window *glfw.Window
}

func (w *glfwWindow) RequiredExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

func (w *glfwWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	surface, err := w.window.CreateWindowSurface(instance.Inner(), nil)
	if err != nil {
		return nil, wrapSurfaceError(errors.Wrap(err, "glfw.CreateWindowSurface()"))
	}
	return instance.AdoptSurface(surface), nil
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
}
