// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/vkctx/core"
)

type sdlPlatform struct{}

func openSDL() (Platform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "sdl.Init()")
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "sdl.VulkanLoadLibrary()")
	}
	return sdlPlatform{}, nil
}

func (sdlPlatform) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (sdlPlatform) Terminate() {
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}

func (sdlPlatform) OpenWindow(cfg core.WindowConfiguration) (core.Window, error) {
	var flags uint32 = sdl.WINDOW_VULKAN
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags)
	if err != nil {
		return nil, &core.WindowCreationError{Err: errors.Wrap(err, "sdl.CreateWindow()")}
	}
	return &sdlWindow{window: window}, nil
}

type sdlWindow struct {
	window *sdl.Window
	closed bool
}

func (w *sdlWindow) RequiredExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *sdlWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	surface, err := w.window.VulkanCreateSurface(instance.Inner())
	if err != nil {
		return nil, wrapSurfaceError(errors.Wrap(err, "sdl.VulkanCreateSurface()"))
	}
	return instance.AdoptSurface(uintptr(surface)), nil
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closed
}

// PollEvents drains the SDL event queue. Quit events and the escape key
// request closing.
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				w.closed = true
			}
		case *sdl.QuitEvent:
			w.closed = true
		}
	}
}

func (w *sdlWindow) Destroy() {
	w.window.Destroy()
}
