// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window provides the native windowing platforms able to host
// a Vulkan surface.
package window

import (
	"strings"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/devblok/vkctx/core"
)

// Backend names a windowing library
type Backend string

// Supported backends
const (
	SDL  Backend = "sdl"
	GLFW Backend = "glfw"
)

// ParseBackend resolves a backend name. An empty name selects SDL.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", SDL:
		return SDL, nil
	case GLFW:
		return GLFW, nil
	default:
		return "", errors.Errorf("unknown window backend %q", name)
	}
}

// Platform is an initialised windowing system. It outlives every
// window it opens.
type Platform interface {
	core.Platform

	// ProcAddr returns vkGetInstanceProcAddr as loaded by the windowing system.
	ProcAddr() unsafe.Pointer

	// Terminate shuts the windowing system down.
	Terminate()
}

// Open initialises the named windowing backend. It must be called
// from the main thread.
func Open(backend string) (Platform, error) {
	b, err := ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	switch b {
	case GLFW:
		return openGLFW()
	default:
		return openSDL()
	}
}

func wrapSurfaceError(err error) error {
	return &core.SurfaceCreationError{Err: err}
}
