// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/devblok/vkctx/core"
)

// Setting keys
const (
	WindowWidth       = "WINDOW_WIDTH"
	WindowHeight      = "WINDOW_HEIGHT"
	WindowTitle       = "WINDOW_TITLE"
	WindowResizable   = "WINDOW_RESIZABLE"
	WindowBackend     = "WINDOW_BACKEND"
	ValidationEnabled = "VALIDATION_ENABLED"
	DeviceFilter      = "DEVICE_FILTER"
	LogLevel          = "LOG_LEVEL"
	LogFormat         = "LOG_FORMAT"
	EventPollDelay    = "EVENT_POLL_DELAY"
)

// Settings is the decoded process configuration
type Settings struct {
	Engine    core.Configuration
	Backend   string
	LogLevel  string
	LogFormat string
}

// Load decodes settings from store. Window dimensions are required,
// everything else falls back to a zero value.
func Load(store Store) (Settings, error) {
	var (
		s   Settings
		err error
	)
	w := &s.Engine.Bootstrap.Window

	if w.Width, err = requireUint(store, WindowWidth); err != nil {
		return Settings{}, err
	}
	if w.Height, err = requireUint(store, WindowHeight); err != nil {
		return Settings{}, err
	}
	w.Title, _ = store.Lookup(WindowTitle)
	if w.Resizable, err = optionalBool(store, WindowResizable); err != nil {
		return Settings{}, err
	}
	if s.Engine.Bootstrap.Validation, err = optionalBool(store, ValidationEnabled); err != nil {
		return Settings{}, err
	}
	s.Engine.Bootstrap.DeviceFilter, _ = store.Lookup(DeviceFilter)
	if s.Engine.Time.EventPollDelay, err = optionalDuration(store, EventPollDelay); err != nil {
		return Settings{}, err
	}

	s.Backend, _ = store.Lookup(WindowBackend)
	s.LogLevel, _ = store.Lookup(LogLevel)
	s.LogFormat, _ = store.Lookup(LogFormat)

	if err := s.Engine.Bootstrap.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func requireUint(store Store, key string) (uint32, error) {
	v, ok := store.Lookup(key)
	if !ok {
		return 0, errors.Errorf("missing setting %s", key)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 31)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s", key)
	}
	return uint32(n), nil
}

func optionalBool(store Store, key string) (bool, error) {
	v, ok := store.Lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, errors.Wrapf(err, "setting %s", key)
	}
	return b, nil
}

// optionalDuration accepts Go durations or a bare number of milliseconds.
func optionalDuration(store Store, key string) (time.Duration, error) {
	v, ok := store.Lookup(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return 0, nil
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s", key)
	}
	return d, nil
}
