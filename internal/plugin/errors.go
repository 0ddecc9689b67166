package plugin

import (
	"errors"
	"fmt"
)

// Sentinel errors for plugin operations.
var (
	// ErrDuplicatePlugin indicates a plugin with the same name is registered.
	ErrDuplicatePlugin = errors.New("plugin: already registered")

	// ErrInvalidPlugin indicates a plugin without a name.
	ErrInvalidPlugin = errors.New("plugin: name is required")

	// ErrUnknownHook indicates a hook name outside the lifecycle.
	ErrUnknownHook = errors.New("plugin: unknown hook")
)

// DuplicatePluginError names the plugin that was registered twice.
type DuplicatePluginError struct {
	Name string
}

func (e *DuplicatePluginError) Error() string {
	return fmt.Sprintf("plugin %q is already registered", e.Name)
}

// Is matches ErrDuplicatePlugin.
func (e *DuplicatePluginError) Is(target error) bool {
	return target == ErrDuplicatePlugin
}

// HookError identifies the plugin and phase that failed.
type HookError struct {
	Plugin string
	Hook   Hook
	Err    error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("plugin %s: %s hook: %v", e.Plugin, e.Hook, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
