// Package generator turns a ProjectConfig into a project directory. It
// drives the template engine through a fixed phase order, runs plugin
// hooks between phases and layers auxiliary setups (AI context, UI
// library, auth, MCP, plugins) on top of the framework scaffold.
package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation.
var (
	// ErrUnknownFramework indicates a framework the dispatcher does not know.
	ErrUnknownFramework = errors.New("generator: unknown framework")

	// ErrInvalidConfig indicates plugin validation rejected the config.
	ErrInvalidConfig = errors.New("generator: invalid configuration")

	// ErrAuthUnsupported indicates the auth provider does not support the
	// selected framework.
	ErrAuthUnsupported = errors.New("generator: auth provider does not support framework")

	// ErrUnknownAuthProvider indicates an auth provider missing from the catalog.
	ErrUnknownAuthProvider = errors.New("generator: unknown auth provider")

	// ErrUnknownUILibrary indicates a UI library missing from the catalog.
	ErrUnknownUILibrary = errors.New("generator: unknown UI library")

	// ErrUILibraryUnsupported indicates the UI library cannot be used with
	// the selected framework or styling.
	ErrUILibraryUnsupported = errors.New("generator: UI library not supported for stack")

	// ErrUnknownMCPServer indicates an MCP server missing from the catalog
	// and the template store.
	ErrUnknownMCPServer = errors.New("generator: unknown MCP server")

	// ErrMissingTemplates indicates a setup found no template subtree to copy.
	ErrMissingTemplates = errors.New("generator: no templates")
)

// UnknownFrameworkError names the rejected framework.
type UnknownFrameworkError struct {
	Framework string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown framework: %s", e.Framework)
}

// Is matches ErrUnknownFramework.
func (e *UnknownFrameworkError) Is(target error) bool {
	return target == ErrUnknownFramework
}
