// Package template resolves the template store, renders template files and
// mirrors template subtrees into a project directory.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a template file or subtree does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrRootNotFound indicates no candidate template root exists.
	ErrRootNotFound = errors.New("template: root directory not found")

	// ErrFileExists indicates the destination exists and neither overwrite
	// nor skip-if-exists was requested.
	ErrFileExists = errors.New("template: file already exists")

	// ErrPathTraversal indicates a template path would escape the destination.
	ErrPathTraversal = errors.New("template: path traversal detected")

	// ErrInvalidHelper indicates a helper value that text/template cannot call.
	ErrInvalidHelper = errors.New("template: invalid helper")
)

// RootNotFoundError lists every directory probed while resolving the root.
type RootNotFoundError struct {
	Probed []string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("template root not found, probed: %s", strings.Join(e.Probed, ", "))
}

// Is matches ErrRootNotFound.
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}

// FileExistsError reports a destination that would be clobbered.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// Is matches ErrFileExists.
func (e *FileExistsError) Is(target error) bool {
	return target == ErrFileExists
}

// ProcessError is the single error shape for read, compile, execute and
// write failures of one template.
type ProcessError struct {
	Path string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to process template: %s: %v", e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
