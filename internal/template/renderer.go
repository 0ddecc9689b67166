package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// Renderer renders a single template from the store without writing it.
type Renderer interface {
	Render(templatePath string, data Data) ([]byte, error)
}

// Options controls what happens when a destination file already exists.
// SkipIfExists takes precedence over Overwrite.
type Options struct {
	Overwrite    bool
	SkipIfExists bool
}

// Engine renders and copies templates from a template store. Create one
// per CLI invocation and pass it by reference.
type Engine struct {
	fsys   fs.FS
	root   string
	logger *slog.Logger

	mu    sync.RWMutex
	funcs template.FuncMap
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRoot records the on-disk root the filesystem was opened from.
func WithRoot(root string) Option {
	return func(e *Engine) {
		e.root = root
	}
}

// New creates an Engine reading templates from fsys. Template paths are
// slash-separated and relative to the root of fsys. In production fsys is
// os.DirFS of the resolved root; in tests use testing/fstest.MapFS.
func New(fsys fs.FS, opts ...Option) *Engine {
	e := &Engine{
		fsys:   fsys,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		funcs:  defaultHelpers(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open resolves the template root (see ResolveRoot) and returns an Engine
// over it.
func Open(override string, opts ...Option) (*Engine, error) {
	root, err := ResolveRoot(override)
	if err != nil {
		return nil, err
	}
	return New(os.DirFS(root), append([]Option{WithRoot(root)}, opts...)...), nil
}

// Root returns the on-disk template root, or "" for in-memory stores.
func (e *Engine) Root() string {
	return e.root
}

// FS exposes the underlying template store for catalog readers.
func (e *Engine) FS() fs.FS {
	return e.fsys
}

// RegisterHelper adds or replaces a helper. The last registration under a
// name wins.
func (e *Engine) RegisterHelper(name string, fn any) error {
	if !validHelper(fn) {
		return fmt.Errorf("%w: %q", ErrInvalidHelper, name)
	}
	e.mu.Lock()
	e.funcs[name] = fn
	e.mu.Unlock()
	return nil
}

func (e *Engine) helpers() template.FuncMap {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.funcs)
}

// Render compiles and executes one template. Failures are reported as a
// ProcessError wrapping the cause.
func (e *Engine) Render(templatePath string, data Data) ([]byte, error) {
	out, err := e.render(templatePath, data)
	if err != nil {
		return nil, &ProcessError{Path: templatePath, Err: err}
	}
	return out, nil
}

func (e *Engine) render(templatePath string, data Data) ([]byte, error) {
	content, err := fs.ReadFile(e.fsys, templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
		}
		return nil, fmt.Errorf("read: %w", err)
	}

	tmpl, err := template.New(templatePath).
		Funcs(e.helpers()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders templatePath into outputPath.
//
// An existing outputPath is left untouched when SkipIfExists is set and
// rejected with a FileExistsError unless Overwrite is set.
func (e *Engine) RenderFile(templatePath, outputPath string, data Data, opts Options) error {
	_, err := e.renderFile(templatePath, outputPath, data, opts)
	return err
}

// RenderFileStatus is RenderFile that also reports whether outputPath was
// written, so callers can track results without checking the destination
// themselves.
func (e *Engine) RenderFileStatus(templatePath, outputPath string, data Data, opts Options) (bool, error) {
	return e.renderFile(templatePath, outputPath, data, opts)
}

// renderFile reports whether the file was written.
func (e *Engine) renderFile(templatePath, outputPath string, data Data, opts Options) (bool, error) {
	skip, err := checkDestination(outputPath, opts)
	if err != nil || skip {
		return false, err
	}

	out, err := e.render(templatePath, data)
	if err != nil {
		return false, &ProcessError{Path: templatePath, Err: err}
	}
	if err := writeFile(outputPath, out, defs.FilePerm); err != nil {
		return false, &ProcessError{Path: templatePath, Err: err}
	}
	e.logger.Debug("rendered template", "template", templatePath, "output", outputPath)
	return true, nil
}

// checkDestination applies the exists policy. skip is true when the
// destination exists and SkipIfExists is set.
func checkDestination(outputPath string, opts Options) (skip bool, err error) {
	_, statErr := os.Stat(outputPath)
	switch {
	case errors.Is(statErr, fs.ErrNotExist):
		return false, nil
	case statErr != nil:
		return false, fmt.Errorf("stat %s: %w", outputPath, statErr)
	case opts.SkipIfExists:
		return true, nil
	case !opts.Overwrite:
		return false, &FileExistsError{Path: outputPath}
	}
	return false, nil
}

func writeFile(path string, content []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
