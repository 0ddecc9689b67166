// Package cli provides the cobra command tree of create-precast-app. This
// file defines the Dependencies struct (Composition Root) that wires the
// template engine, plugin manager, generator and terminal UI together.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/BuunGroupCore/precast-app-sub003/internal/config"
	"github.com/BuunGroupCore/precast-app-sub003/internal/generator"
	"github.com/BuunGroupCore/precast-app-sub003/internal/logging"
	"github.com/BuunGroupCore/precast-app-sub003/internal/plugin"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/internal/ui"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/version"
)

// A failed package manager command is retried once.
const (
	installRetries    = 1
	installRetryDelay = 2 * time.Second
)

// Dependencies holds the services of one invocation. This is the only
// place where concrete types are instantiated and wired together; there
// is exactly one engine and one plugin manager per run.
type Dependencies struct {
	Settings *config.Settings
	Loader   *config.Loader
	Logger   *slog.Logger

	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Renderer *ui.Renderer
	Out      io.Writer
	ErrOut   io.Writer

	engine  *template.Engine
	plugins *plugin.Manager
}

// newDependencies wires everything that does not need the template store.
func newDependencies(s *config.Settings, l *config.Loader, hm *ui.HeadlessManager, out, errOut io.Writer, jsonLogs bool) (*Dependencies, error) {
	logger := logging.New(errOut, logging.Options{Verbose: s.Verbose, JSON: jsonLogs})

	plugins := plugin.NewManager(logger.With("module", "plugin"))
	for _, p := range plugin.Builtins() {
		if err := plugins.Register(p); err != nil {
			return nil, err
		}
	}

	theme := ui.DefaultTheme()
	return &Dependencies{
		Settings: s,
		Loader:   l,
		Logger:   logger,
		Theme:    theme,
		Headless: hm,
		Renderer: ui.NewRenderer(theme, hm),
		Out:      out,
		ErrOut:   errOut,
		plugins:  plugins,
	}, nil
}

// Engine opens the template store on first use. Commands that only print
// static catalogs never touch it.
func (d *Dependencies) Engine() (*template.Engine, error) {
	if d.engine != nil {
		return d.engine, nil
	}
	e, err := template.Open(d.Settings.TemplateDir, template.WithLogger(d.Logger.With("module", "template")))
	if err != nil {
		return nil, err
	}
	d.Logger.Debug("template root resolved", "root", e.Root())
	d.engine = e
	return e, nil
}

// Interactive reports whether prompts and animations may be used.
func (d *Dependencies) Interactive() bool {
	return !d.Headless.IsHeadless()
}

// Installer returns the package installer for cfg. wrap decorates each
// package manager command; it may be nil.
func (d *Dependencies) Installer(cfg *models.ProjectConfig, wrap generator.Wrapper) generator.Installer {
	if !cfg.AutoInstall {
		return generator.ManifestInstaller{}
	}
	inst := &generator.ExecInstaller{
		PackageManager: cfg.PackageManager,
		Wrap:           wrap,
		Retries:        installRetries,
		RetryDelay:     installRetryDelay,
	}
	if d.Settings.Verbose {
		inst.Output = d.ErrOut
	}
	return inst
}

// Generator builds a generator for cfg. reporter may be nil.
func (d *Dependencies) Generator(cfg *models.ProjectConfig, reporter generator.Reporter, wrap generator.Wrapper) (*generator.Generator, error) {
	engine, err := d.Engine()
	if err != nil {
		return nil, err
	}
	return generator.New(engine, d.plugins, generator.Options{
		Installer: d.Installer(cfg, wrap),
		Logger:    d.Logger.With("module", "generator"),
		Reporter:  reporter,
		Version:   version.Short(),

		WriteManifest: true,
	}), nil
}

// Spinner returns the spinner used to wrap package manager commands
// outside of a progress bar.
func (d *Dependencies) Spinner(ctx context.Context) *ui.Spinner {
	return ui.NewSpinner(ctx, d.Theme, d.Headless, d.Out)
}
