package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/internal/plugin"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Reporter receives phase notifications, for example to drive a progress bar.
type Reporter interface {
	// Start announces the number of phases about to run.
	Start(total int)
	// Step announces the phase that is starting.
	Step(name string)
	// Done is called once after the last phase, on success or failure.
	Done()
}

type nopReporter struct{}

func (nopReporter) Start(int) {}

func (nopReporter) Step(string) {}

func (nopReporter) Done() {}

// FrameworkFunc writes the framework scaffold between the preGenerate and
// generate phases. It returns the written paths relative to the project.
type FrameworkFunc func(ctx context.Context, gc *plugin.GenerationContext, data template.Data) ([]string, error)

// Options configures a Generator.
type Options struct {
	// Installer adds and installs packages. Defaults to ManifestInstaller.
	Installer Installer
	Logger    *slog.Logger
	Reporter  Reporter
	// Frameworks adds or replaces per-framework entry points.
	Frameworks map[string]FrameworkFunc
	// WriteManifest records the resolved configuration in precast.yaml
	// after the auxiliary setups. Off by default so that Generate writes
	// only what the templates produce.
	WriteManifest bool
	// Version is recorded in the project manifest.
	Version string
}

// Generator scaffolds projects. It owns no global state: the engine and
// plugin manager are created by the caller, once per CLI invocation.
type Generator struct {
	engine     *template.Engine
	plugins    *plugin.Manager
	installer  Installer
	logger     *slog.Logger
	reporter   Reporter
	frameworks map[string]FrameworkFunc
	manifest   bool
	version    string
}

// New creates a Generator. plugins may be nil.
func New(engine *template.Engine, plugins *plugin.Manager, opts Options) *Generator {
	g := &Generator{
		engine:     engine,
		plugins:    plugins,
		installer:  opts.Installer,
		logger:     opts.Logger,
		reporter:   opts.Reporter,
		frameworks: make(map[string]FrameworkFunc),
		manifest:   opts.WriteManifest,
		version:    opts.Version,
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.plugins == nil {
		g.plugins = plugin.NewManager(g.logger)
	}
	if g.installer == nil {
		g.installer = ManifestInstaller{}
	}
	if g.reporter == nil {
		g.reporter = nopReporter{}
	}
	for _, fw := range catalog.Frameworks() {
		g.frameworks[fw.ID] = ScaffoldFramework(fw.ID, fw.Sources())
	}
	for id, fn := range opts.Frameworks {
		g.frameworks[id] = fn
	}
	return g
}

// Instruction is a titled list of follow-up steps for the user.
type Instruction struct {
	Title string
	Steps []string
}

// Result summarizes a generation run.
type Result struct {
	ProjectPath string
	// Written lists files relative to ProjectPath, slash-separated.
	Written      []string
	Hooks        []plugin.HookResult
	Warnings     []string
	Instructions []Instruction
}

// Project is the target of auxiliary setups. The create flow uses one with
// Overwrite; incremental flows use SkipIfExists.
type Project struct {
	Config  *models.ProjectConfig
	Path    string
	Options template.Options

	result *Result
}

// NewProject returns a Project collecting into a fresh Result.
func NewProject(cfg *models.ProjectConfig, projectPath string, opts template.Options) *Project {
	return &Project{
		Config:  cfg,
		Path:    projectPath,
		Options: opts,
		result:  &Result{ProjectPath: projectPath},
	}
}

// Result returns what the setups run against p have produced so far.
func (p *Project) Result() *Result {
	return p.result
}

func (p *Project) warn(msg string) {
	p.result.Warnings = append(p.result.Warnings, msg)
}

func (p *Project) written(prefix string, files []string) {
	for _, f := range files {
		p.result.Written = append(p.result.Written, path.Join(prefix, f))
	}
}

// phase is one named step of Generate. Soft phases log and record their
// error as a warning; hard phases abort the run.
type phase struct {
	name string
	soft bool
	run  func(ctx context.Context) error
}

// Generate scaffolds cfg into projectPath.
//
// The framework is checked before anything touches the disk. Phases then
// run in a fixed order: preGenerate hooks, framework base and source
// trees, generate hooks, postGenerate hooks, then the auxiliary setups
// (AI context, UI library, auth, MCP, plugins), the project manifest and
// package installation wrapped by the install hooks. Auxiliary failures
// become warnings and never roll back the scaffold.
func (g *Generator) Generate(ctx context.Context, cfg models.ProjectConfig, projectPath string) (*Result, error) {
	// Step 1: Reject unknown frameworks and unsupported auth before any write.
	scaffold, ok := g.frameworks[cfg.Framework]
	if !ok {
		return nil, &UnknownFrameworkError{Framework: cfg.Framework}
	}
	cfg.Coerce()
	if err := checkAuthSupport(&cfg); err != nil {
		return nil, err
	}

	// Step 2: Let plugins validate and transform the configuration.
	if res := g.plugins.ValidateConfig(&cfg); !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(res.Errors, "; "))
	}
	cfg, err := g.plugins.TransformConfig(cfg)
	if err != nil {
		return nil, err
	}

	projectPath, err = filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve project path: %w", err)
	}
	cfg.ProjectPath = projectPath

	// Step 3: Build the shared generation context.
	gc := &plugin.GenerationContext{
		Config:      &cfg,
		ProjectPath: projectPath,
		Engine:      g.engine,
		Logger:      g.logger,
	}
	proj := NewProject(&cfg, projectPath, template.Options{Overwrite: true})
	result := proj.result

	g.logger.Info("generating project",
		"name", cfg.Name,
		"framework", cfg.Framework,
		"path", projectPath,
	)

	hooks := func(run func(context.Context, *plugin.GenerationContext) ([]plugin.HookResult, error)) func(context.Context) error {
		return func(ctx context.Context) error {
			done, err := run(ctx, gc)
			result.Hooks = append(result.Hooks, done...)
			return err
		}
	}

	phases := []phase{
		{name: "Running pre-generate hooks", run: hooks(g.plugins.RunPreGenerate)},
		{name: "Copying framework templates", run: func(ctx context.Context) error {
			files, err := scaffold(ctx, gc, template.NewData(cfg))
			proj.written("", files)
			return err
		}},
		{name: "Running generate hooks", run: hooks(g.plugins.RunGenerate)},
		{name: "Running post-generate hooks", run: hooks(g.plugins.RunPostGenerate)},
	}
	if len(cfg.AIContext) > 0 {
		phases = append(phases, phase{name: "Setting up AI context", soft: true, run: func(ctx context.Context) error {
			return g.SetupAIContext(ctx, proj)
		}})
	}
	if models.Selected(cfg.UILibrary) && g.supportsUILibraries(cfg.Framework) {
		phases = append(phases, phase{name: "Setting up UI library", soft: true, run: func(ctx context.Context) error {
			return g.SetupUILibrary(ctx, proj)
		}})
	}
	if models.Selected(cfg.AuthProvider) {
		phases = append(phases, phase{name: "Setting up authentication", soft: true, run: func(ctx context.Context) error {
			return g.SetupAuth(ctx, proj)
		}})
	}
	if len(cfg.MCPServers) > 0 {
		phases = append(phases, phase{name: "Configuring MCP servers", soft: true, run: func(ctx context.Context) error {
			return g.SetupMCP(ctx, proj)
		}})
	}
	if len(cfg.Plugins) > 0 {
		phases = append(phases, phase{name: "Setting up plugins", soft: true, run: func(ctx context.Context) error {
			return g.SetupPlugins(ctx, proj)
		}})
	}
	if g.manifest {
		phases = append(phases, phase{name: "Writing project manifest", soft: true, run: func(context.Context) error {
			return WriteProjectManifest(projectPath, cfg, g.version)
		}})
	}
	phases = append(phases, phase{name: "Running before-install hooks", run: hooks(g.plugins.RunBeforeInstall)})
	if cfg.AutoInstall {
		phases = append(phases, phase{name: "Installing dependencies", soft: true, run: func(ctx context.Context) error {
			return g.installer.Install(ctx, projectPath)
		}})
	}
	phases = append(phases, phase{name: "Running after-install hooks", run: hooks(g.plugins.RunAfterInstall)})

	g.reporter.Start(len(phases))
	defer g.reporter.Done()

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		g.reporter.Step(p.name)
		if err := p.run(ctx); err != nil {
			if !p.soft {
				return result, err
			}
			g.logger.Warn("setup failed", "setup", p.name, "error", err)
			proj.warn(fmt.Sprintf("%s: %v", p.name, err))
		}
	}

	g.logger.Info("project generated",
		"path", projectPath,
		"files", len(result.Written),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

func (g *Generator) supportsUILibraries(framework string) bool {
	fw, ok := catalog.LookupFramework(framework)
	if !ok {
		// Frameworks registered through Options are assumed capable.
		return true
	}
	return fw.UILibraries
}

// ScaffoldFramework returns the default entry point: copy
// frameworks/<id>/base into the project, then each existing source
// subtree (src, app, ...) into the same-named project subdirectory.
// Source subtrees are probed, not assumed.
func ScaffoldFramework(id string, sources []string) FrameworkFunc {
	return func(ctx context.Context, gc *plugin.GenerationContext, data template.Data) ([]string, error) {
		root := path.Join(defs.FrameworksDir, id)
		opts := template.Options{Overwrite: true}

		res, err := gc.Engine.CopyTree(ctx, path.Join(root, "base"), gc.ProjectPath, data, opts)
		if err != nil {
			return nil, fmt.Errorf("copy %s base: %w", id, err)
		}
		written := res.Written

		for _, src := range sources {
			dir := path.Join(root, src)
			if !gc.Engine.HasDir(dir) {
				continue
			}
			res, err := gc.Engine.CopyTree(ctx, dir, filepath.Join(gc.ProjectPath, src), data, opts)
			if err != nil {
				return written, fmt.Errorf("copy %s %s: %w", id, src, err)
			}
			for _, f := range res.Written {
				written = append(written, path.Join(src, f))
			}
		}
		return written, nil
	}
}
