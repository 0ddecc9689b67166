package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/BuunGroupCore/precast-app-sub003/internal/config"
	"github.com/BuunGroupCore/precast-app-sub003/internal/generator"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
)

// ErrNothingToAdd is returned when add is run without any feature flag.
var ErrNothingToAdd = errors.New("nothing to add: pass --plugin, --auth, --ui-library or --mcp")

type addOptions struct {
	dir       string
	plugins   []string
	auth      string
	uiLibrary string
	mcp       []string
}

func newAddCmd(a *app) *cobra.Command {
	o := &addOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add plugins, auth, a UI library or MCP servers to an existing project",
		Long: `add applies auxiliary setups to a project created by create-precast-app.
The project's precast.yaml supplies the stack; files that already exist
are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd.Context(), a.deps, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.dir, "dir", ".", "project directory")
	f.StringSliceVar(&o.plugins, "plugin", nil, "plugin to add (repeatable)")
	f.StringVar(&o.auth, "auth", "", "authentication provider")
	f.StringVar(&o.uiLibrary, "ui-library", "", "UI component library")
	f.StringSliceVar(&o.mcp, "mcp", nil, "MCP server to configure (repeatable)")
	return cmd
}

type setupFunc func(ctx context.Context, p *generator.Project) error

func runAdd(ctx context.Context, deps *Dependencies, o *addOptions) error {
	if len(o.plugins) == 0 && o.auth == "" && o.uiLibrary == "" && len(o.mcp) == 0 {
		return ErrNothingToAdd
	}

	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", o.dir, err)
	}
	manifest, err := generator.LoadProjectManifest(dir)
	if err != nil {
		return err
	}
	cfg := manifest.Project

	var steps []func(*generator.Generator) setupFunc
	if o.auth != "" {
		cfg.AuthProvider = o.auth
		steps = append(steps, func(g *generator.Generator) setupFunc { return g.SetupAuth })
	}
	if o.uiLibrary != "" {
		cfg.UILibrary = o.uiLibrary
		steps = append(steps, func(g *generator.Generator) setupFunc { return g.SetupUILibrary })
	}
	if len(o.mcp) > 0 {
		cfg.MCPServers = appendUnique(cfg.MCPServers, o.mcp...)
		steps = append(steps, func(g *generator.Generator) setupFunc { return g.SetupMCP })
	}
	for _, id := range o.plugins {
		cfg.Plugins = appendUnique(cfg.Plugins, id)
		steps = append(steps, func(g *generator.Generator) setupFunc {
			return func(ctx context.Context, p *generator.Project) error {
				return g.SetupPlugin(ctx, p, id)
			}
		})
	}

	if err := config.Validate(&cfg); err != nil {
		return err
	}

	gen, err := deps.Generator(&cfg, nil, deps.Spinner(ctx).Wrap)
	if err != nil {
		return err
	}
	proj := generator.NewProject(&cfg, dir, template.Options{SkipIfExists: true})

	for _, step := range steps {
		if err := step(gen)(ctx, proj); err != nil {
			return err
		}
	}

	manifest.Project = cfg
	if err := generator.SaveProjectManifest(dir, *manifest); err != nil {
		return err
	}

	res := proj.Result()
	deps.Logger.Info("project updated", "path", dir, "files", len(res.Written))
	printResult(deps, res, []string{fmt.Sprintf("%d files written to %s", len(res.Written), dir)})
	return nil
}

func appendUnique(list []string, items ...string) []string {
	for _, it := range items {
		if !slices.Contains(list, it) {
			list = append(list, it)
		}
	}
	return list
}
