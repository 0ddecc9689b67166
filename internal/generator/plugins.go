package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
)

// SetupPlugins applies every catalog plugin listed in the configuration.
// A failing plugin does not stop the others; the errors are joined.
func (g *Generator) SetupPlugins(ctx context.Context, p *Project) error {
	var errs []error
	for _, id := range p.Config.Plugins {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.SetupPlugin(ctx, p, id); err != nil {
			g.logger.Warn("plugin setup failed", "plugin", id, "error", err)
			errs = append(errs, fmt.Errorf("plugin %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// SetupPlugin applies the plugins/<id>/config.json entry to p:
// dependencies, backend dependencies when the project has a backend
// package, setup files, env variables, scripts and post-install notes.
func (g *Generator) SetupPlugin(ctx context.Context, p *Project, id string) error {
	entry, err := catalog.LoadPluginEntry(g.engine.FS(), id)
	if err != nil {
		return err
	}
	cfg := p.Config
	logger := g.logger.With("plugin", entry.ID)
	data := template.NewData(*cfg, template.WithValue("pluginName", entry.Name))

	// Step 1: Frontend dependencies.
	if err := g.addPackages(ctx, p.Path, catalog.ForKey(entry.Dependencies, cfg.Framework), catalog.ForKey(entry.DevDependencies, cfg.Framework)); err != nil {
		return err
	}

	// Step 2: Backend dependencies and files, only when apps/api exists.
	backendDir := filepath.Join(p.Path, filepath.FromSlash(defs.BackendDir))
	hasBackend := isDir(backendDir)
	if hasBackend {
		if err := g.addPackages(ctx, backendDir, catalog.ForKey(entry.BackendDependencies, cfg.Backend), catalog.ForKey(entry.BackendDevDependencies, cfg.Backend)); err != nil {
			return err
		}
	} else if len(entry.BackendDependencies) > 0 || len(entry.BackendSetupFiles) > 0 {
		logger.Debug("no backend package; skipping backend setup", "dir", defs.BackendDir)
	}

	// Step 3: Setup files.
	if err := g.renderSetupFiles(p, entry, catalog.ForKey(entry.SetupFiles, cfg.Framework), p.Path, "", data); err != nil {
		return err
	}
	if hasBackend {
		if err := g.renderSetupFiles(p, entry, catalog.ForKey(entry.BackendSetupFiles, cfg.Backend), backendDir, defs.BackendDir, data); err != nil {
			return err
		}
	}

	// Step 4: Environment.
	lines := make([]EnvLine, 0, len(entry.EnvVariables))
	for _, v := range entry.EnvVariables {
		value := v.Value
		if v.Secret {
			if value, err = GenerateSecret(32); err != nil {
				return err
			}
		}
		lines = append(lines, EnvLine{Key: v.Name, Value: value})
	}
	if err := AppendEnvSection(p.Path, entry.Name, lines); err != nil {
		return fmt.Errorf("write env: %w", err)
	}

	// Step 5: Scripts.
	added, err := MergeScripts(p.Path, entry.Scripts)
	if err != nil {
		return fmt.Errorf("merge scripts: %w", err)
	}
	if len(added) > 0 {
		logger.Debug("scripts added", "scripts", added)
	}

	if steps := entry.PostInstall.Instructions; len(steps) > 0 {
		p.result.Instructions = append(p.result.Instructions, Instruction{Title: entry.Name, Steps: steps})
	}
	logger.Info("plugin configured")
	return nil
}

func (g *Generator) addPackages(ctx context.Context, dir string, deps, devDeps []string) error {
	if len(deps) > 0 {
		if err := g.installer.Add(ctx, dir, deps, false); err != nil {
			return fmt.Errorf("add dependencies: %w", err)
		}
	}
	if len(devDeps) > 0 {
		if err := g.installer.Add(ctx, dir, devDeps, true); err != nil {
			return fmt.Errorf("add dev dependencies: %w", err)
		}
	}
	return nil
}

// renderSetupFiles renders each file relative to the plugin directory into
// destDir. prefix is the destDir path reported in the result.
func (g *Generator) renderSetupFiles(p *Project, entry *catalog.PluginEntry, files []catalog.SetupFile, destDir, prefix string, data template.Data) error {
	for _, f := range files {
		if err := template.ValidateDestPath(destDir, f.Output); err != nil {
			return err
		}
		src := path.Join(catalog.PluginDir(entry.ID), f.Template)
		dest := filepath.Join(destDir, filepath.FromSlash(f.Output))
		written, err := g.engine.RenderFileStatus(src, dest, data, p.Options)
		if err != nil {
			return err
		}
		if written {
			p.written(prefix, []string{f.Output})
		}
	}
	return nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
