package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// SetupUILibrary adds the configured component library: its packages and
// templates from ui/<id>/<framework>, else ui/<id>/common.
func (g *Generator) SetupUILibrary(ctx context.Context, p *Project) error {
	cfg := p.Config
	if !models.Selected(cfg.UILibrary) {
		return nil
	}
	lib, ok := catalog.LookupUILibrary(cfg.UILibrary)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUILibrary, cfg.UILibrary)
	}
	if !lib.SupportsFramework(cfg.Framework) {
		return fmt.Errorf("%w: %s with %s", ErrUILibraryUnsupported, lib.ID, cfg.Framework)
	}
	if lib.RequiresTailwind && cfg.Styling != models.StylingTailwind {
		return fmt.Errorf("%w: %s requires tailwind styling", ErrUILibraryUnsupported, lib.ID)
	}

	if pkgs := catalog.ForKey(lib.Packages, cfg.Framework); len(pkgs) > 0 {
		if err := g.installer.Add(ctx, p.Path, pkgs, false); err != nil {
			return fmt.Errorf("add %s packages: %w", lib.ID, err)
		}
	}
	if pkgs := catalog.ForKey(lib.DevPackages, cfg.Framework); len(pkgs) > 0 {
		if err := g.installer.Add(ctx, p.Path, pkgs, true); err != nil {
			return fmt.Errorf("add %s dev packages: %w", lib.ID, err)
		}
	}

	dir := path.Join(defs.UIDir, lib.ID, cfg.Framework)
	if !g.engine.HasDir(dir) {
		dir = path.Join(defs.UIDir, lib.ID, "common")
	}
	if !g.engine.HasDir(dir) {
		g.logger.Debug("no ui library templates", "ui", lib.ID)
		return nil
	}
	data := template.NewData(*cfg, template.WithValue("uiLibraryName", lib.Name))
	res, err := g.engine.CopyTree(ctx, dir, p.Path, data, p.Options)
	if err != nil {
		return fmt.Errorf("copy %s templates: %w", lib.ID, err)
	}
	p.written("", res.Written)
	g.logger.Info("ui library configured", "ui", lib.ID, "files", len(res.Written))
	return nil
}

// SetupAIContext renders the context files of every assistant listed in
// the configuration from ai-context/<id>.
func (g *Generator) SetupAIContext(ctx context.Context, p *Project) error {
	cfg := p.Config
	data := template.NewData(*cfg)
	var missing []string
	for _, id := range cfg.AIContext {
		if !models.Selected(id) {
			continue
		}
		dir := path.Join(defs.AIContextDir, id)
		if !g.engine.HasDir(dir) {
			missing = append(missing, id)
			continue
		}
		name := id
		if a, ok := catalog.LookupAIAssistant(id); ok {
			name = a.Name
		}
		res, err := g.engine.CopyTree(ctx, dir, p.Path, data.With(template.WithValue("assistantName", name)), p.Options)
		if err != nil {
			return fmt.Errorf("copy %s context: %w", id, err)
		}
		p.written("", res.Written)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s %v", ErrMissingTemplates, defs.AIContextDir, missing)
	}
	return nil
}
