// Package plugin keeps an ordered registry of generation plugins and runs
// their lifecycle hooks.
package plugin

import (
	"context"
	"log/slog"
	"time"

	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Hook names a lifecycle phase.
type Hook string

const (
	HookPreGenerate   Hook = "preGenerate"
	HookGenerate      Hook = "generate"
	HookPostGenerate  Hook = "postGenerate"
	HookBeforeInstall Hook = "beforeInstall"
	HookAfterInstall  Hook = "afterInstall"
)

// Hooks returns every lifecycle phase in execution order.
func Hooks() []Hook {
	return []Hook{HookPreGenerate, HookGenerate, HookPostGenerate, HookBeforeInstall, HookAfterInstall}
}

// GenerationContext is created once per generation run and shared by
// reference with every hook.
type GenerationContext struct {
	Config      *models.ProjectConfig
	ProjectPath string
	Engine      *template.Engine
	Logger      *slog.Logger
}

// HookFunc implements one lifecycle phase.
type HookFunc func(ctx context.Context, gc *GenerationContext) error

// Plugin is a named set of optional capabilities. A nil field means the
// plugin does not take part in that phase.
type Plugin struct {
	Name string

	PreGenerate   HookFunc
	Generate      HookFunc
	PostGenerate  HookFunc
	BeforeInstall HookFunc
	AfterInstall  HookFunc

	// ValidateConfig returns human-readable problems; empty means valid.
	ValidateConfig func(cfg *models.ProjectConfig) []string

	// TransformConfig returns the config handed to the next plugin.
	TransformConfig func(cfg models.ProjectConfig) (models.ProjectConfig, error)
}

// hook returns the implementation of h, or nil.
func (p *Plugin) hook(h Hook) HookFunc {
	switch h {
	case HookPreGenerate:
		return p.PreGenerate
	case HookGenerate:
		return p.Generate
	case HookPostGenerate:
		return p.PostGenerate
	case HookBeforeInstall:
		return p.BeforeInstall
	case HookAfterInstall:
		return p.AfterInstall
	}
	return nil
}

// HookResult records one completed hook invocation.
type HookResult struct {
	Plugin   string
	Hook     Hook
	Duration time.Duration
}

// ValidationResult aggregates problems reported by all plugins. Each
// error is prefixed with "[pluginName] ".
type ValidationResult struct {
	Valid  bool
	Errors []string
}
