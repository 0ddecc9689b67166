package plugin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Manager holds plugins in registration order. Registration order is hook
// execution order: later plugins may depend on files or config produced by
// earlier ones.
type Manager struct {
	mu      sync.RWMutex
	plugins []*Plugin
	logger  *slog.Logger
}

// NewManager creates an empty Manager. A nil logger discards output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{logger: logger}
}

// Register appends p. It fails with DuplicatePluginError when the name is
// already taken.
func (m *Manager) Register(p *Plugin) error {
	if p == nil || p.Name == "" {
		return ErrInvalidPlugin
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.ContainsFunc(m.plugins, func(q *Plugin) bool { return q.Name == p.Name }) {
		return &DuplicatePluginError{Name: p.Name}
	}
	m.plugins = append(m.plugins, p)
	m.logger.Debug("plugin registered", "plugin", p.Name, "plugin_count", len(m.plugins))
	return nil
}

// Unregister removes the named plugin and reports whether it was present.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.plugins, func(p *Plugin) bool { return p.Name == name })
	if i < 0 {
		return false
	}
	m.plugins = slices.Delete(m.plugins, i, i+1)
	m.logger.Debug("plugin unregistered", "plugin", name)
	return true
}

// Plugins returns registered names in execution order.
func (m *Manager) Plugins() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.plugins))
	for i, p := range m.plugins {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of registered plugins.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plugins)
}

// snapshot lets hooks register or unregister plugins without deadlocking;
// such changes apply from the next phase on.
func (m *Manager) snapshot() []*Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.plugins)
}

// ExecuteHook runs hook for every plugin implementing it, one at a time in
// registration order. The first failure is logged and returned as a
// HookError; remaining plugins are not invoked. Results cover the hooks
// that completed.
func (m *Manager) ExecuteHook(ctx context.Context, hook Hook, gc *GenerationContext) ([]HookResult, error) {
	if !slices.Contains(Hooks(), hook) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHook, hook)
	}

	var results []HookResult
	for _, p := range m.snapshot() {
		fn := p.hook(hook)
		if fn == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()
		if err := fn(ctx, gc); err != nil {
			m.logger.Error("plugin hook failed",
				"plugin", p.Name,
				"hook", string(hook),
				"error", err.Error(),
			)
			return results, &HookError{Plugin: p.Name, Hook: hook, Err: err}
		}

		elapsed := time.Since(start)
		m.logger.Debug("plugin hook completed", "plugin", p.Name, "hook", string(hook), "duration", elapsed)
		results = append(results, HookResult{Plugin: p.Name, Hook: hook, Duration: elapsed})
	}
	return results, nil
}

// ValidateConfig asks every plugin to validate cfg and collects all
// problems instead of stopping at the first.
func (m *Manager) ValidateConfig(cfg *models.ProjectConfig) ValidationResult {
	var errs []string
	for _, p := range m.snapshot() {
		if p.ValidateConfig == nil {
			continue
		}
		for _, msg := range p.ValidateConfig(cfg) {
			errs = append(errs, fmt.Sprintf("[%s] %s", p.Name, msg))
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// TransformConfig folds every plugin's transform over cfg in registration
// order; each plugin receives the previous plugin's output. The caller's
// value is never modified.
func (m *Manager) TransformConfig(cfg models.ProjectConfig) (models.ProjectConfig, error) {
	out := cfg.Clone()
	for _, p := range m.snapshot() {
		if p.TransformConfig == nil {
			continue
		}
		next, err := p.TransformConfig(out.Clone())
		if err != nil {
			m.logger.Error("plugin config transform failed", "plugin", p.Name, "error", err.Error())
			return cfg, fmt.Errorf("plugin %s: transform config: %w", p.Name, err)
		}
		out = next
	}
	return out, nil
}

// RunPreGenerate executes the preGenerate phase.
func (m *Manager) RunPreGenerate(ctx context.Context, gc *GenerationContext) ([]HookResult, error) {
	return m.ExecuteHook(ctx, HookPreGenerate, gc)
}

// RunGenerate executes the generate phase.
func (m *Manager) RunGenerate(ctx context.Context, gc *GenerationContext) ([]HookResult, error) {
	return m.ExecuteHook(ctx, HookGenerate, gc)
}

// RunPostGenerate executes the postGenerate phase.
func (m *Manager) RunPostGenerate(ctx context.Context, gc *GenerationContext) ([]HookResult, error) {
	return m.ExecuteHook(ctx, HookPostGenerate, gc)
}

// RunBeforeInstall executes the beforeInstall phase.
func (m *Manager) RunBeforeInstall(ctx context.Context, gc *GenerationContext) ([]HookResult, error) {
	return m.ExecuteHook(ctx, HookBeforeInstall, gc)
}

// RunAfterInstall executes the afterInstall phase.
func (m *Manager) RunAfterInstall(ctx context.Context, gc *GenerationContext) ([]HookResult, error) {
	return m.ExecuteHook(ctx, HookAfterInstall, gc)
}
