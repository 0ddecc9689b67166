package plugin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// recorder builds plugins whose hooks append their name to calls.
type recorder struct {
	calls []string
}

func (r *recorder) plugin(name string, fail error) *Plugin {
	return &Plugin{
		Name: name,
		Generate: func(ctx context.Context, gc *GenerationContext) error {
			r.calls = append(r.calls, name)
			return fail
		},
	}
}

func TestRegister(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.Register(&Plugin{Name: "a"}))

	err := m.Register(&Plugin{Name: "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatePlugin)
	var dup *DuplicatePluginError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)

	assert.ErrorIs(t, m.Register(&Plugin{}), ErrInvalidPlugin)
	assert.ErrorIs(t, m.Register(nil), ErrInvalidPlugin)
	assert.Equal(t, 1, m.Len())
}

func TestUnregister(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.Register(&Plugin{Name: "a"}))

	assert.True(t, m.Unregister("a"))
	assert.False(t, m.Unregister("a"))
	assert.False(t, m.Unregister("never"))
	assert.Empty(t, m.Plugins())
}

func TestExecuteHookOrder(t *testing.T) {
	r := &recorder{}
	m := NewManager(nil)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, m.Register(r.plugin(name, nil)))
	}
	require.NoError(t, m.Register(&Plugin{Name: "no-hooks"}))

	results, err := m.RunGenerate(context.Background(), &GenerationContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, r.calls)
	require.Len(t, results, 3)
	for i, name := range []string{"A", "B", "C"} {
		assert.Equal(t, name, results[i].Plugin)
		assert.Equal(t, HookGenerate, results[i].Hook)
	}

	r.calls = nil
	require.True(t, m.Unregister("B"))
	_, err = m.RunGenerate(context.Background(), &GenerationContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, r.calls)
}

func TestExecuteHookFailFast(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{}
	m := NewManager(nil)
	require.NoError(t, m.Register(r.plugin("A", nil)))
	require.NoError(t, m.Register(r.plugin("B", boom)))
	require.NoError(t, m.Register(r.plugin("C", nil)))

	results, err := m.ExecuteHook(context.Background(), HookGenerate, &GenerationContext{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var he *HookError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "B", he.Plugin)
	assert.Equal(t, HookGenerate, he.Hook)

	assert.Equal(t, []string{"A", "B"}, r.calls, "C must not run after B fails")
	assert.Len(t, results, 1)
}

func TestExecuteHookOnlyMatchingPhase(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	require.NoError(t, m.Register(&Plugin{
		Name: "p",
		PreGenerate: func(context.Context, *GenerationContext) error {
			calls = append(calls, "pre")
			return nil
		},
		AfterInstall: func(context.Context, *GenerationContext) error {
			calls = append(calls, "after")
			return nil
		},
	}))

	gc := &GenerationContext{}
	ctx := context.Background()
	for _, run := range []func(context.Context, *GenerationContext) ([]HookResult, error){
		m.RunPreGenerate, m.RunGenerate, m.RunPostGenerate, m.RunBeforeInstall, m.RunAfterInstall,
	} {
		_, err := run(ctx, gc)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"pre", "after"}, calls)
}

func TestExecuteHookUnknown(t *testing.T) {
	_, err := NewManager(nil).ExecuteHook(context.Background(), Hook("install"), &GenerationContext{})
	assert.ErrorIs(t, err, ErrUnknownHook)
}

func TestExecuteHookCancelled(t *testing.T) {
	r := &recorder{}
	m := NewManager(nil)
	require.NoError(t, m.Register(r.plugin("A", nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.RunGenerate(ctx, &GenerationContext{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.calls)
}

func TestHooksShareContext(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.Register(&Plugin{
		Name: "writer",
		Generate: func(_ context.Context, gc *GenerationContext) error {
			gc.Config.Extra = map[string]any{"seen": "writer"}
			return nil
		},
	}))
	var got any
	require.NoError(t, m.Register(&Plugin{
		Name: "reader",
		Generate: func(_ context.Context, gc *GenerationContext) error {
			got = gc.Config.Extra["seen"]
			return nil
		},
	}))

	_, err := m.RunGenerate(context.Background(), &GenerationContext{Config: &models.ProjectConfig{}})
	require.NoError(t, err)
	assert.Equal(t, "writer", got)
}

func TestValidateConfigAggregates(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.Register(&Plugin{
		Name:           "a",
		ValidateConfig: func(*models.ProjectConfig) []string { return []string{"first", "second"} },
	}))
	require.NoError(t, m.Register(&Plugin{Name: "silent"}))
	require.NoError(t, m.Register(&Plugin{
		Name:           "b",
		ValidateConfig: func(*models.ProjectConfig) []string { return []string{"third"} },
	}))

	res := m.ValidateConfig(&models.ProjectConfig{})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"[a] first", "[a] second", "[b] third"}, res.Errors)

	ok := NewManager(nil).ValidateConfig(&models.ProjectConfig{})
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)
}

func setX(cfg models.ProjectConfig) (models.ProjectConfig, error) {
	if cfg.Extra == nil {
		cfg.Extra = map[string]any{}
	}
	cfg.Extra["x"] = 1
	return cfg, nil
}

func deriveY(cfg models.ProjectConfig) (models.ProjectConfig, error) {
	x, ok := cfg.Extra["x"].(int)
	if !ok {
		return cfg, fmt.Errorf("x is not set")
	}
	if cfg.Extra == nil {
		cfg.Extra = map[string]any{}
	}
	cfg.Extra["y"] = x + 1
	return cfg, nil
}

func TestTransformConfigPipeline(t *testing.T) {
	t.Run("A before B", func(t *testing.T) {
		m := NewManager(nil)
		require.NoError(t, m.Register(&Plugin{Name: "A", TransformConfig: setX}))
		require.NoError(t, m.Register(&Plugin{Name: "B", TransformConfig: deriveY}))

		in := models.ProjectConfig{Name: "app"}
		out, err := m.TransformConfig(in)
		require.NoError(t, err)
		assert.Equal(t, 2, out.Extra["y"])
		assert.Nil(t, in.Extra, "input must not be mutated")
	})

	t.Run("B before A", func(t *testing.T) {
		m := NewManager(nil)
		require.NoError(t, m.Register(&Plugin{Name: "B", TransformConfig: deriveY}))
		require.NoError(t, m.Register(&Plugin{Name: "A", TransformConfig: setX}))

		_, err := m.TransformConfig(models.ProjectConfig{Name: "app"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plugin B")
	})
}
