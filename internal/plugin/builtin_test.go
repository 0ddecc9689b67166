package plugin

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

func featureContext(t *testing.T, cfg models.ProjectConfig) *GenerationContext {
	t.Helper()
	fsys := fstest.MapFS{
		"features/docker/Dockerfile.hbs":                 {Data: []byte("FROM node:22\n# {{.name}}\n")},
		"features/api-client/swr/src/lib/fetcher.ts.hbs": {Data: []byte("export const fetcher = 1\n")},
		"features/deploy/vercel/vercel.json":             {Data: []byte("{}")},
	}
	return &GenerationContext{
		Config:      &cfg,
		ProjectPath: t.TempDir(),
		Engine:      template.New(fsys),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func runAll(t *testing.T, gc *GenerationContext) {
	t.Helper()
	m := NewManager(nil)
	for _, p := range Builtins() {
		require.NoError(t, m.Register(p))
	}
	cfg, err := m.TransformConfig(*gc.Config)
	require.NoError(t, err)
	*gc.Config = cfg
	for _, h := range Hooks() {
		_, err := m.ExecuteHook(context.Background(), h, gc)
		require.NoError(t, err)
	}
}

func TestBuiltinsDocker(t *testing.T) {
	gc := featureContext(t, models.ProjectConfig{Name: "app", Docker: true})
	runAll(t, gc)
	got, err := os.ReadFile(filepath.Join(gc.ProjectPath, "Dockerfile"))
	require.NoError(t, err)
	assert.Equal(t, "FROM node:22\n# app\n", string(got))
}

func TestBuiltinsDockerDisabled(t *testing.T) {
	gc := featureContext(t, models.ProjectConfig{Name: "app"})
	runAll(t, gc)
	assert.NoFileExists(t, filepath.Join(gc.ProjectPath, "Dockerfile"))
}

func TestBuiltinsDeployment(t *testing.T) {
	t.Run("docker deployment enables docker", func(t *testing.T) {
		gc := featureContext(t, models.ProjectConfig{Name: "app", DeploymentMethod: "docker"})
		runAll(t, gc)
		assert.True(t, gc.Config.Docker)
		assert.FileExists(t, filepath.Join(gc.ProjectPath, "Dockerfile"))
	})

	t.Run("vercel", func(t *testing.T) {
		gc := featureContext(t, models.ProjectConfig{Name: "app", DeploymentMethod: "vercel"})
		runAll(t, gc)
		assert.FileExists(t, filepath.Join(gc.ProjectPath, "vercel.json"))
	})

	t.Run("missing templates are ignored", func(t *testing.T) {
		gc := featureContext(t, models.ProjectConfig{Name: "app", DeploymentMethod: "netlify"})
		runAll(t, gc)
		entries, err := os.ReadDir(gc.ProjectPath)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestBuiltinsAPIClient(t *testing.T) {
	gc := featureContext(t, models.ProjectConfig{Name: "app", APIClient: "swr", TypeScript: true})
	runAll(t, gc)
	assert.FileExists(t, filepath.Join(gc.ProjectPath, "src", "lib", "fetcher.ts"))

	m := NewManager(nil)
	require.NoError(t, m.Register(APIClientPlugin()))
	res := m.ValidateConfig(&models.ProjectConfig{APIClient: "trpc", Backend: models.None})
	assert.Equal(t, []string{"[api-client] trpc requires TypeScript", "[api-client] trpc requires a backend"}, res.Errors)

	res = m.ValidateConfig(&models.ProjectConfig{APIClient: "trpc", TypeScript: true, Backend: models.BackendHono})
	assert.True(t, res.Valid)
}
