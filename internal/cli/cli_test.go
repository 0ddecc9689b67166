package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/BuunGroupCore/precast-app-sub003/internal/generator"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/internal/ui"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

var storeFiles = map[string]string{
	"frameworks/react/base/package.json.hbs": `{"name": "{{.name}}", "private": true}`,
	"frameworks/react/base/_gitignore.hbs":   "node_modules\n",
	"frameworks/react/src/App.tsx.hbs":       "export const App = () => <h1>{{.name}}</h1>\n",
	"plugins/stripe/config.json": `{
  "id": "stripe",
  "name": "Stripe",
  "category": "payments",
  "description": "Payments and subscriptions",
  "dependencies": {"*": ["stripe"]},
  "envVariables": [{"name": "STRIPE_SECRET_KEY", "value": "sk_test_123"}],
  "postInstall": {"instructions": ["Add your Stripe keys to .env"]}
}`,
}

// writeStore writes a minimal template store and returns its root.
func writeStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range storeFiles {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// sandbox isolates config discovery and the working directory.
func sandbox(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("npm_config_user_agent", "")
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	cmd := NewRootCmd(hm)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func createArgs(store string, extra ...string) []string {
	args := []string{"--yes", "--templates", store, "--install=false", "--git=false"}
	return append(args, extra...)
}

func loadManifest(t *testing.T, dir string) generator.ProjectManifest {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "precast.yaml"))
	require.NoError(t, err)
	var m generator.ProjectManifest
	require.NoError(t, yaml.Unmarshal(raw, &m))
	return m
}

func TestCreate(t *testing.T) {
	dir := sandbox(t)
	store := writeStore(t)

	out, _, err := run(t, createArgs(store, "my-app", "--styling", "css", "--plugins", "stripe")...)
	require.NoError(t, err)

	project := filepath.Join(dir, "my-app")
	assert.FileExists(t, filepath.Join(project, "src", "App.tsx"))
	assert.FileExists(t, filepath.Join(project, ".gitignore"))
	pkg, err := os.ReadFile(filepath.Join(project, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"stripe": "latest"`)

	m := loadManifest(t, project)
	assert.Equal(t, "my-app", m.Project.Name)
	assert.Equal(t, models.StylingCSS, m.Project.Styling)
	assert.Equal(t, []string{"stripe"}, m.Project.Plugins)
	assert.Equal(t, models.PackageManagerNPM, m.Project.PackageManager)

	assert.Contains(t, out, "[1/")
	assert.Contains(t, out, "Copying framework templates")
	assert.Contains(t, out, "Project ready")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "npm install")
	assert.Contains(t, out, "Add your Stripe keys to .env")
}

func TestCreateRequiresName(t *testing.T) {
	sandbox(t)
	_, _, err := run(t, createArgs(writeStore(t))...)
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateInvalidName(t *testing.T) {
	dir := sandbox(t)
	_, _, err := run(t, createArgs(writeStore(t), "My App")...)
	assert.ErrorIs(t, err, models.ErrInvalidProjectName)
	assert.NoDirExists(t, filepath.Join(dir, "My App"))
}

func TestCreateInvalidFlagValue(t *testing.T) {
	sandbox(t)
	_, _, err := run(t, createArgs(writeStore(t), "my-app", "--styling", "less")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "styling")
}

func TestCreateExistingDirectory(t *testing.T) {
	dir := sandbox(t)
	store := writeStore(t)
	project := filepath.Join(dir, "my-app")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "notes.txt"), []byte("keep"), 0o644))

	_, _, err := run(t, createArgs(store, "my-app")...)
	assert.ErrorIs(t, err, ErrProjectExists)

	_, _, err = run(t, createArgs(store, "my-app", "--force")...)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(project, "notes.txt"))
	assert.FileExists(t, filepath.Join(project, "package.json"))
}

func TestCreatePackageManager(t *testing.T) {
	t.Run("detected from user agent", func(t *testing.T) {
		dir := sandbox(t)
		t.Setenv("npm_config_user_agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")
		out, _, err := run(t, createArgs(writeStore(t), "my-app")...)
		require.NoError(t, err)
		assert.Equal(t, models.PackageManagerPNPM, loadManifest(t, filepath.Join(dir, "my-app")).Project.PackageManager)
		assert.Contains(t, out, "pnpm install")
	})

	t.Run("environment wins over detection", func(t *testing.T) {
		dir := sandbox(t)
		t.Setenv("npm_config_user_agent", "pnpm/9.1.0")
		t.Setenv("PRECAST_PACKAGE_MANAGER", "yarn")
		_, _, err := run(t, createArgs(writeStore(t), "my-app")...)
		require.NoError(t, err)
		assert.Equal(t, models.PackageManagerYarn, loadManifest(t, filepath.Join(dir, "my-app")).Project.PackageManager)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		dir := sandbox(t)
		t.Setenv("PRECAST_PACKAGE_MANAGER", "yarn")
		_, _, err := run(t, createArgs(writeStore(t), "my-app", "--package-manager", "bun")...)
		require.NoError(t, err)
		assert.Equal(t, models.PackageManagerBun, loadManifest(t, filepath.Join(dir, "my-app")).Project.PackageManager)
	})
}

func TestCreateConfigFile(t *testing.T) {
	dir := sandbox(t)
	cfgFile := filepath.Join(t.TempDir(), "precast.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("styling: scss\ntypescript: false\n"), 0o644))

	_, _, err := run(t, createArgs(writeStore(t), "my-app", "--config", cfgFile)...)
	require.NoError(t, err)

	m := loadManifest(t, filepath.Join(dir, "my-app"))
	assert.Equal(t, models.StylingSCSS, m.Project.Styling)
	assert.False(t, m.Project.TypeScript)
}

func TestCreateMissingTemplates(t *testing.T) {
	sandbox(t)
	_, _, err := run(t, createArgs(filepath.Join(t.TempDir(), "missing"), "my-app")...)
	assert.ErrorIs(t, err, template.ErrRootNotFound)
}

func TestAdd(t *testing.T) {
	dir := sandbox(t)
	store := writeStore(t)
	_, _, err := run(t, createArgs(store, "my-app")...)
	require.NoError(t, err)
	project := filepath.Join(dir, "my-app")

	out, _, err := run(t, "add", "--dir", "my-app", "--templates", store, "--mcp", "github", "--plugin", "stripe")
	require.NoError(t, err)

	mcp, err := os.ReadFile(filepath.Join(project, ".mcp.json"))
	require.NoError(t, err)
	assert.Contains(t, string(mcp), `"github"`)

	env, err := os.ReadFile(filepath.Join(project, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "# Stripe Configuration")

	m := loadManifest(t, project)
	assert.Equal(t, []string{"stripe"}, m.Project.Plugins)
	assert.Equal(t, []string{"github"}, m.Project.MCPServers)
	assert.Contains(t, out, "Add your Stripe keys to .env")

	// Running it again changes nothing.
	_, _, err = run(t, "add", "--dir", "my-app", "--templates", store, "--mcp", "github")
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, loadManifest(t, project).Project.MCPServers)
}

func TestAddErrors(t *testing.T) {
	sandbox(t)
	store := writeStore(t)

	_, _, err := run(t, "add", "--templates", store)
	assert.ErrorIs(t, err, ErrNothingToAdd)

	_, _, err = run(t, "add", "--templates", store, "--mcp", "github")
	assert.ErrorIs(t, err, generator.ErrNoManifest)
}

func TestAddUnknownValue(t *testing.T) {
	sandbox(t)
	store := writeStore(t)
	_, _, err := run(t, createArgs(store, "my-app")...)
	require.NoError(t, err)

	_, _, err = run(t, "add", "--dir", "my-app", "--templates", store, "--auth", "okta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authProvider")
}

func TestList(t *testing.T) {
	sandbox(t)
	store := writeStore(t)

	out, _, err := run(t, "list", "frameworks")
	require.NoError(t, err)
	assert.Contains(t, out, "FRAMEWORKS")
	assert.Contains(t, out, "react")
	assert.NotContains(t, out, "better-auth")

	out, _, err = run(t, "list", "plugins", "--templates", store)
	require.NoError(t, err)
	assert.Contains(t, out, "stripe")
	assert.Contains(t, out, "payments")

	// Without a template store every static catalog still prints.
	out, _, err = run(t, "list")
	require.NoError(t, err)
	for _, want := range []string{"FRAMEWORKS", "AUTH", "UI", "MCP", "better-auth", "shadcn", "github"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "PLUGINS")

	_, _, err = run(t, "list", "plugins")
	assert.ErrorIs(t, err, template.ErrRootNotFound)

	_, _, err = run(t, "list", "widgets")
	assert.Error(t, err)
}

func TestProjectFlagsDefined(t *testing.T) {
	cmd := NewRootCmd(ui.NewHeadlessManager())
	for _, name := range flagNames() {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	name, ok := flagFor("autoInstall")
	assert.True(t, ok)
	assert.Equal(t, "install", name)
	_, ok = flagFor("projectPath")
	assert.False(t, ok)
}

func TestDetectPackageManager(t *testing.T) {
	tests := map[string]string{
		"":                                 "npm",
		"pnpm/9.1.0 npm/? node/v20.11.0":   "pnpm",
		"yarn/1.22.19 npm/? node/v18.17.0": "yarn",
		"bun/1.1.0 npm/? node/v21.6.0":     "bun",
		"npm/10.2.4 node/v20.11.0":         "npm",
		"cnpm/9.0.0":                       "npm",
	}
	for ua, want := range tests {
		assert.Equal(t, want, DetectPackageManager(ua), ua)
	}
}

func TestInstructionsMarkdown(t *testing.T) {
	md := instructionsMarkdown([]generator.Instruction{
		{Title: "Stripe", Steps: []string{"Add keys", "Run stripe listen"}},
		{Title: "Empty"},
	})
	assert.Equal(t, "## Stripe\n\n- Add keys\n- Run stripe listen\n\n", md)
}
