// Package defs holds well-known file names and permissions shared by the
// generators and the CLI.
package defs

import "io/fs"

// Files written or patched inside a generated project.
const (
	// EnvFile holds real values for local development.
	EnvFile = ".env"

	// EnvExampleFile mirrors EnvFile with placeholder values.
	EnvExampleFile = ".env.example"

	// MCPJSON is the MCP server configuration file.
	MCPJSON = ".mcp.json"

	// PackageJSON is the npm manifest.
	PackageJSON = "package.json"

	// PrismaSchema is the Prisma schema, relative to the project root.
	PrismaSchema = "prisma/schema.prisma"

	// ProjectManifest records the resolved stack so that `add` can
	// extend the project later.
	ProjectManifest = "precast.yaml"

	// PluginConfigJSON is the catalog entry inside templates/plugins/<id>/.
	PluginConfigJSON = "config.json"
)

// Directories inside the template root.
const (
	FrameworksDir = "frameworks"
	AuthDir       = "auth"
	PluginsDir    = "plugins"
	AIContextDir  = "ai-context"
	MCPServersDir = "mcp/servers"
	UIDir         = "ui"
	FeaturesDir   = "features"

	// BackendDir is where backend packages live in a generated monorepo.
	BackendDir = "apps/api"
)

// Permissions for generated content.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// EnvPlaceholder replaces real values in EnvExampleFile.
const EnvPlaceholder = "your-value-here"

// DefaultTemplateDir is the directory name probed for templates.
const DefaultTemplateDir = "templates"
