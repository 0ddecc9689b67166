package models

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
)

// ErrInvalidProjectName is returned when a project name does not match
// the lowercase alphanumeric and hyphen format.
var ErrInvalidProjectName = errors.New("invalid project name")

var projectNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ProjectConfig represents the stack selected for a new project.
// JSON names are the keys templates render against.
type ProjectConfig struct {
	Name      string `yaml:"name" json:"name" mapstructure:"name"`
	Framework string `yaml:"framework" json:"framework" mapstructure:"framework"`
	Backend   string `yaml:"backend" json:"backend" mapstructure:"backend"`
	Database  string `yaml:"database" json:"database" mapstructure:"database"`
	ORM       string `yaml:"orm" json:"orm" mapstructure:"orm"`
	Styling   string `yaml:"styling" json:"styling" mapstructure:"styling"`
	Runtime   string `yaml:"runtime" json:"runtime" mapstructure:"runtime"`

	TypeScript  bool `yaml:"typescript" json:"typescript" mapstructure:"typescript"`
	Git         bool `yaml:"git" json:"git" mapstructure:"git"`
	Docker      bool `yaml:"docker" json:"docker" mapstructure:"docker"`
	AutoInstall bool `yaml:"autoInstall" json:"autoInstall" mapstructure:"autoInstall"`

	AuthProvider     string `yaml:"authProvider,omitempty" json:"authProvider,omitempty" mapstructure:"authProvider"`
	UILibrary        string `yaml:"uiLibrary,omitempty" json:"uiLibrary,omitempty" mapstructure:"uiLibrary"`
	APIClient        string `yaml:"apiClient,omitempty" json:"apiClient,omitempty" mapstructure:"apiClient"`
	DeploymentMethod string `yaml:"deploymentMethod,omitempty" json:"deploymentMethod,omitempty" mapstructure:"deploymentMethod"`

	AIAssistant string   `yaml:"aiAssistant,omitempty" json:"aiAssistant,omitempty" mapstructure:"aiAssistant"`
	AIContext   []string `yaml:"aiContext,omitempty" json:"aiContext,omitempty" mapstructure:"aiContext"`
	MCPServers  []string `yaml:"mcpServers,omitempty" json:"mcpServers,omitempty" mapstructure:"mcpServers"`
	Plugins     []string `yaml:"plugins,omitempty" json:"plugins,omitempty" mapstructure:"plugins"`

	// ProjectPath is the absolute output directory. It is set once by the
	// CLI and never persisted.
	ProjectPath    string `yaml:"-" json:"projectPath,omitempty" mapstructure:"-"`
	PackageManager string `yaml:"packageManager" json:"packageManager" mapstructure:"packageManager"`

	// Extra carries plugin-defined values. Plugins write here from
	// TransformConfig and templates read them as top-level keys.
	Extra map[string]any `yaml:"extra,omitempty" json:"extra,omitempty" mapstructure:"extra"`
}

// Default returns the configuration used when neither flags nor the
// wizard supply a value.
func Default() ProjectConfig {
	return ProjectConfig{
		Framework:      "react",
		Backend:        BackendNone,
		Database:       DatabaseNone,
		ORM:            ORMNone,
		Styling:        StylingTailwind,
		Runtime:        RuntimeNode,
		TypeScript:     true,
		Git:            true,
		Docker:         false,
		AutoInstall:    true,
		PackageManager: PackageManagerNPM,
	}
}

// Clone returns a deep copy so that transforms never alias slices or maps
// of the caller's value.
func (c ProjectConfig) Clone() ProjectConfig {
	c.AIContext = slices.Clone(c.AIContext)
	c.MCPServers = slices.Clone(c.MCPServers)
	c.Plugins = slices.Clone(c.Plugins)
	if c.Extra != nil {
		c.Extra = maps.Clone(c.Extra)
	}
	return c
}

// Coerce enforces dependent-field rules in place:
// an unset optional choice becomes "none", no database forces no ORM, and
// a selected AI assistant without explicit context files yields one
// context entry named after the assistant.
func (c *ProjectConfig) Coerce() {
	for _, f := range []*string{&c.Backend, &c.Database, &c.ORM, &c.AuthProvider, &c.UILibrary, &c.APIClient, &c.DeploymentMethod, &c.AIAssistant} {
		if *f == "" {
			*f = None
		}
	}
	if c.Database == DatabaseNone {
		c.ORM = ORMNone
	}
	if Selected(c.AIAssistant) && len(c.AIContext) == 0 {
		c.AIContext = []string{c.AIAssistant}
	}
	if c.PackageManager == "" {
		c.PackageManager = PackageManagerNPM
	}
}

// Values flattens the configuration into the map templates render
// against. Extra entries never shadow the typed fields.
func (c ProjectConfig) Values() map[string]any {
	v := make(map[string]any, 24+len(c.Extra))
	maps.Copy(v, c.Extra)
	v["name"] = c.Name
	v["framework"] = c.Framework
	v["backend"] = c.Backend
	v["database"] = c.Database
	v["orm"] = c.ORM
	v["styling"] = c.Styling
	v["runtime"] = c.Runtime
	v["typescript"] = c.TypeScript
	v["git"] = c.Git
	v["docker"] = c.Docker
	v["autoInstall"] = c.AutoInstall
	v["authProvider"] = c.AuthProvider
	v["uiLibrary"] = c.UILibrary
	v["apiClient"] = c.APIClient
	v["deploymentMethod"] = c.DeploymentMethod
	v["aiAssistant"] = c.AIAssistant
	v["aiContext"] = slices.Clone(c.AIContext)
	v["mcpServers"] = slices.Clone(c.MCPServers)
	v["plugins"] = slices.Clone(c.Plugins)
	v["projectPath"] = c.ProjectPath
	v["packageManager"] = c.PackageManager
	return v
}

// ValidateProjectName checks the lowercase alphanumeric and hyphen format.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProjectName)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q may only contain lowercase letters, numbers, and hyphens", ErrInvalidProjectName, name)
	}
	return nil
}
