package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// EnvPrefix prefixes every environment variable read by the Loader.
const EnvPrefix = "PRECAST"

// Keys outside ProjectConfig.
const (
	KeyTemplateDir = "templateDir"
	KeyVerbose     = "verbose"
)

// projectKeys are the ProjectConfig keys that can be defaulted. name and
// projectPath are per-invocation and never come from configuration.
var projectKeys = []string{
	"framework", "backend", "database", "orm", "styling", "runtime",
	"typescript", "git", "docker", "autoInstall",
	"authProvider", "uiLibrary", "apiClient", "deploymentMethod",
	"aiAssistant", "aiContext", "mcpServers", "plugins",
	"packageManager", "extra",
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	// Project holds defaults for the project being created. Only fields
	// the user set are considered explicit; see Loader.IsSet.
	Project models.ProjectConfig
	// TemplateDir overrides template root discovery when non-empty.
	TemplateDir string
	Verbose     bool
	// ConfigFile is the file that was read, or "" when none was found.
	ConfigFile string
}

// Loader layers configuration sources. From lowest to highest priority:
// compiled defaults, the YAML config file, PRECAST_* environment variables
// and explicitly set flags.
type Loader struct {
	v     *viper.Viper
	flags map[string]*pflag.Flag
}

// NewLoader creates a Loader with defaults and environment bindings.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := models.Default().Values()
	for _, key := range projectKeys {
		if val, ok := defaults[key]; ok {
			v.SetDefault(key, val)
		}
		// AutomaticEnv would look for PRECAST_PACKAGEMANAGER.
		_ = v.BindEnv(key, EnvVar(key))
	}
	_ = v.BindEnv(KeyTemplateDir, EnvVar(KeyTemplateDir))
	_ = v.BindEnv(KeyVerbose, EnvVar(KeyVerbose))

	return &Loader{v: v, flags: make(map[string]*pflag.Flag)}
}

// EnvVar returns the environment variable for key: packageManager is
// read from PRECAST_PACKAGE_MANAGER.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strcase.ToScreamingSnake(key)
}

// BindFlag makes flag override key when the user sets it explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return err
	}
	l.flags[key] = flag
	return nil
}

// BindFlags binds flags by name. keys maps flag names to configuration
// keys; names not defined in flags are ignored.
func (l *Loader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	var errs []error
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.BindFlag(key, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsSet reports whether key was provided by the config file, the
// environment or a flag the user changed, as opposed to a compiled default.
func (l *Loader) IsSet(key string) bool {
	if f, ok := l.flags[key]; ok && f.Changed {
		return true
	}
	return l.v.InConfig(key) || os.Getenv(EnvVar(key)) != ""
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/precast/config.yaml or its
// platform equivalent.
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "precast", "config.yaml"), nil
}

// Load resolves Settings. An explicit configFile must exist; the default
// file is optional.
func (l *Loader) Load(configFile string) (*Settings, error) {
	explicit := configFile != ""
	if !explicit {
		if path, err := DefaultConfigFile(); err == nil {
			configFile = path
		}
	}

	var used string
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		err := l.v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
			used = configFile
		case (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) && !explicit:
			// The default file is optional.
		default:
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigFile, configFile, err)
		}
	}

	var project models.ProjectConfig
	if err := l.v.Unmarshal(&project); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	project.Name = ""
	project.ProjectPath = ""

	return &Settings{
		Project:     project,
		TemplateDir: l.v.GetString(KeyTemplateDir),
		Verbose:     l.v.GetBool(KeyVerbose),
		ConfigFile:  used,
	}, nil
}
