package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"

	"github.com/BuunGroupCore/precast-app-sub003/internal/config"
	"github.com/BuunGroupCore/precast-app-sub003/internal/ui"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/version"
)

// projectFlags maps create flags to configuration keys.
var projectFlags = map[string]string{
	"framework":       "framework",
	"backend":         "backend",
	"database":        "database",
	"orm":             "orm",
	"styling":         "styling",
	"runtime":         "runtime",
	"typescript":      "typescript",
	"git":             "git",
	"docker":          "docker",
	"install":         "autoInstall",
	"auth":            "authProvider",
	"ui-library":      "uiLibrary",
	"api-client":      "apiClient",
	"deploy":          "deploymentMethod",
	"ai":              "aiAssistant",
	"ai-context":      "aiContext",
	"mcp":             "mcpServers",
	"plugins":         "plugins",
	"package-manager": "packageManager",
}

// globalFlags maps persistent flags to configuration keys.
var globalFlags = map[string]string{
	"templates": config.KeyTemplateDir,
	"verbose":   config.KeyVerbose,
}

// app holds the state shared by the commands of one root command.
type app struct {
	headless   *ui.HeadlessManager
	deps       *Dependencies
	configFile string
	jsonLogs   bool
}

// Execute builds the command tree and runs it. Interrupts cancel the
// command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd(ui.NewHeadlessManager()).ExecuteContext(ctx)
}

// NewRootCmd returns the create-precast-app command tree.
func NewRootCmd(hm *ui.HeadlessManager) *cobra.Command {
	a := &app{headless: hm}

	root := &cobra.Command{
		Use:   "create-precast-app [name]",
		Short: "Scaffold a new web project from a chosen stack",
		Long: `create-precast-app generates a project directory from templates for the
selected framework, then layers on authentication, UI libraries, AI
assistant context, MCP servers and plugins.

Run without flags in a terminal to be asked for every choice.`,
		Version:       version.Full(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetVersionTemplate(fmt.Sprintf("create-precast-app %s\n", version.Full()))

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/precast/config.yaml)")
	pf.String("templates", "", "template store directory")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.jsonLogs, "log-json", false, "write logs as JSON")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd, cmd == root)
	}

	c := newCreateCmd(a, root)
	root.RunE = c.run

	root.AddCommand(newAddCmd(a), newListCmd(a))
	return root
}

// setup loads settings and builds the dependencies. Project flags are
// only bound for the create command.
func (a *app) setup(cmd *cobra.Command, create bool) error {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags(), globalFlags); err != nil {
		return err
	}
	if create {
		if err := loader.BindFlags(cmd.Flags(), projectFlags); err != nil {
			return err
		}
	}
	settings, err := loader.Load(a.configFile)
	if err != nil {
		return err
	}
	deps, err := newDependencies(settings, loader, a.headless, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.jsonLogs)
	if err != nil {
		return err
	}
	if settings.ConfigFile != "" {
		deps.Logger.Debug("config file loaded", "path", settings.ConfigFile)
	}
	a.deps = deps
	return nil
}

// flagFor returns the create flag bound to key.
func flagFor(key string) (string, bool) {
	for name, k := range projectFlags {
		if k == key {
			return name, true
		}
	}
	return "", false
}

// flagNames returns the create flag names in sorted order.
func flagNames() []string {
	names := make([]string, 0, len(projectFlags))
	for name := range projectFlags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
