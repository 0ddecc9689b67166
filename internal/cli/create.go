package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/internal/cli/wizard"
	"github.com/BuunGroupCore/precast-app-sub003/internal/config"
	"github.com/BuunGroupCore/precast-app-sub003/internal/generator"
	"github.com/BuunGroupCore/precast-app-sub003/internal/git"
	"github.com/BuunGroupCore/precast-app-sub003/internal/ui"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Errors returned by the create command.
var (
	ErrNameRequired  = errors.New("project name is required; pass it as an argument or run in a terminal")
	ErrProjectExists = errors.New("target directory exists and is not empty")
)

type createCmd struct {
	app   *app
	cmd   *cobra.Command
	yes   bool
	force bool
}

func newCreateCmd(a *app, root *cobra.Command) *createCmd {
	c := &createCmd{app: a, cmd: root}
	d := models.Default()

	f := root.Flags()
	f.String("framework", d.Framework, "frontend framework ("+strings.Join(catalog.FrameworkIDs(), ", ")+")")
	f.String("backend", d.Backend, "backend ("+strings.Join(models.Backends(), ", ")+")")
	f.String("database", d.Database, "database ("+strings.Join(models.Databases(), ", ")+")")
	f.String("orm", d.ORM, "ORM ("+strings.Join(models.ORMs(), ", ")+")")
	f.String("styling", d.Styling, "styling ("+strings.Join(models.Stylings(), ", ")+")")
	f.String("runtime", d.Runtime, "JavaScript runtime ("+strings.Join(models.Runtimes(), ", ")+")")
	f.Bool("typescript", d.TypeScript, "use TypeScript")
	f.Bool("git", d.Git, "initialize a git repository")
	f.Bool("docker", d.Docker, "add Docker configuration")
	f.Bool("install", d.AutoInstall, "install dependencies after generation")
	f.String("auth", models.None, "authentication provider")
	f.String("ui-library", models.None, "UI component library")
	f.String("api-client", models.None, "API client ("+strings.Join(models.APIClients(), ", ")+")")
	f.String("deploy", models.None, "deployment target ("+strings.Join(models.DeploymentMethods(), ", ")+")")
	f.String("ai", models.None, "AI assistant whose context files are added")
	f.StringSlice("ai-context", nil, "AI context files to add, by assistant id")
	f.StringSlice("mcp", nil, "MCP servers to configure")
	f.StringSlice("plugins", nil, "plugins to add")
	f.String("package-manager", "", "package manager (detected from the invoking tool by default)")
	f.BoolVarP(&c.yes, "yes", "y", false, "skip prompts and use defaults for missing choices")
	f.BoolVar(&c.force, "force", false, "generate into a non-empty directory")
	return c
}

func (c *createCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deps := c.app.deps
	logger := deps.Logger

	cfg := deps.Settings.Project
	if len(args) > 0 {
		cfg.Name = args[0]
	}
	if !deps.Loader.IsSet("packageManager") {
		cfg.PackageManager = DetectPackageManager(os.Getenv("npm_config_user_agent"))
	}

	engine, err := deps.Engine()
	if err != nil {
		return err
	}

	if !c.yes && deps.Interactive() {
		entries, err := catalog.ListPluginEntries(engine.FS())
		if err != nil {
			logger.Warn("cannot list plugins", "error", err)
		}
		questions := wizard.Skip(wizard.DefaultQuestions(wizard.PluginOptions(entries)), func(id string) bool {
			if id == "name" {
				return len(args) > 0
			}
			name, ok := flagFor(id)
			return ok && cmd.Flags().Changed(name)
		})
		if len(questions) > 0 {
			if err := wizard.Run(questions, &cfg); err != nil {
				return err
			}
		}
	}
	if cfg.Name == "" {
		return ErrNameRequired
	}

	cfg.Coerce()
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	projectPath := filepath.Join(cwd, cfg.Name)
	if !c.force {
		if err := checkEmpty(projectPath); err != nil {
			return err
		}
	}

	reporter := ui.NewPhaseReporter(deps.Theme, deps.Headless, deps.Out)
	gen, err := deps.Generator(&cfg, reporter, reporter.Wrap)
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx, cfg, projectPath)
	if err != nil {
		return err
	}

	if cfg.Git {
		if err := git.Init(ctx, projectPath, logger.With("module", "git")); err != nil {
			logger.Warn("git init failed", "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("git: %v", err))
		}
	}

	printResult(deps, res, successLines(&cfg, res))
	return nil
}

// checkEmpty fails when dir exists and has entries.
func checkEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s (use --force to generate anyway)", ErrProjectExists, dir)
	}
	return nil
}

func successLines(cfg *models.ProjectConfig, res *generator.Result) []string {
	pm := cfg.PackageManager
	lines := []string{
		fmt.Sprintf("%d files written to %s", len(res.Written), res.ProjectPath),
		"",
		"Next steps:",
		"  cd " + cfg.Name,
	}
	if !cfg.AutoInstall {
		lines = append(lines, "  "+strings.Join(generator.InstallCommand(pm), " "))
	}
	return append(lines, fmt.Sprintf("  %s run dev", pm))
}

// printResult writes warnings, the success card and any post-install
// instructions.
func printResult(deps *Dependencies, res *generator.Result, lines []string) {
	out := deps.Out
	if len(res.Warnings) > 0 {
		fmt.Fprint(out, deps.Renderer.Warnings(res.Warnings))
	}
	fmt.Fprintln(out, deps.Renderer.SuccessCard("Project ready", lines))

	if md := instructionsMarkdown(res.Instructions); md != "" {
		rendered, err := deps.Renderer.Markdown(md)
		if err != nil {
			deps.Logger.Debug("markdown rendering failed", "error", err)
			rendered = md
		}
		fmt.Fprint(out, rendered)
	}
}

func instructionsMarkdown(instructions []generator.Instruction) string {
	var b strings.Builder
	for _, in := range instructions {
		if len(in.Steps) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", in.Title)
		for _, s := range in.Steps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	return b.String()
}
