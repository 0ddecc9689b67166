package wizard

import (
	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// DefaultQuestions returns the project questions in the order they are
// asked. plugins lists the plugin choices found in the template store;
// the plugin question is dropped when it is empty.
func DefaultQuestions(plugins []Option) []Question {
	questions := []Question{
		{
			ID:          "name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Lowercase letters, numbers and hyphens.",
			Required:    true,
		},
		{
			ID:      "framework",
			Type:    QuestionTypeSelect,
			Title:   "Framework",
			Options: frameworkOptions,
		},
		{
			ID:    "typescript",
			Type:  QuestionTypeConfirm,
			Title: "Use TypeScript?",
		},
		{
			ID:      "styling",
			Type:    QuestionTypeSelect,
			Title:   "Styling",
			Options: valueOptions(models.Stylings()),
		},
		{
			ID:        "uiLibrary",
			Type:      QuestionTypeSelect,
			Title:     "UI component library",
			Options:   uiLibraryOptions,
			Condition: supportsUILibraries,
		},
		{
			ID:      "backend",
			Type:    QuestionTypeSelect,
			Title:   "Backend",
			Options: valueOptions(models.Backends()),
		},
		{
			ID:      "database",
			Type:    QuestionTypeSelect,
			Title:   "Database",
			Options: valueOptions(models.Databases()),
		},
		{
			ID:      "orm",
			Type:    QuestionTypeSelect,
			Title:   "ORM",
			Options: valueOptions(models.ORMs()),
			Condition: func(cfg *models.ProjectConfig) bool {
				return models.Selected(cfg.Database)
			},
		},
		{
			ID:      "authProvider",
			Type:    QuestionTypeSelect,
			Title:   "Authentication",
			Options: authOptions,
		},
		{
			ID:      "apiClient",
			Type:    QuestionTypeSelect,
			Title:   "API client",
			Options: valueOptions(models.APIClients()),
		},
		{
			ID:          "aiAssistant",
			Type:        QuestionTypeSelect,
			Title:       "AI assistant",
			Description: "Context files for the assistant are added to the project.",
			Options:     aiOptions,
		},
		{
			ID:      "mcpServers",
			Type:    QuestionTypeMultiSelect,
			Title:   "MCP servers",
			Options: mcpOptions,
			Condition: func(cfg *models.ProjectConfig) bool {
				return models.Selected(cfg.AIAssistant)
			},
		},
	}
	if len(plugins) > 0 {
		questions = append(questions, Question{
			ID:    "plugins",
			Type:  QuestionTypeMultiSelect,
			Title: "Plugins",
			Options: func(*models.ProjectConfig) []Option {
				return plugins
			},
		})
	}
	return append(questions,
		Question{
			ID:      "deploymentMethod",
			Type:    QuestionTypeSelect,
			Title:   "Deployment",
			Options: valueOptions(models.DeploymentMethods()),
		},
		Question{
			ID:    "docker",
			Type:  QuestionTypeConfirm,
			Title: "Add Docker configuration?",
			Condition: func(cfg *models.ProjectConfig) bool {
				return cfg.DeploymentMethod != "docker"
			},
		},
		Question{
			ID:    "git",
			Type:  QuestionTypeConfirm,
			Title: "Initialize a git repository?",
		},
		Question{
			ID:      "packageManager",
			Type:    QuestionTypeSelect,
			Title:   "Package manager",
			Options: valueOptions(models.PackageManagers()),
		},
		Question{
			ID:    "autoInstall",
			Type:  QuestionTypeConfirm,
			Title: "Install dependencies now?",
		},
	)
}

// PluginOptions converts plugin catalog entries into choices.
func PluginOptions(entries []*catalog.PluginEntry) []Option {
	opts := make([]Option, len(entries))
	for i, e := range entries {
		opts[i] = Option{Label: e.Name, Value: e.ID, Desc: e.Description}
	}
	return opts
}

// Skip drops the questions whose ID is reported as already answered.
func Skip(questions []Question, answered func(id string) bool) []Question {
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !answered(q.ID) {
			kept = append(kept, q)
		}
	}
	return kept
}

// FilteredQuestions returns questions filtered by their conditions.
// Questions whose conditions return false are excluded.
func FilteredQuestions(questions []Question, cfg *models.ProjectConfig) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(cfg) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

func valueOptions(values []string) func(*models.ProjectConfig) []Option {
	return func(*models.ProjectConfig) []Option {
		opts := make([]Option, len(values))
		for i, v := range values {
			opts[i] = Option{Label: v, Value: v}
		}
		return opts
	}
}

func frameworkOptions(*models.ProjectConfig) []Option {
	var opts []Option
	for _, f := range catalog.Frameworks() {
		opts = append(opts, Option{Label: f.Name, Value: f.ID})
	}
	return opts
}

func supportsUILibraries(cfg *models.ProjectConfig) bool {
	f, ok := catalog.LookupFramework(cfg.Framework)
	return ok && f.UILibraries
}

func uiLibraryOptions(cfg *models.ProjectConfig) []Option {
	opts := []Option{{Label: "None", Value: models.None}}
	for _, u := range catalog.UILibrariesFor(cfg.Framework, cfg.Styling) {
		opts = append(opts, Option{Label: u.Name, Value: u.ID})
	}
	return opts
}

func authOptions(cfg *models.ProjectConfig) []Option {
	opts := []Option{{Label: "None", Value: models.None}}
	for _, p := range catalog.AuthProvidersFor(cfg.Framework) {
		opt := Option{Label: p.Name, Value: p.ID}
		if p.RequiresDatabase {
			opt.Desc = "requires a database"
		}
		opts = append(opts, opt)
	}
	return opts
}

func aiOptions(*models.ProjectConfig) []Option {
	opts := []Option{{Label: "None", Value: models.None}}
	for _, a := range catalog.AIAssistants() {
		opts = append(opts, Option{Label: a.Name, Value: a.ID})
	}
	return opts
}

func mcpOptions(*models.ProjectConfig) []Option {
	var opts []Option
	for _, s := range catalog.MCPServers() {
		opts = append(opts, Option{Label: s.Name, Value: s.ID, Desc: s.Description})
	}
	return opts
}
