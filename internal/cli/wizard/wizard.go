package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Run asks questions in order and stores every answer in cfg. Current
// values of cfg are offered as defaults.
// Each question runs as its own huh.Form so that options and conditions
// can depend on earlier answers.
func Run(questions []Question, cfg *models.ProjectConfig) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	theme := newPrecastTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(cfg) {
			continue
		}

		field, err := buildField(q, cfg)
		if err != nil {
			return err
		}
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
	}

	return nil
}

// buildField creates the huh field for q. Answers are stored from the
// field's validation hook, which huh calls on every change and on submit.
func buildField(q *Question, cfg *models.ProjectConfig) (huh.Field, error) {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, cfg), nil
	case QuestionTypeInput:
		return buildInputField(q, cfg), nil
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q, cfg), nil
	case QuestionTypeConfirm:
		return buildConfirmField(q, cfg), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, q.ID)
}

func options(q *Question, cfg *models.ProjectConfig) []huh.Option[string] {
	if q.Options == nil {
		return nil
	}
	src := q.Options(cfg)
	opts := make([]huh.Option[string], len(src))
	for i, opt := range src {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}
	return opts
}

func buildSelectField(q *Question, cfg *models.ProjectConfig) *huh.Select[string] {
	selected := Value(cfg, q.ID)
	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options(q, cfg)...).
		Value(&selected)

	id := q.ID
	sel.Validate(func(val string) error {
		return SetValue(cfg, id, val)
	})
	return sel
}

func buildMultiSelectField(q *Question, cfg *models.ProjectConfig) *huh.MultiSelect[string] {
	selected := Values(cfg, q.ID)
	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options(q, cfg)...).
		Value(&selected)

	id := q.ID
	ms.Validate(func(vals []string) error {
		return SetValues(cfg, id, vals)
	})
	return ms
}

func buildConfirmField(q *Question, cfg *models.ProjectConfig) *huh.Confirm {
	value := Value(cfg, q.ID) == "true"
	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	id := q.ID
	c.Validate(func(v bool) error {
		return SetValue(cfg, id, strconv.FormatBool(v))
	})
	return c
}

func buildInputField(q *Question, cfg *models.ProjectConfig) *huh.Input {
	value := Value(cfg, q.ID)
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	id := q.ID
	required := q.Required
	inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if required && v == "" {
			return errors.New("this field is required")
		}
		if id == "name" {
			if err := models.ValidateProjectName(v); err != nil {
				return err
			}
		}
		return SetValue(cfg, id, v)
	})
	return inp
}

// stringField returns the string field stored under id.
func stringField(cfg *models.ProjectConfig, id string) *string {
	switch id {
	case "name":
		return &cfg.Name
	case "framework":
		return &cfg.Framework
	case "backend":
		return &cfg.Backend
	case "database":
		return &cfg.Database
	case "orm":
		return &cfg.ORM
	case "styling":
		return &cfg.Styling
	case "runtime":
		return &cfg.Runtime
	case "authProvider":
		return &cfg.AuthProvider
	case "uiLibrary":
		return &cfg.UILibrary
	case "apiClient":
		return &cfg.APIClient
	case "deploymentMethod":
		return &cfg.DeploymentMethod
	case "aiAssistant":
		return &cfg.AIAssistant
	case "packageManager":
		return &cfg.PackageManager
	}
	return nil
}

func boolField(cfg *models.ProjectConfig, id string) *bool {
	switch id {
	case "typescript":
		return &cfg.TypeScript
	case "git":
		return &cfg.Git
	case "docker":
		return &cfg.Docker
	case "autoInstall":
		return &cfg.AutoInstall
	}
	return nil
}

func listField(cfg *models.ProjectConfig, id string) *[]string {
	switch id {
	case "aiContext":
		return &cfg.AIContext
	case "mcpServers":
		return &cfg.MCPServers
	case "plugins":
		return &cfg.Plugins
	}
	return nil
}

// Value returns the current answer for id as a string. Booleans are
// "true" or "false".
func Value(cfg *models.ProjectConfig, id string) string {
	if p := stringField(cfg, id); p != nil {
		return *p
	}
	if p := boolField(cfg, id); p != nil {
		return strconv.FormatBool(*p)
	}
	return ""
}

// SetValue stores a single-valued answer.
func SetValue(cfg *models.ProjectConfig, id, value string) error {
	if p := stringField(cfg, id); p != nil {
		*p = value
		return nil
	}
	if p := boolField(cfg, id); p != nil {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		*p = b
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
}

// Values returns the current answers for a list-valued id.
func Values(cfg *models.ProjectConfig, id string) []string {
	if p := listField(cfg, id); p != nil {
		return slices.Clone(*p)
	}
	return nil
}

// SetValues stores a list-valued answer.
func SetValues(cfg *models.ProjectConfig, id string, values []string) error {
	p := listField(cfg, id)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	*p = slices.Clone(values)
	return nil
}

// Precast brand colors.
const (
	ColorPrimary   = "#7C3AED"
	ColorSecondary = "#06B6D4"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// newPrecastTheme creates a huh.Theme with precast branding.
func newPrecastTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
