package wizard

import (
	"errors"
	"slices"
	"testing"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

func ids(questions []Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func TestDefaultQuestions(t *testing.T) {
	questions := DefaultQuestions(nil)

	if len(questions) == 0 {
		t.Fatal("DefaultQuestions() returned empty slice")
	}
	if questions[0].ID != "name" {
		t.Errorf("expected first question ID 'name', got %q", questions[0].ID)
	}
	if QuestionByID(questions, "plugins") != nil {
		t.Error("plugin question should be omitted without plugins")
	}

	cfg := models.Default()
	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate question %q", q.ID)
		}
		seen[q.ID] = true
		if q.Title == "" {
			t.Errorf("question %q has no title", q.ID)
		}
		if q.Type == QuestionTypeSelect && (q.Options == nil || len(q.Options(&cfg)) == 0) {
			t.Errorf("select question %q has no options", q.ID)
		}
		// Every question must map onto a configuration field.
		switch q.Type {
		case QuestionTypeMultiSelect:
			if err := SetValues(&cfg, q.ID, nil); err != nil {
				t.Errorf("SetValues(%q): %v", q.ID, err)
			}
		default:
			if err := SetValue(&cfg, q.ID, Value(&cfg, q.ID)); err != nil {
				t.Errorf("SetValue(%q): %v", q.ID, err)
			}
		}
	}
}

func TestDefaultQuestionsWithPlugins(t *testing.T) {
	entries := []*catalog.PluginEntry{
		{ID: "stripe", Name: "Stripe", Description: "Payments"},
		{ID: "sentry", Name: "Sentry"},
	}
	questions := DefaultQuestions(PluginOptions(entries))

	q := QuestionByID(questions, "plugins")
	if q == nil {
		t.Fatal("plugin question missing")
	}
	opts := q.Options(nil)
	want := []Option{
		{Label: "Stripe", Value: "stripe", Desc: "Payments"},
		{Label: "Sentry", Value: "sentry"},
	}
	if !slices.Equal(opts, want) {
		t.Errorf("plugin options = %v, want %v", opts, want)
	}
}

func TestSkip(t *testing.T) {
	questions := DefaultQuestions(nil)
	explicit := map[string]bool{"name": true, "framework": true, "git": true}

	kept := Skip(questions, func(id string) bool { return explicit[id] })
	if len(kept) != len(questions)-3 {
		t.Fatalf("kept %d questions, want %d", len(kept), len(questions)-3)
	}
	for _, id := range ids(kept) {
		if explicit[id] {
			t.Errorf("question %q should be skipped", id)
		}
	}
}

func TestFilteredQuestions(t *testing.T) {
	questions := DefaultQuestions(nil)

	tests := []struct {
		name    string
		mutate  func(*models.ProjectConfig)
		visible map[string]bool
	}{
		{
			name:    "defaults",
			mutate:  func(*models.ProjectConfig) {},
			visible: map[string]bool{"orm": false, "mcpServers": false, "uiLibrary": true, "docker": true},
		},
		{
			name: "database and assistant",
			mutate: func(c *models.ProjectConfig) {
				c.Database = models.DatabasePostgres
				c.AIAssistant = "claude"
			},
			visible: map[string]bool{"orm": true, "mcpServers": true},
		},
		{
			name: "vanilla docker deploy",
			mutate: func(c *models.ProjectConfig) {
				c.Framework = "vanilla"
				c.DeploymentMethod = "docker"
			},
			visible: map[string]bool{"uiLibrary": false, "docker": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.Default()
			cfg.Coerce()
			tt.mutate(&cfg)
			got := ids(FilteredQuestions(questions, &cfg))
			for id, want := range tt.visible {
				if slices.Contains(got, id) != want {
					t.Errorf("question %q visible = %v, want %v", id, !want, want)
				}
			}
		})
	}
}

func TestDynamicOptions(t *testing.T) {
	questions := DefaultQuestions(nil)
	cfg := models.Default()

	cfg.Framework = "vue"
	cfg.Styling = models.StylingCSS
	ui := QuestionByID(questions, "uiLibrary").Options(&cfg)
	for _, o := range ui {
		if o.Value == "shadcn" {
			t.Error("shadcn should not be offered for vue without tailwind")
		}
	}
	if ui[0].Value != models.None {
		t.Errorf("first ui option = %q, want none", ui[0].Value)
	}

	cfg.Framework = "react"
	auth := QuestionByID(questions, "authProvider").Options(&cfg)
	if len(auth) < 2 {
		t.Fatalf("expected auth providers for react, got %v", auth)
	}
}

func TestSetValue(t *testing.T) {
	cfg := models.Default()

	if err := SetValue(&cfg, "framework", "svelte"); err != nil {
		t.Fatal(err)
	}
	if cfg.Framework != "svelte" {
		t.Errorf("Framework = %q", cfg.Framework)
	}

	if err := SetValue(&cfg, "typescript", "false"); err != nil {
		t.Fatal(err)
	}
	if cfg.TypeScript || Value(&cfg, "typescript") != "false" {
		t.Error("typescript should be false")
	}

	if err := SetValue(&cfg, "docker", "maybe"); err == nil {
		t.Error("expected parse error for bool field")
	}
	if err := SetValue(&cfg, "nope", "x"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("SetValue(nope) = %v, want ErrUnknownQuestion", err)
	}
}

func TestSetValues(t *testing.T) {
	cfg := models.Default()
	in := []string{"github", "memory"}
	if err := SetValues(&cfg, "mcpServers", in); err != nil {
		t.Fatal(err)
	}
	in[0] = "changed"
	if got := Values(&cfg, "mcpServers"); !slices.Equal(got, []string{"github", "memory"}) {
		t.Errorf("Values() = %v", got)
	}
	if err := SetValues(&cfg, "framework", in); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("SetValues(framework) = %v, want ErrUnknownQuestion", err)
	}
}

func TestBuildField(t *testing.T) {
	cfg := models.Default()
	cfg.Name = "my-app"
	cfg.Plugins = []string{"stripe"}

	tests := []struct {
		q    Question
		want any
	}{
		{Question{ID: "name", Type: QuestionTypeInput, Title: "Name"}, "my-app"},
		{Question{ID: "framework", Type: QuestionTypeSelect, Title: "Framework", Options: frameworkOptions}, "react"},
		{Question{ID: "typescript", Type: QuestionTypeConfirm, Title: "TS"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.q.ID, func(t *testing.T) {
			f, err := buildField(&tt.q, &cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.GetValue(); got != tt.want {
				t.Errorf("GetValue() = %v, want %v", got, tt.want)
			}
		})
	}

	f, err := buildField(&Question{ID: "plugins", Type: QuestionTypeMultiSelect}, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := f.GetValue().([]string); !ok || !slices.Equal(got, []string{"stripe"}) {
		t.Errorf("multi-select value = %v", f.GetValue())
	}

	if _, err := buildField(&Question{ID: "x", Type: QuestionType(99)}, &cfg); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown type error = %v", err)
	}
}

func TestRunNoQuestions(t *testing.T) {
	cfg := models.Default()
	if err := Run(nil, &cfg); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) = %v, want ErrNoQuestions", err)
	}
}

func TestNewPrecastTheme(t *testing.T) {
	if newPrecastTheme() == nil {
		t.Fatal("newPrecastTheme() returned nil")
	}
}
