package config

import (
	"errors"
	"testing"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

func validConfig() models.ProjectConfig {
	cfg := models.Default()
	cfg.Name = "my-app"
	cfg.Coerce()
	return cfg
}

func TestValidateValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.AuthProvider = "better-auth"
	cfg.Database = models.DatabasePostgres
	cfg.ORM = models.ORMPrisma
	cfg.MCPServers = []string{"github"}
	cfg.AIContext = []string{"claude", "cursor"}

	if err := Validate(&cfg); err != nil {
		t.Errorf("Validate() expected no error, got: %v", err)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase", "my-app", false},
		{"digits", "app2", false},
		{"uppercase", "MyApp", true},
		{"underscore", "my_app", true},
		{"space", "my app", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			cfg.Name = tt.input
			err := Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, models.ErrInvalidProjectName) {
				t.Errorf("expected ErrInvalidProjectName, got %v", err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Name = "Bad Name"
	cfg.Framework = "ember"
	cfg.Styling = "less"
	cfg.PackageManager = "pip"
	cfg.AuthProvider = "okta"
	cfg.MCPServers = []string{"github", "nope"}

	err := Validate(&cfg)
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	want := []string{"name", "framework", "styling", "packageManager", "authProvider", "mcpServers"}
	got := ve.Fields()
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fields[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrUnknownValue) {
		t.Error("expected ErrInvalidConfig and ErrUnknownValue")
	}
}

func TestValidateDependencies(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.ORM = models.ORMPrisma
	cfg.Database = models.DatabaseNone
	err := Validate(&cfg)
	var ve *ValidationErrors
	if !errors.As(err, &ve) || ve.Errors[0].Field != "orm" {
		t.Fatalf("expected orm error, got %v", err)
	}

	cfg = validConfig()
	cfg.Database = models.DatabasePostgres
	cfg.ORM = models.ORMMongoose
	if err := Validate(&cfg); err == nil {
		t.Error("mongoose with postgres should fail")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Field: "styling", Message: "must be one of: css", Value: "less"}
	want := `validation error: field "styling": must be one of: css (got: less)`
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	empty := &ValidationErrors{}
	if empty.Error() != "validation: no errors" {
		t.Errorf("empty Error() = %q", empty.Error())
	}
}
