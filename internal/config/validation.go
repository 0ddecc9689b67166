package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Validate checks cfg for correctness and reports every problem at once.
// Optional fields may be empty or "none". Framework support of the auth
// provider and UI library is left to the generator, which knows about
// custom frameworks.
func Validate(cfg *models.ProjectConfig) error {
	var errs []ValidationError

	errs = append(errs, validateName(cfg.Name)...)

	if _, ok := catalog.LookupFramework(cfg.Framework); !ok {
		errs = append(errs, enumError("framework", cfg.Framework, catalog.FrameworkIDs()))
	}

	// Closed enumerations
	errs = append(errs, checkEnum("backend", cfg.Backend, models.Backends())...)
	errs = append(errs, checkEnum("database", cfg.Database, models.Databases())...)
	errs = append(errs, checkEnum("orm", cfg.ORM, models.ORMs())...)
	errs = append(errs, checkEnum("styling", cfg.Styling, models.Stylings())...)
	errs = append(errs, checkEnum("runtime", cfg.Runtime, models.Runtimes())...)
	errs = append(errs, checkEnum("packageManager", cfg.PackageManager, models.PackageManagers())...)
	errs = append(errs, checkEnum("apiClient", cfg.APIClient, models.APIClients())...)
	errs = append(errs, checkEnum("deploymentMethod", cfg.DeploymentMethod, models.DeploymentMethods())...)
	errs = append(errs, checkEnum("aiAssistant", cfg.AIAssistant, models.AIAssistants())...)

	// Catalog-backed choices
	errs = append(errs, checkEnum("authProvider", cfg.AuthProvider, optional(authIDs()))...)
	errs = append(errs, checkEnum("uiLibrary", cfg.UILibrary, optional(uiIDs()))...)
	for _, id := range cfg.AIContext {
		errs = append(errs, checkEnum("aiContext", id, models.AIAssistants())...)
	}
	for _, id := range cfg.MCPServers {
		errs = append(errs, checkEnum("mcpServers", id, mcpIDs())...)
	}

	errs = append(errs, validateDependencies(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateName checks the project name format.
func validateName(name string) []ValidationError {
	if err := models.ValidateProjectName(name); err != nil {
		msg := err.Error()
		if _, after, ok := strings.Cut(msg, ": "); ok {
			msg = after
		}
		return []ValidationError{{
			Field:   "name",
			Message: msg,
			Value:   name,
			Wrapped: errors.Join(ErrInvalidConfig, models.ErrInvalidProjectName),
		}}
	}
	return nil
}

// validateDependencies checks choices that only make sense together.
func validateDependencies(cfg *models.ProjectConfig) []ValidationError {
	var errs []ValidationError
	if models.Selected(cfg.ORM) && !models.Selected(cfg.Database) {
		errs = append(errs, ValidationError{
			Field:   "orm",
			Message: "requires a database",
			Value:   cfg.ORM,
			Wrapped: ErrInvalidConfig,
		})
	}
	if cfg.ORM == models.ORMMongoose && models.Selected(cfg.Database) && cfg.Database != models.DatabaseMongoDB {
		errs = append(errs, ValidationError{
			Field:   "orm",
			Message: "mongoose requires the mongodb database",
			Value:   cfg.Database,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// checkEnum reports value when it is set and not in valid.
func checkEnum(field, value string, valid []string) []ValidationError {
	if value == "" || slices.Contains(valid, value) {
		return nil
	}
	return []ValidationError{enumError(field, value, valid)}
}

func enumError(field, value string, valid []string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
		Value:   value,
		Wrapped: ErrUnknownValue,
	}
}

func optional(ids []string) []string {
	return append([]string{models.None}, ids...)
}

func authIDs() []string {
	var ids []string
	for _, p := range catalog.AuthProviders() {
		ids = append(ids, p.ID)
	}
	return ids
}

func uiIDs() []string {
	var ids []string
	for _, u := range catalog.UILibraries() {
		ids = append(ids, u.ID)
	}
	return ids
}

func mcpIDs() []string {
	var ids []string
	for _, s := range catalog.MCPServers() {
		ids = append(ids, s.ID)
	}
	return ids
}
