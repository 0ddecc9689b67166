// Package models provides the shared data model of create-precast-app.
//
// The central type is [ProjectConfig], the value object produced by the
// interactive wizard or by command-line flags and consumed by every
// generator. Once generation starts it is treated as read-only, except
// where plugins transform it explicitly through the plugin manager.
//
// # Closed Enumerations
//
// Stack choices that are not owned by an external catalog are modelled as
// string sets with membership checks:
//
//	if !models.IsValidDatabase(cfg.Database) {
//	    return fmt.Errorf("unsupported database %q", cfg.Database)
//	}
//
// Frameworks, auth providers, UI libraries and MCP servers are owned by
// internal/catalog because they carry descriptor data.
//
// # Dependent Fields
//
// [ProjectConfig.Coerce] enforces the dependent-field rules (for example,
// no ORM without a database) and fills "none" for unset optional choices.
// Generators assume Coerce has run.
package models
