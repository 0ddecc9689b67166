// Package catalog holds the static descriptor tables consumed by the
// generators: frameworks, auth providers, UI libraries, MCP servers and AI
// assistants. Plugin entries are data files in the template store and are
// loaded on demand.
package catalog

import (
	"errors"
	"slices"
)

// ErrNotFound indicates an identifier missing from a catalog.
var ErrNotFound = errors.New("catalog: entry not found")

// Wildcard keys a fallback entry in per-framework maps.
const Wildcard = "*"

// EnvVar is one KEY=value line contributed to the environment files.
// Secret values are generated at setup time and Value is ignored.
type EnvVar struct {
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Secret      bool   `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// ForKey returns m[key], falling back to the wildcard entry.
func ForKey[T any](m map[string][]T, key string) []T {
	if v, ok := m[key]; ok {
		return slices.Clone(v)
	}
	return slices.Clone(m[Wildcard])
}

// supports reports whether id is in list. An empty list supports everything.
func supports(list []string, id string) bool {
	return len(list) == 0 || slices.Contains(list, id)
}
