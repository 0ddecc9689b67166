package catalog

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// PluginEntry is the plugins/<id>/config.json contract. Dependency and
// setup-file maps are keyed by framework (or backend) id with a Wildcard
// fallback.
type PluginEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	Dependencies           map[string][]string `json:"dependencies,omitempty"`
	DevDependencies        map[string][]string `json:"devDependencies,omitempty"`
	BackendDependencies    map[string][]string `json:"backendDependencies,omitempty"`
	BackendDevDependencies map[string][]string `json:"backendDevDependencies,omitempty"`

	EnvVariables      []EnvVar               `json:"envVariables,omitempty"`
	Scripts           map[string]string      `json:"scripts,omitempty"`
	SetupFiles        map[string][]SetupFile `json:"setupFiles,omitempty"`
	BackendSetupFiles map[string][]SetupFile `json:"backendSetupFiles,omitempty"`

	PostInstall PostInstall `json:"postInstall"`
}

// SetupFile renders Template, relative to the plugin directory, to Output,
// relative to the project (or backend) root.
type SetupFile struct {
	Template string `json:"template"`
	Output   string `json:"output"`
}

// PostInstall carries notes shown to the user after generation.
type PostInstall struct {
	Instructions []string `json:"instructions,omitempty"`
}

// PluginDir returns the template-store directory of plugin id.
func PluginDir(id string) string {
	return path.Join(defs.PluginsDir, id)
}

// LoadPluginEntry reads plugins/<id>/config.json from fsys.
func LoadPluginEntry(fsys fs.FS, id string) (*PluginEntry, error) {
	name := path.Join(PluginDir(id), defs.PluginConfigJSON)
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: plugin %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var entry PluginEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if entry.ID == "" {
		entry.ID = id
	}
	if entry.ID != id {
		return nil, fmt.Errorf("%s: id %q does not match directory %q", name, entry.ID, id)
	}
	if entry.Name == "" {
		entry.Name = id
	}
	return &entry, nil
}

// ListPluginEntries loads every plugin found under plugins/ in fsys,
// sorted by id. Directories without a config.json are ignored.
func ListPluginEntries(fsys fs.FS) ([]*PluginEntry, error) {
	dirs, err := fs.ReadDir(fsys, defs.PluginsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []*PluginEntry
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		entry, err := LoadPluginEntry(fsys, d.Name())
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b *PluginEntry) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return entries, nil
}
