package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// ErrNoManifest indicates a directory that was not created by this tool.
var ErrNoManifest = errors.New("generator: no project manifest")

// ProjectManifest is the content of precast.yaml. It records the resolved
// stack so that later commands can extend the project consistently.
type ProjectManifest struct {
	Version   string               `yaml:"version"`
	CreatedAt time.Time            `yaml:"createdAt"`
	Project   models.ProjectConfig `yaml:"project"`
}

// WriteProjectManifest saves cfg to projectPath/precast.yaml.
func WriteProjectManifest(projectPath string, cfg models.ProjectConfig, version string) error {
	if version == "" {
		version = "dev"
	}
	m := ProjectManifest{
		Version:   version,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Project:   cfg,
	}
	return SaveProjectManifest(projectPath, m)
}

// SaveProjectManifest writes m as YAML, replacing any existing manifest.
func SaveProjectManifest(projectPath string, m ProjectManifest) error {
	out, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(projectPath, defs.ProjectManifest)
	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.ProjectManifest, err)
	}
	return nil
}

// LoadProjectManifest reads projectPath/precast.yaml. ProjectPath on the
// returned config is set to projectPath.
func LoadProjectManifest(projectPath string) (*ProjectManifest, error) {
	path := filepath.Join(projectPath, defs.ProjectManifest)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNoManifest, projectPath)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", defs.ProjectManifest, err)
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", defs.ProjectManifest, err)
	}
	m.Project.ProjectPath = projectPath
	m.Project.Coerce()
	return &m, nil
}
