package plugin

import (
	"context"
	"fmt"
	"path"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Builtins returns the plugins shipped with the CLI in the order they
// should be registered. Deployment comes first because its transform can
// enable Docker for the plugin after it.
func Builtins() []*Plugin {
	return []*Plugin{
		DeploymentPlugin(),
		DockerPlugin(),
		APIClientPlugin(),
	}
}

// copyFeature copies features/<parts...> into the project when the
// template store has it. A missing subtree is logged and ignored.
func copyFeature(ctx context.Context, gc *GenerationContext, parts ...string) error {
	dir := path.Join(append([]string{defs.FeaturesDir}, parts...)...)
	if !gc.Engine.HasDir(dir) {
		gc.Logger.Debug("feature templates not found", "dir", dir)
		return nil
	}
	res, err := gc.Engine.CopyTree(ctx, dir, gc.ProjectPath, template.NewData(*gc.Config), template.Options{Overwrite: true})
	if err != nil {
		return fmt.Errorf("copy %s: %w", dir, err)
	}
	gc.Logger.Debug("feature copied", "dir", dir, "files", len(res.Written))
	return nil
}

// DockerPlugin adds a Dockerfile and compose setup when docker is enabled.
func DockerPlugin() *Plugin {
	return &Plugin{
		Name: "docker",
		Generate: func(ctx context.Context, gc *GenerationContext) error {
			if !gc.Config.Docker {
				return nil
			}
			return copyFeature(ctx, gc, "docker")
		},
	}
}

// APIClientPlugin adds the data-fetching layer for the selected API client.
func APIClientPlugin() *Plugin {
	return &Plugin{
		Name: "api-client",
		ValidateConfig: func(cfg *models.ProjectConfig) []string {
			var errs []string
			if cfg.APIClient == "trpc" {
				if !cfg.TypeScript {
					errs = append(errs, "trpc requires TypeScript")
				}
				if !models.Selected(cfg.Backend) {
					errs = append(errs, "trpc requires a backend")
				}
			}
			return errs
		},
		Generate: func(ctx context.Context, gc *GenerationContext) error {
			if !models.Selected(gc.Config.APIClient) {
				return nil
			}
			return copyFeature(ctx, gc, "api-client", gc.Config.APIClient)
		},
	}
}

// DeploymentPlugin adds configuration for the selected deployment target.
// Docker deployments turn on the docker feature.
func DeploymentPlugin() *Plugin {
	return &Plugin{
		Name: "deployment",
		TransformConfig: func(cfg models.ProjectConfig) (models.ProjectConfig, error) {
			if cfg.DeploymentMethod == "docker" {
				cfg.Docker = true
			}
			return cfg, nil
		},
		PostGenerate: func(ctx context.Context, gc *GenerationContext) error {
			if !models.Selected(gc.Config.DeploymentMethod) {
				return nil
			}
			return copyFeature(ctx, gc, "deploy", gc.Config.DeploymentMethod)
		},
	}
}
