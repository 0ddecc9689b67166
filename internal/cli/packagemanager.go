package cli

import (
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// DetectPackageManager returns the package manager that launched the
// process, read from the npm_config_user_agent value
// ("pnpm/9.1.0 npm/? node/v20.11.0 linux x64"). It falls back to npm.
func DetectPackageManager(userAgent string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(userAgent), "/")
	if models.IsValidPackageManager(name) {
		return name
	}
	return models.PackageManagerNPM
}
