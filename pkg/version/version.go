// Package version exposes build metadata for create-precast-app.
package version

import "fmt"

// Build-time variables injected via -ldflags, for example:
//
//	-X github.com/BuunGroupCore/precast-app-sub003/pkg/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns the bare version string shown in the banner.
func Short() string {
	return Version
}

// Full returns the version with commit and build date, as printed by
// `create-precast-app --version`.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
