package template

import (
	"os"
	"path/filepath"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// RootCandidates returns the ordered directories probed for the template
// store. The binary may run from a development checkout or a packaged
// install, where templates sit at different depths relative to it.
// A non-empty override replaces the probe list entirely.
func RootCandidates(override string) []string {
	if override != "" {
		return []string{override}
	}

	var candidates []string

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, defs.DefaultTemplateDir),
			filepath.Join(dir, "..", defs.DefaultTemplateDir),
			filepath.Join(dir, "..", "..", defs.DefaultTemplateDir),
		)
	}

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, defs.DefaultTemplateDir))
	}
	return candidates
}

// ResolveRoot returns the first existing directory among the candidates
// for override. It fails with a RootNotFoundError listing every probe.
func ResolveRoot(override string) (string, error) {
	return firstDir(RootCandidates(override))
}

func firstDir(candidates []string) (string, error) {
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return filepath.Clean(c), nil
		}
	}
	return "", &RootNotFoundError{Probed: candidates}
}
