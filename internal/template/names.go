package template

import (
	"path"
	"strings"
)

// TemplateSuffix marks files that are rendered rather than copied.
const TemplateSuffix = ".hbs"

// IsTemplate reports whether name carries the renderable suffix.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, TemplateSuffix)
}

// DestName maps a stored template base name to its output name:
// a trailing .hbs is stripped and a leading "_" becomes ".".
//
//	_gitignore.hbs -> .gitignore
//	package.json.hbs -> package.json
func DestName(name string) string {
	name = strings.TrimSuffix(name, TemplateSuffix)
	if rest, ok := strings.CutPrefix(name, "_"); ok {
		return "." + rest
	}
	return name
}

// DestPath applies DestName to the final element of a slash-separated
// relative path. Directory names are kept as stored.
func DestPath(rel string) string {
	dir, base := path.Split(rel)
	return dir + DestName(base)
}
