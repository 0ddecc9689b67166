package template

import (
	"path"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// skipRule excludes files whose base name matches one of patterns when
// skip reports true for the render context.
type skipRule struct {
	patterns []string
	skip     func(Data) bool
}

// skipRules is the single place where stack-dependent inclusion is decided.
// Template authors rely on these exact suffixes; add new variant axes here.
var skipRules = []skipRule{
	{
		patterns: []string{"*.ts.hbs", "*.tsx.hbs"},
		skip:     func(d Data) bool { return !d.Bool("typescript") },
	},
	{
		patterns: []string{"*.js.hbs", "*.jsx.hbs"},
		skip:     func(d Data) bool { return d.Bool("typescript") },
	},
	{
		patterns: []string{"*.scss.hbs"},
		skip:     func(d Data) bool { return d.String("styling") != models.StylingSCSS },
	},
	{
		patterns: []string{"tailwind.config.{js,mjs}.hbs", "postcss.config.{js,mjs}.hbs"},
		skip:     func(d Data) bool { return d.String("styling") != models.StylingTailwind },
	},
	{
		patterns: []string{"tsconfig*.json.hbs", "env.d.ts.hbs"},
		skip:     func(d Data) bool { return !d.Bool("typescript") },
	},
}

// ShouldSkip reports whether the file at relPath is excluded for data.
// Only the base name is inspected; the directory never matters. A file is
// skipped when any matching rule says so.
func ShouldSkip(relPath string, data Data) bool {
	name := path.Base(relPath)
	for _, rule := range skipRules {
		if rule.matches(name) && rule.skip(data) {
			return true
		}
	}
	return false
}

func (r skipRule) matches(name string) bool {
	for _, p := range r.patterns {
		if doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}
