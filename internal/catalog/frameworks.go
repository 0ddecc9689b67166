package catalog

import "slices"

// Framework describes a frontend framework the generator can scaffold.
type Framework struct {
	ID   string
	Name string
	// SourceDirs are optional subtrees copied after base when present.
	SourceDirs []string
	// UILibraries reports whether component libraries can be layered on.
	UILibraries bool
}

var defaultSourceDirs = []string{"src", "app"}

var frameworks = []Framework{
	{ID: "react", Name: "React", UILibraries: true},
	{ID: "vue", Name: "Vue", UILibraries: true},
	{ID: "angular", Name: "Angular", UILibraries: true},
	{ID: "next", Name: "Next.js", UILibraries: true},
	{ID: "nuxt", Name: "Nuxt", UILibraries: true},
	{ID: "astro", Name: "Astro", UILibraries: true},
	{ID: "vite", Name: "Vite", UILibraries: true},
	{ID: "remix", Name: "Remix", UILibraries: true},
	{ID: "solid", Name: "SolidJS", UILibraries: true},
	{ID: "svelte", Name: "Svelte", UILibraries: true},
	{ID: "tanstack-start", Name: "TanStack Start", UILibraries: true},
	{ID: "react-native", Name: "React Native", SourceDirs: []string{"src", "app", "assets"}, UILibraries: true},
	{ID: "vanilla", Name: "Vanilla", UILibraries: false},
}

// Frameworks returns every supported framework in display order.
func Frameworks() []Framework {
	return slices.Clone(frameworks)
}

// LookupFramework returns the framework with id.
func LookupFramework(id string) (Framework, bool) {
	i := slices.IndexFunc(frameworks, func(f Framework) bool { return f.ID == id })
	if i < 0 {
		return Framework{}, false
	}
	return frameworks[i], true
}

// FrameworkIDs returns the identifiers of every framework.
func FrameworkIDs() []string {
	ids := make([]string, len(frameworks))
	for i, f := range frameworks {
		ids[i] = f.ID
	}
	return ids
}

// Sources returns the source subtrees probed after base.
func (f Framework) Sources() []string {
	if len(f.SourceDirs) == 0 {
		return slices.Clone(defaultSourceDirs)
	}
	return f.SourceDirs
}
