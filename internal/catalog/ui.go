package catalog

import "slices"

// UILibrary describes a component library layered on a framework.
type UILibrary struct {
	ID                  string
	Name                string
	Packages            map[string][]string
	DevPackages         map[string][]string
	SupportedFrameworks []string
	RequiresTailwind    bool
}

// SupportsFramework reports whether the library can be used with id.
func (u UILibrary) SupportsFramework(id string) bool {
	return supports(u.SupportedFrameworks, id)
}

var uiLibraries = []UILibrary{
	{
		ID:   "shadcn",
		Name: "shadcn/ui",
		Packages: map[string][]string{
			Wildcard: {"class-variance-authority", "clsx", "tailwind-merge", "lucide-react"},
		},
		SupportedFrameworks: []string{"react", "next", "vite", "remix", "astro", "tanstack-start"},
		RequiresTailwind:    true,
	},
	{
		ID:   "daisyui",
		Name: "daisyUI",
		DevPackages: map[string][]string{
			Wildcard: {"daisyui"},
		},
		RequiresTailwind: true,
	},
	{
		ID:   "mui",
		Name: "Material UI",
		Packages: map[string][]string{
			Wildcard: {"@mui/material", "@emotion/react", "@emotion/styled"},
		},
		SupportedFrameworks: []string{"react", "next", "vite", "remix"},
	},
	{
		ID:   "chakra",
		Name: "Chakra UI",
		Packages: map[string][]string{
			Wildcard: {"@chakra-ui/react", "@emotion/react"},
		},
		SupportedFrameworks: []string{"react", "next", "vite", "remix"},
	},
	{
		ID:   "mantine",
		Name: "Mantine",
		Packages: map[string][]string{
			Wildcard: {"@mantine/core", "@mantine/hooks"},
		},
		SupportedFrameworks: []string{"react", "next", "vite", "remix"},
	},
	{
		ID:   "vuetify",
		Name: "Vuetify",
		Packages: map[string][]string{
			Wildcard: {"vuetify"},
		},
		SupportedFrameworks: []string{"vue", "nuxt"},
	},
	{
		ID:   "primevue",
		Name: "PrimeVue",
		Packages: map[string][]string{
			Wildcard: {"primevue", "@primevue/themes"},
		},
		SupportedFrameworks: []string{"vue", "nuxt"},
	},
	{
		ID:   "angular-material",
		Name: "Angular Material",
		Packages: map[string][]string{
			Wildcard: {"@angular/material", "@angular/cdk"},
		},
		SupportedFrameworks: []string{"angular"},
	},
}

// UILibraries returns every UI library in display order.
func UILibraries() []UILibrary {
	return slices.Clone(uiLibraries)
}

// LookupUILibrary returns the UI library with id.
func LookupUILibrary(id string) (UILibrary, bool) {
	i := slices.IndexFunc(uiLibraries, func(u UILibrary) bool { return u.ID == id })
	if i < 0 {
		return UILibrary{}, false
	}
	return uiLibraries[i], true
}

// UILibrariesFor returns the libraries usable with framework and styling.
func UILibrariesFor(framework, styling string) []UILibrary {
	var out []UILibrary
	for _, u := range uiLibraries {
		if !u.SupportsFramework(framework) {
			continue
		}
		if u.RequiresTailwind && styling != "tailwind" {
			continue
		}
		out = append(out, u)
	}
	return out
}
