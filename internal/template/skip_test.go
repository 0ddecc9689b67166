package template

import "testing"

func TestShouldSkip(t *testing.T) {
	tests := []struct {
		file       string
		typescript bool
		styling    string
		want       bool
	}{
		{"foo.ts.hbs", false, "css", true},
		{"foo.ts.hbs", true, "css", false},
		{"src/App.tsx.hbs", false, "css", true},
		{"src/App.tsx.hbs", true, "css", false},
		{"foo.js.hbs", true, "css", true},
		{"foo.js.hbs", false, "css", false},
		{"src/App.jsx.hbs", true, "css", true},
		{"style.scss.hbs", true, "scss", false},
		{"style.scss.hbs", true, "css", true},
		{"style.scss.hbs", true, "tailwind", true},
		{"tailwind.config.mjs.hbs", true, "tailwind", false},
		{"tailwind.config.mjs.hbs", true, "css", true},
		{"postcss.config.mjs.hbs", false, "scss", true},
		{"postcss.config.js.hbs", false, "tailwind", false},
		{"tsconfig.json.hbs", false, "css", true},
		{"tsconfig.node.json.hbs", false, "css", true},
		{"tsconfig.json.hbs", true, "css", false},
		{"env.d.ts.hbs", false, "css", true},
		{"env.d.ts.hbs", true, "css", false},
		{"package.json.hbs", false, "css", false},
		{"README.md", true, "scss", false},
		{"nested/dir/tsconfig.json.hbs", false, "css", true},
	}
	for _, tt := range tests {
		name := tt.file + "/" + tt.styling
		if tt.typescript {
			name += "/ts"
		}
		t.Run(name, func(t *testing.T) {
			d := Data{"typescript": tt.typescript, "styling": tt.styling}
			if got := ShouldSkip(tt.file, d); got != tt.want {
				t.Errorf("ShouldSkip(%q, ts=%v, styling=%q) = %v, want %v",
					tt.file, tt.typescript, tt.styling, got, tt.want)
			}
		})
	}
}

func TestShouldSkipUsesBaseNameOnly(t *testing.T) {
	d := Data{"typescript": false, "styling": "css"}
	if ShouldSkip("foo.ts.hbs/readme.md", d) {
		t.Error("directory names must not trigger rules")
	}
}
