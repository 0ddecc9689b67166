package template

import "testing"

func TestDestName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"package.json.hbs", "package.json"},
		{"_gitignore.hbs", ".gitignore"},
		{"_gitignore", ".gitignore"},
		{"_env.example", ".env.example"},
		{"logo.svg", "logo.svg"},
		{"README.md", "README.md"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := DestName(tt.in)
			if got != tt.want {
				t.Errorf("DestName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := DestName(got); again != got {
				t.Errorf("DestName is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestDestPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"src/_env.local.hbs", "src/.env.local"},
		{"_dir/_gitignore", "_dir/.gitignore"},
		{"a/b/c.ts.hbs", "a/b/c.ts"},
		{"top.hbs", "top"},
	}
	for _, tt := range tests {
		if got := DestPath(tt.in); got != tt.want {
			t.Errorf("DestPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsTemplate(t *testing.T) {
	if !IsTemplate("a.ts.hbs") || IsTemplate("a.ts") || IsTemplate("hbs") {
		t.Error("IsTemplate mismatch")
	}
}
