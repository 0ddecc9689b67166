// Package ui renders terminal output for create-precast-app: phase
// progress, install spinners, tables and post-install instructions.
// Every component falls back to plain line output in headless mode.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors is the palette used by every component.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Muted     string
}

// Theme carries colors and whether to use them at all.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// DefaultTheme returns the precast palette. NO_COLOR disables colors.
func DefaultTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		Colors: Colors{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Muted:     "#6B7280",
		},
		NoColor: noColor,
	}
}

func (t *Theme) style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style {
	return t.style(t.Colors.Primary).Bold(true)
}

// Success styles confirmation text.
func (t *Theme) Success() lipgloss.Style {
	return t.style(t.Colors.Success).Bold(true)
}

// Warning styles warnings.
func (t *Theme) Warning() lipgloss.Style {
	return t.style(t.Colors.Warning)
}

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style {
	return t.style(t.Colors.Muted)
}
