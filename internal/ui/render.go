package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer formats static output: markdown, tables and the success card.
type Renderer struct {
	theme    *Theme
	headless *HeadlessManager
	width    int
}

// NewRenderer creates a Renderer wrapping text at 80 columns.
func NewRenderer(theme *Theme, hm *HeadlessManager) *Renderer {
	return &Renderer{theme: theme, headless: hm, width: 80}
}

// plain reports whether output must stay free of escape sequences.
func (r *Renderer) plain() bool {
	return r.theme.NoColor || r.headless.IsHeadless()
}

// Markdown renders md for the terminal.
func (r *Renderer) Markdown(md string) (string, error) {
	style := glamour.WithAutoStyle()
	if r.plain() {
		style = glamour.WithStandardStyle("notty")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(r.width))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Table renders rows under headers.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true)
	border := lipgloss.NewStyle()
	if !r.theme.NoColor {
		header = header.Foreground(lipgloss.Color(r.theme.Colors.Primary))
		border = border.Foreground(lipgloss.Color(r.theme.Colors.Muted))
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range rows {
		tbl.Row(row...)
	}
	return tbl.String()
}

// SuccessCard renders the boxed summary printed after generation.
func (r *Renderer) SuccessCard(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(r.theme.Success().Render(title))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(l)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if !r.theme.NoColor {
		box = box.BorderForeground(lipgloss.Color(r.theme.Colors.Success))
	}
	return box.Render(b.String())
}

// Warnings renders one styled line per warning.
func (r *Renderer) Warnings(warnings []string) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(r.theme.Warning().Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}
