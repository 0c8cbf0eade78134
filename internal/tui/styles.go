package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/donikhodjaev/misbaha/internal/models"
)

// Styles is the theme-dependent style table.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Count       lipgloss.Style
	Arabic      lipgloss.Style
	Label       lipgloss.Style
	Accent      lipgloss.Style
	Danger      lipgloss.Style
	Status      lipgloss.Style
	Doc         lipgloss.Style
}

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	dim    lipgloss.Color
	bg     lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeDefault: {accent: "42", text: "252", dim: "241", bg: "236"},
	models.ThemeDark:    {accent: "33", text: "250", dim: "240", bg: "234"},
	models.ThemeLight:   {accent: "28", text: "235", dim: "245", bg: "254"},
}

// StylesFor builds the style table for a theme.
func StylesFor(theme models.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeDefault]
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.bg).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.dim).
			Padding(0, 1),
		Count: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		Arabic: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(p.dim),
		Accent: lipgloss.NewStyle().
			Foreground(p.accent),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(p.accent).
			Italic(true),
		Doc: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
