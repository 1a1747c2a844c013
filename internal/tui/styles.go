package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/hyprhue/internal/colormodel"
)

// Styles renders picker and CLI messages in a Theme's colors.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style // hex values, in the complement
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Hint    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:   t,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(ColorText),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(t.Selection),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Hint:    lipgloss.NewStyle().Italic(true).Foreground(ColorSubtle),
	}
}

// StylesFor is NewStyles(ThemeFor(hex)).
func StylesFor(hex string) Styles {
	return NewStyles(ThemeFor(hex))
}

const logoASCII = `
 _                      _
| |__  _   _ _ __  _ __| |__  _   _  ___
| '_ \| | | | '_ \| '__| '_ \| | | |/ _ \
| | | | |_| | |_) | |  | | | | |_| |  __/
|_| |_|\__, | .__/|_|  |_| |_|\__,_|\___|
       |___/|_|`

// Logo draws the ASCII art with one palette color per line, in palette
// order, starting from the accent.
func (s Styles) Logo() string {
	lines := strings.Split(strings.Trim(logoASCII, "\n"), "\n")
	colors, err := colormodel.GenerateHarmoniousColors(string(s.Theme.Accent))
	if err != nil {
		colors = []string{string(s.Theme.Accent)}
	}
	for i, line := range lines {
		lines[i] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors[i%len(colors)])).
			Render(line)
	}
	return strings.Join(lines, "\n")
}

// Chip returns a small block drawn in hex, used next to option labels.
func Chip(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("████")
}
