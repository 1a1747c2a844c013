package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	"github.com/leonardotrapani/hyprhue/internal/config"
)

// Status and text colors. These stay fixed whatever color is picked.
var (
	ColorSuccess = lipgloss.Color("#22C55E")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorText    = lipgloss.Color("#F8FAFC")
	ColorMuted   = lipgloss.Color("#94A3B8")
	ColorSubtle  = lipgloss.Color("#64748B")
)

// Accents are pulled into this lightness band (percent) so near-black and
// near-white bases still read on a terminal background.
const (
	minAccentLightness = 35
	maxAccentLightness = 70
)

// Theme is the picker's accent pair, taken from a base color and its
// complement.
type Theme struct {
	Accent    lipgloss.Color
	Selection lipgloss.Color
}

// ThemeFor builds the theme for hex. Unparseable input gets the theme of
// config.DefaultColor.
func ThemeFor(hex string) Theme {
	base, err := colormodel.Normalize(hex)
	if err != nil {
		base = config.DefaultColor
	}
	hsl, err := colormodel.ToHSL(base)
	if err != nil {
		return Theme{Accent: ColorText, Selection: ColorText}
	}

	l := math.Max(minAccentLightness, math.Min(maxAccentLightness, hsl.L))
	return Theme{
		Accent:    lipgloss.Color(colormodel.HSLToHex(hsl.H, hsl.S, l)),
		Selection: lipgloss.Color(colormodel.HSLToHex(hsl.H+180, hsl.S, l)),
	}
}
