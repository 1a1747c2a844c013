package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var ErrUnknownProfile = errors.New("unknown color profile")

// Color profile names accepted in config.
const (
	ProfileAuto      = "auto"
	ProfileTrueColor = "truecolor"
	ProfileANSI256   = "ansi256"
	ProfileANSI      = "ansi"
	ProfileASCII     = "ascii"
)

const (
	swatchWidth = 16
	infoWidth   = 30
	darkText    = "#111111"
	lightText   = "#F8F8F8"
)

// ParseProfile maps a profile name to a termenv profile. "auto" inspects the
// environment of w.
func ParseProfile(name string, w io.Writer) (termenv.Profile, error) {
	switch name {
	case ProfileAuto, "":
		return termenv.NewOutput(w).EnvColorProfile(), nil
	case ProfileTrueColor:
		return termenv.TrueColor, nil
	case ProfileANSI256:
		return termenv.ANSI256, nil
	case ProfileANSI:
		return termenv.ANSI, nil
	case ProfileASCII:
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("%w: %q (must be auto, truecolor, ansi256, ansi, or ascii)", ErrUnknownProfile, name)
	}
}

// IsValidProfile reports whether name is accepted by ParseProfile.
func IsValidProfile(name string) bool {
	switch name {
	case ProfileAuto, ProfileTrueColor, ProfileANSI256, ProfileANSI, ProfileASCII:
		return true
	}
	return false
}

// Renderer draws color swatches for one output stream.
type Renderer struct {
	out io.Writer
	lg  *lipgloss.Renderer

	caption lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

// New returns a Renderer writing to w with the named color profile.
func New(w io.Writer, profile string) (*Renderer, error) {
	p, err := ParseProfile(profile, w)
	if err != nil {
		return nil, err
	}

	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(p)

	return &Renderer{
		out:     w,
		lg:      lg,
		caption: lg.NewStyle().Bold(true),
		muted:   lg.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		box: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#64748B")).
			Padding(0, 1),
	}, nil
}

// Swatch draws a solid block of hex with label centered on it.
func (r *Renderer) Swatch(hex, label string, width int) string {
	return r.lg.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(ContrastText(hex))).
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(label)
}

// Palette draws the swatches side by side, each captioned with its role.
func (r *Renderer) Palette(swatches []colormodel.Swatch) string {
	cols := make([]string, 0, len(swatches))
	for _, s := range swatches {
		col := lipgloss.JoinVertical(lipgloss.Center,
			r.Swatch(s.Hex, s.Hex, swatchWidth),
			r.muted.Width(swatchWidth).Align(lipgloss.Center).Render(string(s.Role)),
		)
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// Info draws a boxed swatch followed by the hex, rgb and hsl values.
func (r *Renderer) Info(info colormodel.Info) string {
	lines := []string{
		r.Swatch(info.Hex, "", infoWidth),
		"",
		r.caption.Render("HEX ") + info.Hex,
		r.caption.Render("RGB ") + info.RGBString,
		r.caption.Render("HSL ") + info.HSLString,
	}
	return r.box.Render(strings.Join(lines, "\n"))
}

// Println writes s followed by a newline.
func (r *Renderer) Println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

// ContrastText picks a dark or light foreground for text drawn on hex.
// Invalid input falls back to light text.
func ContrastText(hex string) string {
	canonical, err := colormodel.Normalize(hex)
	if err != nil {
		return lightText
	}
	c, err := colorful.Hex(strings.ToLower(canonical))
	if err != nil {
		return lightText
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}
