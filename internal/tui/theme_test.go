package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/hyprhue/internal/config"
)

func TestThemeFor(t *testing.T) {
	tests := []struct {
		name          string
		hex           string
		wantAccent    lipgloss.Color
		wantSelection lipgloss.Color
	}{
		{name: "mid lightness keeps the base", hex: "#3498db", wantAccent: "#3498DB", wantSelection: "#DB7734"},
		{name: "pure red", hex: "ff0000", wantAccent: "#FF0000", wantSelection: "#00FFFF"},
		{name: "black is lifted", hex: "#000000", wantAccent: "#595959", wantSelection: "#595959"},
		{name: "white is dimmed", hex: "#FFFFFF", wantAccent: "#B3B3B3", wantSelection: "#B3B3B3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThemeFor(tt.hex)
			if got.Accent != tt.wantAccent {
				t.Errorf("Accent = %s, want %s", got.Accent, tt.wantAccent)
			}
			if got.Selection != tt.wantSelection {
				t.Errorf("Selection = %s, want %s", got.Selection, tt.wantSelection)
			}
		})
	}
}

func TestThemeFor_InvalidFallsBackToDefault(t *testing.T) {
	if got, want := ThemeFor("not a color"), ThemeFor(config.DefaultColor); got != want {
		t.Errorf("ThemeFor(invalid) = %+v, want %+v", got, want)
	}
}

func TestStylesFor(t *testing.T) {
	st := StylesFor("#9B59B6")
	if st.Theme != ThemeFor("#9B59B6") {
		t.Errorf("StylesFor theme = %+v", st.Theme)
	}
	if got := st.Value.GetForeground(); got != st.Theme.Selection {
		t.Errorf("Value foreground = %v, want selection %s", got, st.Theme.Selection)
	}
	if got := st.Header.GetForeground(); got != st.Theme.Accent {
		t.Errorf("Header foreground = %v, want accent %s", got, st.Theme.Accent)
	}
}

func TestLogo(t *testing.T) {
	logo := StylesFor("#3498DB").Logo()
	lines := strings.Split(logo, "\n")
	if len(lines) != 6 {
		t.Fatalf("logo has %d lines, want 6", len(lines))
	}
	if !strings.Contains(logo, "|___/|_|") {
		t.Errorf("logo missing art:\n%s", logo)
	}
}
