package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	"github.com/muesli/termenv"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		want    termenv.Profile
		wantErr bool
	}{
		{name: "truecolor", want: termenv.TrueColor},
		{name: "ansi256", want: termenv.ANSI256},
		{name: "ansi", want: termenv.ANSI},
		{name: "ascii", want: termenv.Ascii},
		{name: "sixel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.name, &bytes.Buffer{})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownProfile) {
					t.Fatalf("expected ErrUnknownProfile, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseProfile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsValidProfile(t *testing.T) {
	for _, p := range []string{"auto", "truecolor", "ansi256", "ansi", "ascii"} {
		if !IsValidProfile(p) {
			t.Errorf("IsValidProfile(%q) = false", p)
		}
	}
	if IsValidProfile("") {
		t.Error("empty profile should not be valid in config")
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", darkText},
		{"#FFFF00", darkText},
		{"#000000", lightText},
		{"#0000FF", lightText},
		{"not-a-color", lightText},
	}
	for _, tt := range tests {
		if got := ContrastText(tt.hex); got != tt.want {
			t.Errorf("ContrastText(%q) = %s, want %s", tt.hex, got, tt.want)
		}
	}
}

func TestPalette_ASCII(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, ProfileASCII)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	swatches, err := colormodel.Palette("#ff0000")
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	out := r.Palette(swatches)

	if strings.Contains(out, "\x1b[") {
		t.Errorf("ascii profile should not emit escape codes: %q", out)
	}
	for _, s := range swatches {
		if !strings.Contains(out, s.Hex) {
			t.Errorf("output missing hex %s", s.Hex)
		}
		if !strings.Contains(out, string(s.Role)) {
			t.Errorf("output missing role %s", s.Role)
		}
	}
}

func TestSwatch_TrueColor(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, ProfileTrueColor)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := r.Swatch("#3498DB", "label", 10)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("truecolor swatch should be styled: %q", out)
	}
	if !strings.Contains(out, "label") {
		t.Errorf("swatch should contain its label: %q", out)
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, ProfileASCII)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	info, err := colormodel.Describe("#3498db")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	if err := r.Println(r.Info(info)); err != nil {
		t.Fatalf("Println: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"#3498DB", "rgb(52, 152, 219)", "hsl(204, 70%, 53%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestNew_UnknownProfile(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "vga"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}
