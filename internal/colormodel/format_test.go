package colormodel

import (
	"errors"
	"testing"
)

func TestDescribe(t *testing.T) {
	info, err := Describe("#3498db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Hex != "#3498DB" {
		t.Errorf("Hex = %s, want #3498DB", info.Hex)
	}
	if info.RGB != (RGB{52, 152, 219}) {
		t.Errorf("RGB = %+v", info.RGB)
	}
	if info.RGBString != "rgb(52, 152, 219)" {
		t.Errorf("RGBString = %q", info.RGBString)
	}
	if info.HSLString != "hsl(204, 70%, 53%)" {
		t.Errorf("HSLString = %q", info.HSLString)
	}
}

func TestDescribe_Invalid(t *testing.T) {
	if _, err := Describe("blue"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Describe(blue) error = %v, want ErrInvalidFormat", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr error
	}{
		{format: FormatHex, want: "#FF8000"},
		{format: FormatRGB, want: "rgb(255, 128, 0)"},
		{format: FormatHSL, want: "hsl(30, 100%, 50%)"},
		{format: "cmyk", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Format("ff8000", tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Format error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestHSLString_WrapsRoundedHue(t *testing.T) {
	if got := (HSL{H: 359.7, S: 50, L: 50}).String(); got != "hsl(0, 50%, 50%)" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range Formats {
		if !IsValidFormat(f) {
			t.Errorf("IsValidFormat(%q) = false", f)
		}
	}
	if IsValidFormat("swatch") {
		t.Error("swatch is a render mode, not a value format")
	}
}
