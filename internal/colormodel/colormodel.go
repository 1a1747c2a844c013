package colormodel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is a color with 8-bit channels in [0,255].
type RGB struct {
	R, G, B int
}

// HSL is a color in the cylindrical model.
// H is in [0,360), S and L are percentages in [0,100].
type HSL struct {
	H, S, L float64
}

// HexToRGB parses a 6-digit hex color. The leading '#' is optional and digits
// are case-insensitive.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHSL converts 8-bit channels to HSL. Achromatic colors get hue 0 and
// saturation 0.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(clampByte(r)) / 255
	gf := float64(clampByte(g)) / 255
	bf := float64(clampByte(b)) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}

	return HSL{H: normalizeHue(h * 60), S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to a canonical "#RRGGBB" string. Hue is taken mod
// 360; saturation and lightness are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	h = normalizeHue(h)
	s = clampPercent(s) / 100
	l = clampPercent(l) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBToHex(RGB{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
	})
}

// RGBToHex formats the triple as "#RRGGBB". Out-of-range channels are clamped.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// Normalize returns the canonical "#RRGGBB" form of hex.
func Normalize(hex string) (string, error) {
	if !hexPattern.MatchString(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#")), nil
}

// ToHSL parses hex and returns its HSL representation.
func ToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c.R, c.G, c.B), nil
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative can land exactly on 360 after the shift
	if h >= 360 {
		h = 0
	}
	return h
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func toByte(v float64) int {
	return clampByte(int(math.Round(v * 255)))
}
