package colormodel

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownFormat = errors.New("unknown color format")

// Display formats accepted by Format.
const (
	FormatHex = "hex"
	FormatRGB = "rgb"
	FormatHSL = "hsl"
)

// Formats lists the supported display formats in presentation order.
var Formats = []string{FormatHex, FormatRGB, FormatHSL}

// Info is a color in every representation the picker displays.
type Info struct {
	Hex       string
	RGB       RGB
	HSL       HSL
	RGBString string
	HSLString string
}

// Describe parses hex and fills in all display representations.
func Describe(hex string) (Info, error) {
	canonical, err := Normalize(hex)
	if err != nil {
		return Info{}, err
	}
	rgb, err := HexToRGB(canonical)
	if err != nil {
		return Info{}, err
	}
	hsl := RGBToHSL(rgb.R, rgb.G, rgb.B)

	return Info{
		Hex:       canonical,
		RGB:       rgb,
		HSL:       hsl,
		RGBString: rgb.String(),
		HSLString: hsl.String(),
	}, nil
}

// Format renders hex in the named display format.
func Format(hex, format string) (string, error) {
	info, err := Describe(hex)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatHex:
		return info.Hex, nil
	case FormatRGB:
		return info.RGBString, nil
	case FormatHSL:
		return info.HSLString, nil
	default:
		return "", fmt.Errorf("%w: %q (must be hex, rgb, or hsl)", ErrUnknownFormat, format)
	}
}

// IsValidFormat reports whether format is accepted by Format.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String rounds each component, e.g. "hsl(204, 70%, 53%)".
func (c HSL) String() string {
	h := int(math.Round(c.H))
	if h == 360 {
		h = 0
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(math.Round(c.S)), int(math.Round(c.L)))
}
