package colormodel

// HarmonyRole names the position of a color in a generated palette.
type HarmonyRole string

const (
	RoleBase           HarmonyRole = "base"
	RoleComplement     HarmonyRole = "complement"
	RoleTriadic1       HarmonyRole = "triadic-1"
	RoleTriadic2       HarmonyRole = "triadic-2"
	RoleAnalogousPlus  HarmonyRole = "analogous+30"
	RoleAnalogousMinus HarmonyRole = "analogous-30"
)

// harmonyOffsets lists hue offsets in palette order.
var harmonyOffsets = []struct {
	role   HarmonyRole
	offset float64
}{
	{RoleBase, 0},
	{RoleComplement, 180},
	{RoleTriadic1, 120},
	{RoleTriadic2, 240},
	{RoleAnalogousPlus, 30},
	{RoleAnalogousMinus, -30},
}

// Swatch is a single palette entry.
type Swatch struct {
	Role HarmonyRole
	Hex  string
}

// Palette derives the harmonious palette of base. The first swatch is the
// base itself in canonical form; the rest share its saturation and lightness.
func Palette(base string) ([]Swatch, error) {
	canonical, err := Normalize(base)
	if err != nil {
		return nil, err
	}
	hsl, err := ToHSL(canonical)
	if err != nil {
		return nil, err
	}

	swatches := make([]Swatch, 0, len(harmonyOffsets))
	for _, ho := range harmonyOffsets {
		hex := canonical
		if ho.offset != 0 {
			hex = HSLToHex(normalizeHue(hsl.H+ho.offset), hsl.S, hsl.L)
		}
		swatches = append(swatches, Swatch{Role: ho.role, Hex: hex})
	}
	return swatches, nil
}

// GenerateHarmoniousColors returns the six palette colors of base in order:
// base, complement, two triadic, then analogous at +30 and -30 degrees.
func GenerateHarmoniousColors(base string) ([]string, error) {
	swatches, err := Palette(base)
	if err != nil {
		return nil, err
	}
	colors := make([]string, len(swatches))
	for i, s := range swatches {
		colors[i] = s.Hex
	}
	return colors, nil
}
