package config

import (
	"fmt"

	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	"github.com/leonardotrapani/hyprhue/internal/render"
)

func (c *Config) Validate() error {
	if _, err := colormodel.Normalize(c.Color.Default); err != nil {
		return fmt.Errorf("invalid color.default: %w", err)
	}

	validOutput := map[string]bool{"swatch": true, "hex": true, "rgb": true, "hsl": true}
	if !validOutput[c.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be swatch, hex, rgb, or hsl)", c.Output.Format)
	}
	if !render.IsValidProfile(c.Output.ColorProfile) {
		return fmt.Errorf("invalid output.color_profile: %s (must be auto, truecolor, ansi256, ansi, or ascii)", c.Output.ColorProfile)
	}

	if c.Clipboard.Timeout <= 0 {
		return fmt.Errorf("invalid clipboard.timeout: %v", c.Clipboard.Timeout)
	}
	if !colormodel.IsValidFormat(c.Clipboard.Format) {
		return fmt.Errorf("invalid clipboard.format: %s (must be hex, rgb, or hsl)", c.Clipboard.Format)
	}

	validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
	if !validTypes[c.Notifications.Type] {
		return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
	}

	return nil
}
