package config

import "time"

// DefaultColor is the picker's initial color.
const DefaultColor = "#3498DB"

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorConfig{
			Default: DefaultColor,
		},
		Output: OutputConfig{
			Format:       "swatch",
			ColorProfile: "auto",
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
			Timeout: 3 * time.Second,
			Format:  "hex",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Type:    "desktop",
		},
	}
}
