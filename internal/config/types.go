package config

import "time"

type Config struct {
	Color         ColorConfig         `toml:"color"`
	Output        OutputConfig        `toml:"output"`
	Clipboard     ClipboardConfig     `toml:"clipboard"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ColorConfig holds the base color used when a command gets no argument
type ColorConfig struct {
	Default string `toml:"default"`
}

type OutputConfig struct {
	Format       string `toml:"format"`        // "swatch", "hex", "rgb", "hsl"
	ColorProfile string `toml:"color_profile"` // "auto", "truecolor", "ansi256", "ansi", "ascii"
}

type ClipboardConfig struct {
	Enabled bool          `toml:"enabled"`
	Timeout time.Duration `toml:"timeout"`
	Format  string        `toml:"format"` // "hex", "rgb", "hsl"
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}
