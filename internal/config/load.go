package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrConfigExists = errors.New("config already exists")

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	hyprhueDir := filepath.Join(configDir, "hyprhue")
	if err := os.MkdirAll(hyprhueDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(hyprhueDir, "config.toml"), nil
}

// Load reads the user's config file, falling back to defaults when none exists.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at configPath. Keys missing from the file keep
// their default values.
func LoadFrom(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Config: no config file at %s, using defaults", configPath)
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Printf("Config: loading configuration from %s", configPath)
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("Config: ignoring unknown key %s", key)
	}

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// Save writes cfg to the user's config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

// SaveTo encodes cfg as TOML and replaces the file at configPath.
func SaveTo(configPath string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString("# Hyprhue Configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp := configPath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, configPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	log.Printf("Config: saved configuration to %s", configPath)
	return nil
}

// SaveDefaultConfig writes the commented default config to configPath. It
// refuses to overwrite an existing file unless force is set.
func SaveDefaultConfig(configPath string, force bool) error {
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}
	return nil
}

const defaultConfigContent = `# Hyprhue Configuration
# Edit values as needed - "hyprhue palette --watch" picks up changes immediately.

# Base color used when a command is run without a color argument
[color]
  default = "#3498DB"          # Any 6-digit hex color, with or without "#"

# Terminal Output
[output]
  format = "swatch"            # How colors are printed ("swatch", "hex", "rgb", "hsl")
  color_profile = "auto"       # Terminal color support ("auto", "truecolor", "ansi256", "ansi", "ascii")

# Clipboard
[clipboard]
  enabled = true               # Allow "hyprhue copy" and copying from the picker
  timeout = "3s"               # Timeout for clipboard operations
  format = "hex"               # Default copy format ("hex", "rgb", "hsl")

# Notifications shown after copying
[notifications]
  enabled = true               # Enable copy notifications
  type = "desktop"             # Notification type ("desktop", "log", "none")
                               # "log" is only visible with --verbose
`
