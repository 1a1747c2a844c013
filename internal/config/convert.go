package config

import (
	"github.com/leonardotrapani/hyprhue/internal/clipboard"
)

func (c *Config) ToClipboardConfig() clipboard.Config {
	return clipboard.Config{
		Enabled: c.Clipboard.Enabled,
		Timeout: c.Clipboard.Timeout,
	}
}

// NotifierType resolves the notifier kind, treating disabled notifications
// as "none".
func (c *Config) NotifierType() string {
	if !c.Notifications.Enabled {
		return "none"
	}
	return c.Notifications.Type
}
