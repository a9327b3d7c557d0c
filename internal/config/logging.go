package config

import (
	"slices"

	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, text
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// ValidLogFormats lists every accepted logging.format.
var ValidLogFormats = []string{"text", "json"}

// unknownCategory returns the first categories key, in sorted order, that
// names no logging category.
func (c *LoggingConfig) unknownCategory() (string, bool) {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if !slices.Contains(logging.AllCategories, logging.Category(name)) {
			return name, true
		}
	}
	return "", false
}

// Options converts the config into logging.Options.
func (c *LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		JSONFormat: c.Format == "json",
		Categories: c.Categories,
	}
}
