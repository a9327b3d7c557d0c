package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

// Config holds all math-toolkit configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal colors
	Display DisplayConfig `yaml:"display"`

	// Result rendering sizes
	UI UIConfig `yaml:"ui"`

	// Tool server
	MCP MCPConfig `yaml:"mcp"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig configures the terminal palette.
type DisplayConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
}

// UIConfig sizes the average chart and the shape figure, in terminal cells.
type UIConfig struct {
	ChartHeight int `yaml:"chart_height"`
	ChartWidth  int `yaml:"chart_width"`
	FigureWidth int `yaml:"figure_width"`
}

// MCPConfig configures `cards serve`.
type MCPConfig struct {
	Transport string `yaml:"transport"` // stdio, http
	Addr      string `yaml:"addr"`
}

// Theme and transport values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ValidThemes lists every accepted display.theme.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// ValidTransports lists every accepted mcp.transport.
var ValidTransports = []string{TransportStdio, TransportHTTP}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "math-toolkit",
		Version: "0.3.0",

		Display: DisplayConfig{
			Theme: ThemeAuto,
		},

		UI: UIConfig{
			ChartHeight: 10,
			ChartWidth:  48,
			FigureWidth: 24,
		},

		MCP: MCPConfig{
			Transport: TransportStdio,
			Addr:      ":8080",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultDir is the per-project state directory.
const DefaultDir = ".mathcards"

// DefaultPath returns the default path to .mathcards/config.yaml.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(DefaultDir, "config.yaml")
	}
	return filepath.Join(cwd, DefaultDir, "config.yaml")
}

// LogsDir returns the logs directory next to the config file at path.
func LogsDir(path string) string {
	return filepath.Join(filepath.Dir(path), "logs")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; env overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("MATHCARDS_THEME"); theme != "" {
		c.Display.Theme = strings.ToLower(theme)
	}
	if transport := os.Getenv("MATHCARDS_MCP_TRANSPORT"); transport != "" {
		c.MCP.Transport = strings.ToLower(transport)
	}
	if addr := os.Getenv("MATHCARDS_MCP_ADDR"); addr != "" {
		c.MCP.Addr = addr
	}
	if debug := os.Getenv("MATHCARDS_DEBUG"); debug != "" {
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
	if level := os.Getenv("MATHCARDS_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.Display.Theme) {
		return fmt.Errorf("invalid display theme: %s (valid: %v)", c.Display.Theme, ValidThemes)
	}
	if !contains(ValidTransports, c.MCP.Transport) {
		return fmt.Errorf("invalid mcp transport: %s (valid: %v)", c.MCP.Transport, ValidTransports)
	}
	if c.MCP.Transport == TransportHTTP && c.MCP.Addr == "" {
		return fmt.Errorf("mcp addr required for http transport")
	}
	if c.UI.ChartHeight <= 0 || c.UI.ChartWidth <= 0 || c.UI.FigureWidth <= 0 {
		return fmt.Errorf("ui sizes must be positive (chart %dx%d, figure %d)",
			c.UI.ChartWidth, c.UI.ChartHeight, c.UI.FigureWidth)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if name, ok := c.Logging.unknownCategory(); ok {
		return fmt.Errorf("invalid logging category: %s (valid: %v)", name, logging.AllCategories)
	}
	return nil
}
