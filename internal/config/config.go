package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Paths    Paths                   `toml:"paths" yaml:"paths"`
	Layout   Layout                  `toml:"layout" yaml:"layout"`
	Defaults Defaults                `toml:"defaults" yaml:"defaults"`
	Suits    map[string]SuitOverride `toml:"suits" yaml:"suits"`
}

// Paths locates templates, assets and generated sheets. Relative paths are
// resolved against the working directory.
type Paths struct {
	Templates string `toml:"templates" yaml:"templates"`
	Assets    string `toml:"assets" yaml:"assets"`
	Output    string `toml:"output" yaml:"output"`
	Archive   string `toml:"archive" yaml:"archive"`
	Font      string `toml:"font" yaml:"font"` // empty selects the embedded Go font
}

// Layout is the unscaled card geometry.
type Layout struct {
	Columns    int    `toml:"columns" yaml:"columns"`
	Rows       int    `toml:"rows" yaml:"rows"`
	CardWidth  int    `toml:"card_width" yaml:"card_width"`
	CardHeight int    `toml:"card_height" yaml:"card_height"`
	Spacing    int    `toml:"spacing" yaml:"spacing"`
	TileSize   int    `toml:"tile_size" yaml:"tile_size"`
	Style      string `toml:"style" yaml:"style"`
}

// Defaults are offered when a generation parameter is not given on the
// command line.
type Defaults struct {
	Edge  int `toml:"edge" yaml:"edge"`
	Top   int `toml:"top" yaml:"top"`
	Base  int `toml:"base" yaml:"base"`
	Scale int `toml:"scale" yaml:"scale"`
}

// SuitOverride replaces a suit's colour, given as "#rrggbb".
type SuitOverride struct {
	Colour string `toml:"colour" yaml:"colour"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: Paths{
			Templates: filepath.Join("dev", "art"),
			Assets:    filepath.Join("public", "assets", "images"),
			Output:    filepath.Join("public", "assets", "images"),
			Archive:   filepath.Join("dev", "art", "archive"),
		},
		Layout: Layout{
			Columns:    3,
			Rows:       19,
			CardWidth:  56,
			CardHeight: 78,
			Spacing:    1,
			TileSize:   16,
			Style:      "art",
		},
		Defaults: Defaults{Edge: 1, Top: 1, Base: 1, Scale: 2},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory rendered previews are cached in
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "spritedeck")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "spritedeck", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return LoadFile(configPath)
}

// LoadFile loads a TOML or YAML config file. Settings missing from the file
// keep their default values.
func LoadFile(path string) (*Config, error) {
	config := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// createDefaultConfig writes the default config to configPath
func createDefaultConfig(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := config.Save(configPath); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config as YAML for .yaml and .yml paths and as TOML otherwise.
func (c *Config) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks the layout and suit overrides.
func (c *Config) Validate() error {
	l := c.Layout
	if l.Columns <= 0 || l.Rows <= 0 {
		return fmt.Errorf("layout needs positive columns and rows, got %dx%d", l.Columns, l.Rows)
	}
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return fmt.Errorf("layout needs a positive card size, got %dx%d", l.CardWidth, l.CardHeight)
	}
	if l.Spacing < 0 {
		return fmt.Errorf("layout spacing must not be negative, got %d", l.Spacing)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("layout tile_size must be positive, got %d", l.TileSize)
	}
	if l.Columns*l.Rows <= 56 {
		return fmt.Errorf("layout holds %d cards, need 57 for faces and backs", l.Columns*l.Rows)
	}
	if l.Style != "art" && l.Style != "placeholder" {
		return fmt.Errorf("layout style must be art or placeholder, got %q", l.Style)
	}
	_, err := c.SuitColours()
	return err
}

// SuitColours parses the suit colour overrides, keyed by lower-case suit name.
func (c *Config) SuitColours() (map[string]color.RGBA, error) {
	colours := make(map[string]color.RGBA, len(c.Suits))
	for name, s := range c.Suits {
		if s.Colour == "" {
			continue
		}
		parsed, err := colorful.Hex(s.Colour)
		if err != nil {
			return nil, fmt.Errorf("suit %s: %w", name, err)
		}
		r, g, b := parsed.RGB255()
		colours[strings.ToLower(name)] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colours, nil
}
