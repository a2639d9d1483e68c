package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	InitialColor string     `toml:"initial_color"` // color of the seed counter
	Palette      []string   `toml:"palette"`       // colors cycled when creating or recoloring
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowNumbers    bool `toml:"show_numbers"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service rooted in the user's
// config directory.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	deckDir := filepath.Join(configDir, "counterdeck")
	os.MkdirAll(deckDir, 0755)

	return &configService{
		filePath: filepath.Join(deckDir, "counterdeck.toml"),
	}
}

// Load loads the configuration from the default location
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file left out
	if cfg.InitialColor == "" {
		cfg.InitialColor = "black"
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultPalette returns the built-in color cycle for new counters.
func DefaultPalette() []string {
	return []string{"black", "red", "blue", "green", "yellow", "magenta", "cyan"}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		InitialColor: "black",
		Palette:      DefaultPalette(),
		UISettings: UISettings{
			ShowNumbers:    true,
			AutosaveOnExit: true,
		},
	}
}

// NextColor returns the palette color after the given one, wrapping at the
// end. Unknown colors start the cycle over.
func (c *Config) NextColor(current string) string {
	if len(c.Palette) == 0 {
		return current
	}
	for i, color := range c.Palette {
		if color == current {
			return c.Palette[(i+1)%len(c.Palette)]
		}
	}
	return c.Palette[0]
}

// ColorFor returns the palette color for the nth created counter.
func (c *Config) ColorFor(n int) string {
	if len(c.Palette) == 0 {
		return "black"
	}
	return c.Palette[n%len(c.Palette)]
}
