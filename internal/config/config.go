// Package config provides rule and render configuration for chess games.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FileName is the configuration file looked up under the XDG config directories.
const FileName = "chess-rules/config.json"

// Config holds all engine configuration.
type Config struct {
	Draws  DrawConfig   `json:"draws"`
	Render RenderConfig `json:"render"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Draws:  *NewDrawConfig(),
		Render: *NewRenderConfig(),
	}
}

// Load reads the configuration file from the XDG config search path.
// Defaults are returned when no file exists.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(FileName)
	if err != nil {
		return NewConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path. Fields absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return c.Render.Validate()
}
