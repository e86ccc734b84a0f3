package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RenderConfig holds settings for the text board dump.
type RenderConfig struct {
	// Unicode draws figurines instead of FEN letters.
	Unicode bool `json:"unicode"`

	// Empty is the glyph for an unoccupied square. Must be one printable rune.
	Empty string `json:"empty"`
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Empty: ".",
	}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if utf8.RuneCountInString(r.Empty) != 1 {
		return fmt.Errorf("empty square glyph %q must be a single character: %w",
			r.Empty, errors.ErrInvalidConfig)
	}
	c, _ := utf8.DecodeRuneInString(r.Empty)
	if c < 32 || (c >= 127 && c <= 159) {
		return fmt.Errorf("empty square glyph %q is a control character: %w",
			r.Empty, errors.ErrInvalidConfig)
	}
	return nil
}

// Options converts the configuration to board render options.
func (r *RenderConfig) Options() chess.RenderOptions {
	opts := chess.DefaultRenderOptions
	opts.Unicode = r.Unicode
	if c, size := utf8.DecodeRuneInString(r.Empty); size > 0 && c != utf8.RuneError {
		opts.Empty = c
	}
	return opts
}
