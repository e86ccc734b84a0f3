package game

import (
	"log/slog"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the rule and render configuration. A nil config is ignored.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithLogger sets the logger for move records. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}
