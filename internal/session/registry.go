// Package session hosts many concurrent games keyed by session id.
//
// Each game is guarded by its own mutex so moves in different sessions never
// contend; the id map is guarded separately by a read/write mutex.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

type entry struct {
	mu   sync.Mutex
	game *game.Game
}

// Registry maps session ids to games.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry

	cfg    *config.Config
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithConfig sets the configuration passed to every created game.
func WithConfig(cfg *config.Config) Option {
	return func(r *Registry) {
		if cfg != nil {
			r.cfg = cfg
		}
	}
}

// WithLogger sets the logger used by the registry and its games.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		cfg:     config.NewConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) gameOptions(id string) []game.Option {
	return []game.Option{
		game.WithConfig(r.cfg),
		game.WithLogger(r.logger.With("session", id)),
	}
}

// Create starts a new game in the standard position under id.
func (r *Registry) Create(id string) error {
	return r.add(id, game.NewGame(r.gameOptions(id)...))
}

// CreateFromFEN starts a new game from a position under id.
func (r *Registry) CreateFromFEN(id, fen string) error {
	g, err := game.NewGameFromFEN(fen, r.gameOptions(id)...)
	if err != nil {
		return errors.Wrapf(err, "session %q", id)
	}
	return r.add(id, g)
}

func (r *Registry) add(id string, g *game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("session %q: %w", id, errors.ErrSessionExists)
	}
	r.entries[id] = &entry{game: g}
	r.logger.Info("session created", "session", id, "status", g.Status().String())
	return nil
}

// Remove deletes the session. Removing an unknown id is an error.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("session %q: %w", id, errors.ErrUnknownSession)
	}
	delete(r.entries, id)
	r.logger.Info("session removed", "session", id)
	return nil
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IDs returns the session ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrUnknownSession)
	}
	return e, nil
}

// Do runs fn with exclusive access to the session's game. The game must not
// be retained after fn returns.
func (r *Registry) Do(id string, fn func(g *game.Game) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game)
}

// ApplyMove applies a move to the session's game.
func (r *Registry) ApplyMove(id, from, to, promotion string) (chess.GameState, error) {
	var status chess.GameState
	err := r.Do(id, func(g *game.Game) error {
		var err error
		status, err = g.ApplyMove(from, to, promotion)
		return err
	})
	return status, err
}

// LegalDestinations returns the legal destinations of the piece on square.
func (r *Registry) LegalDestinations(id, square string) ([]string, error) {
	var dests []string
	err := r.Do(id, func(g *game.Game) error {
		var err error
		dests, err = g.LegalDestinations(square)
		return err
	})
	return dests, err
}

// Status returns the session's game state.
func (r *Registry) Status(id string) (chess.GameState, error) {
	var status chess.GameState
	err := r.Do(id, func(g *game.Game) error {
		status = g.Status()
		return nil
	})
	return status, err
}

// Render returns the text dump of the session's board.
func (r *Registry) Render(id string) (string, error) {
	var text string
	err := r.Do(id, func(g *game.Game) error {
		text = g.Render()
		return nil
	})
	return text, err
}
