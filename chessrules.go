// Package chessrules is a chess rules engine. It validates and applies moves,
// lists legal destinations for move hinting and classifies positions as in
// progress, check, checkmate, stalemate or drawn.
//
// A Game is owned by a single caller. Hosts running several games at once
// can use a Registry, which serialises access to each game.
package chessrules

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

type (
	Game       = game.Game
	GameOption = game.Option
	GameState  = chess.GameState
	Move       = chess.Move
	Registry   = session.Registry
	Config     = config.Config
	MoveError  = errors.MoveError
)

const (
	InProgress = chess.InProgress
	Check      = chess.Check
	Checkmate  = chess.Checkmate
	Stalemate  = chess.Stalemate
	GameOver   = chess.GameOver
)

// Errors returned by ApplyMove and LegalDestinations, wrapped in a *MoveError.
var (
	ErrInvalidNotation    = errors.ErrInvalidNotation
	ErrNoPieceAtSource    = errors.ErrNoPieceAtSource
	ErrWrongSideToMove    = errors.ErrWrongSideToMove
	ErrIllegalMove        = errors.ErrIllegalMove
	ErrGameAlreadyOver    = errors.ErrGameAlreadyOver
	ErrInvariantViolation = errors.ErrInvariantViolation
	ErrInvalidFEN         = errors.ErrInvalidFEN
)

var (
	WithConfig = game.WithConfig
	WithLogger = game.WithLogger
)

// NewGame returns a game in the standard starting position.
func NewGame(opts ...GameOption) *Game {
	return game.NewGame(opts...)
}

// NewGameFromFEN returns a game starting from a FEN position.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	return game.NewGameFromFEN(fen, opts...)
}

// ApplyMove moves the piece on from to to, e.g. ApplyMove(g, "e7", "e8", "q").
// The promotion text is empty for moves that do not promote. A rejected move
// leaves the game unchanged.
func ApplyMove(g *Game, from, to, promotion string) (GameState, error) {
	return g.ApplyMove(from, to, promotion)
}

// LegalDestinations returns the squares the piece on square may legally move
// to, in a1..h8 order.
func LegalDestinations(g *Game, square string) ([]string, error) {
	return g.LegalDestinations(square)
}

// Status returns the classification of the current position.
func Status(g *Game) GameState {
	return g.Status()
}

// Render returns a text diagram of the board, rank 8 at the top.
func Render(g *Game) string {
	return g.Render()
}

// LoadConfig reads the user configuration file, falling back to defaults.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// NewRegistry returns an empty registry whose games share cfg. A nil cfg
// selects the defaults.
func NewRegistry(cfg *Config) *Registry {
	return session.NewRegistry(session.WithConfig(cfg))
}
