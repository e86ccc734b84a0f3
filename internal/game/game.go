// Package game implements the chess game state machine: turn order, move
// application and status classification.
//
// A Game is not safe for concurrent use. Hosts serving several games should
// confine each Game to one owner or guard it with a mutex (see package session).
package game

import (
	"io"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Game holds a board and the state derived from the moves applied to it.
// It is mutated only through ApplyMove and Move.
type Game struct {
	board      *chess.Board
	status     chess.GameState
	drawReason DrawReason
	history    []chess.Move
	positions  *hashing.PositionCounter

	cfg    *config.Config
	logger *slog.Logger
}

func newGame(board *chess.Board, opts []Option) *Game {
	g := &Game{
		board:     board,
		positions: hashing.NewPositionCounter(),
		cfg:       config.NewConfig(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.positions.Add(g.board)
	g.status, g.drawReason = g.classify()
	return g
}

// NewGame returns a game in the standard starting position.
func NewGame(opts ...Option) *Game {
	return newGame(chess.NewInitialBoard(), opts)
}

// NewGameFromFEN returns a game starting from the given position. The status
// is classified immediately, so a mated position starts as Checkmate.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, opts), nil
}

// ApplyMove validates and applies the move given as square text, for
// example ApplyMove("e7", "e8", "q"). Promotion is empty for a non-promoting
// move. On success it returns the new status. On failure the game is left
// unchanged and the error is a *errors.MoveError wrapping one of
// ErrGameAlreadyOver, ErrInvalidNotation, ErrNoPieceAtSource,
// ErrWrongSideToMove or ErrIllegalMove.
func (g *Game) ApplyMove(from, to, promotion string) (chess.GameState, error) {
	if g.status.IsTerminal() {
		return g.reject(from, to, promotion, errors.ErrGameAlreadyOver)
	}
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return g.reject(from, to, promotion, err)
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return g.reject(from, to, promotion, err)
	}
	kind, err := chess.ParsePromotion(promotion)
	if err != nil {
		return g.reject(from, to, promotion, err)
	}
	if err := g.apply(fromSq, toSq, kind); err != nil {
		return g.reject(from, to, promotion, err)
	}
	return g.status, nil
}

// Move is ApplyMove for already parsed squares. Promotion is chess.NoKind
// for a non-promoting move.
func (g *Game) Move(from, to chess.Square, promotion chess.PieceKind) (chess.GameState, error) {
	var promotionText string
	if promotion != chess.NoKind {
		promotionText = string(rune(promotion.Letter() + 'a' - 'A'))
	}
	if g.status.IsTerminal() {
		return g.reject(from.String(), to.String(), promotionText, errors.ErrGameAlreadyOver)
	}
	if err := g.apply(from, to, promotion); err != nil {
		return g.reject(from.String(), to.String(), promotionText, err)
	}
	return g.status, nil
}

func (g *Game) reject(from, to, promotion string, err error) (chess.GameState, error) {
	g.logger.Debug("move rejected",
		"from", from, "to", to, "promotion", promotion, "reason", err)
	return g.status, &errors.MoveError{
		Err:       err,
		From:      from,
		To:        to,
		Promotion: promotion,
		Ply:       len(g.history) + 1,
	}
}

// apply looks up the legal move and commits it. The move is made on a copy
// of the board so nothing changes when it fails.
func (g *Game) apply(from, to chess.Square, promotion chess.PieceKind) error {
	piece, ok := g.board.PieceAt(from)
	if !ok {
		return errors.ErrNoPieceAtSource
	}
	if piece.Colour != g.board.ToMove {
		return errors.ErrWrongSideToMove
	}
	m, ok := engine.FindMove(g.board, from, to, promotion)
	if !ok {
		return errors.ErrIllegalMove
	}

	next := g.board.Copy()
	engine.MakeMove(next, m)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := engine.KingSquare(next, colour); err != nil {
			return err
		}
	}

	g.board = next
	g.history = append(g.history, m)
	if next.HalfmoveClock == 0 {
		g.positions.Reset()
	}
	g.positions.Add(next)
	g.status, g.drawReason = g.classify()

	g.logger.Debug("move applied",
		"move", m.String(), "piece", m.Piece.String(), "status", g.status.String())
	return nil
}

// LegalDestinations returns the squares the piece on the given square can
// legally move to, sorted and without duplicates. The list is empty when the
// piece has no legal move, belongs to the side not to move, or the game is
// over. Errors are a *errors.MoveError wrapping ErrInvalidNotation or
// ErrNoPieceAtSource.
func (g *Game) LegalDestinations(square string) ([]string, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil, &errors.MoveError{Err: err, From: square}
	}
	dests, err := g.LegalSquares(sq)
	if err != nil {
		return nil, &errors.MoveError{Err: err, From: square}
	}
	texts := make([]string, len(dests))
	for i, d := range dests {
		texts[i] = d.String()
	}
	return texts, nil
}

// LegalSquares is LegalDestinations for a parsed square. The squares are in
// board index order. The error is ErrNoPieceAtSource for an empty square.
func (g *Game) LegalSquares(sq chess.Square) ([]chess.Square, error) {
	piece, ok := g.board.PieceAt(sq)
	if !ok {
		return nil, errors.ErrNoPieceAtSource
	}
	dests := []chess.Square{}
	if g.status.IsTerminal() || piece.Colour != g.board.ToMove {
		return dests, nil
	}
	for _, m := range engine.LegalMoves(g.board, sq) {
		dests = append(dests, m.To)
	}
	slices.SortFunc(dests, func(a, b chess.Square) int { return a.Index() - b.Index() })
	return slices.Compact(dests), nil
}

// LegalMoves returns every legal move of the side to move, or nil when the
// game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.status.IsTerminal() {
		return nil
	}
	return engine.AllLegalMoves(g.board, g.board.ToMove)
}

// Status returns the current game state.
func (g *Game) Status() chess.GameState {
	return g.status
}

// DrawReason returns the automatic draw that ended the game, or NoDraw.
func (g *Game) DrawReason() DrawReason {
	return g.drawReason
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.board.ToMove)
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// History returns a copy of the moves applied so far.
func (g *Game) History() []chess.Move {
	return slices.Clone(g.history)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Render returns a text dump of the board using the configured glyphs.
func (g *Game) Render() string {
	return g.board.Render(g.cfg.Render.Options())
}
