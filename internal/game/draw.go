package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DrawReason identifies a draw rule.
type DrawReason int

// FiftyMoveRule and ThreefoldRepetition can only be claimed; the others end
// the game automatically when enabled in the configuration.
const (
	NoDraw DrawReason = iota
	InsufficientMaterial
	SeventyFiveMoveRule
	FivefoldRepetition
	FiftyMoveRule
	ThreefoldRepetition
)

// Repetition thresholds.
const (
	ClaimRepetitions     = 3
	AutomaticRepetitions = 5
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	names := []string{
		"None",
		"InsufficientMaterial",
		"SeventyFiveMoveRule",
		"FivefoldRepetition",
		"FiftyMoveRule",
		"ThreefoldRepetition",
	}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// IsAutomatic reports whether the rule ends the game without a claim.
func (r DrawReason) IsAutomatic() bool {
	return r == InsufficientMaterial || r == SeventyFiveMoveRule || r == FivefoldRepetition
}

// classify computes the status of the current position. Checkmate and
// stalemate take precedence over automatic draws.
func (g *Game) classify() (chess.GameState, DrawReason) {
	status := engine.Classify(g.board)
	if status.IsTerminal() {
		return status, NoDraw
	}
	if reason := g.automaticDraw(); reason != NoDraw {
		return chess.GameOver, reason
	}
	return status, NoDraw
}

func (g *Game) automaticDraw() DrawReason {
	rules := g.cfg.Draws
	switch {
	case rules.InsufficientMaterial && engine.HasInsufficientMaterial(g.board):
		return InsufficientMaterial
	case rules.FivefoldRepetition && g.positions.Count(g.board) >= AutomaticRepetitions:
		return FivefoldRepetition
	case rules.SeventyFiveMoveRule && engine.IsSeventyFiveMoveDraw(g.board):
		return SeventyFiveMoveRule
	}
	return NoDraw
}

// EligibleDraws returns the draws the side to move could claim in the current
// position. It never changes the game; a finished game has none.
func (g *Game) EligibleDraws() []DrawReason {
	if g.status.IsTerminal() {
		return nil
	}
	var reasons []DrawReason
	if engine.IsFiftyMoveDraw(g.board) {
		reasons = append(reasons, FiftyMoveRule)
	}
	if g.positions.Count(g.board) >= ClaimRepetitions {
		reasons = append(reasons, ThreefoldRepetition)
	}
	return reasons
}
