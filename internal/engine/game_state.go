package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Classify returns the state of the position for the side to move:
// Checkmate or Stalemate when it has no legal move, otherwise Check or InProgress.
// Draw rules are not considered here.
func Classify(board *chess.Board) chess.GameState {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	switch {
	case HasLegalMoves(board, colour):
		if inCheck {
			return chess.Check
		}
		return chess.InProgress
	case inCheck:
		return chess.Checkmate
	default:
		return chess.Stalemate
	}
}
