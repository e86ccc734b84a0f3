package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of the piece on sq that do not
// leave its own king in check. This single rule covers moving into check,
// moving a pinned piece and castling through check.
func LegalMoves(board *chess.Board, sq chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(board, sq) {
		if tryMove(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns the legal moves of every piece of the given colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, sq := range board.Occupied(colour) {
		moves = append(moves, LegalMoves(board, sq)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.Occupied(colour) {
		for _, m := range PseudoLegalMoves(board, sq) {
			if tryMove(board, m) {
				return true
			}
		}
	}
	return false
}

// FindMove returns the legal move of the piece on from that lands on to with
// the given promotion kind (chess.NoKind for none).
func FindMove(board *chess.Board, from, to chess.Square, promotion chess.PieceKind) (chess.Move, bool) {
	for _, m := range LegalMoves(board, from) {
		if m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, m chess.Move) bool {
	testBoard := *board
	MakeMove(&testBoard, m)
	return !IsInCheck(&testBoard, m.Piece.Colour)
}
