package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked by the opponent.
// A board without exactly one king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, err := KingSquare(board, colour)
	if err != nil {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// KingSquare locates the unique king of the given colour.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	kings := board.Find(chess.Piece{Kind: chess.King, Colour: colour})
	if len(kings) != 1 {
		return chess.Square{}, fmt.Errorf("%v has %d kings: %w", colour, len(kings), errors.ErrInvariantViolation)
	}
	return kings[0], nil
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It agrees with AttackedSquares(board, byColour).Has(sq) but looks outward
// from the target square instead of building the whole set.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one rank behind the target
	// from its own point of view.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	back := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, back); ok && pieceIs(board, from, pawn) {
			return true
		}
	}

	// Check knight and king attacks
	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	for _, o := range knightOffsets {
		if from, ok := sq.Offset(o.df, o.dr); ok && pieceIs(board, from, knight) {
			return true
		}
	}
	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for _, o := range kingOffsets {
		if from, ok := sq.Offset(o.df, o.dr); ok && pieceIs(board, from, king) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	for _, group := range []struct {
		dirs   []offset
		slider chess.Piece
	}{
		{bishopDirections, chess.Piece{Kind: chess.Bishop, Colour: byColour}},
		{rookDirections, chess.Piece{Kind: chess.Rook, Colour: byColour}},
	} {
		for _, d := range group.dirs {
			squares := ray(board, sq, d)
			if len(squares) == 0 {
				continue
			}
			last := squares[len(squares)-1]
			if pieceIs(board, last, group.slider) || pieceIs(board, last, queen) {
				return true
			}
		}
	}

	return false
}

// pieceIs reports whether exactly piece stands on sq.
func pieceIs(board *chess.Board, sq chess.Square, piece chess.Piece) bool {
	p, ok := board.PieceAt(sq)
	return ok && p == piece
}
