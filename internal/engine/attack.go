package engine

import (
	"math/bits"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SquareSet is a set of board squares, one bit per square index.
type SquareSet uint64

// With returns the set with sq added.
func (s SquareSet) With(sq chess.Square) SquareSet {
	return s | 1<<uint(sq.Index())
}

// Has returns true if sq is in the set.
func (s SquareSet) Has(sq chess.Square) bool {
	return s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members of the set in index order.
func (s SquareSet) Squares() []chess.Square {
	squares := make([]chess.Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		sq, _ := chess.SquareAt(bits.TrailingZeros64(rest))
		squares = append(squares, sq)
	}
	return squares
}

// AttackedSquares returns every square attacked by a piece of the given colour,
// ignoring whether making such a capture would expose the attacker's own king.
// A square occupied by the attacker's own piece is still attacked.
func AttackedSquares(board *chess.Board, byColour chess.Colour) SquareSet {
	var set SquareSet
	for _, sq := range board.Occupied(byColour) {
		piece, _ := board.PieceAt(sq)
		set |= attacksFrom(board, sq, piece)
	}
	return set
}

// attacksFrom returns the squares the piece on sq attacks.
func attacksFrom(board *chess.Board, sq chess.Square, piece chess.Piece) SquareSet {
	var set SquareSet
	switch piece.Kind {
	case chess.Pawn:
		// Pawns attack diagonally forward whether or not the square is occupied.
		dir := chess.ColourOffset(piece.Colour)
		for _, df := range []int{-1, 1} {
			if to, ok := sq.Offset(df, dir); ok {
				set = set.With(to)
			}
		}
	case chess.Knight:
		set = stepTargets(sq, knightOffsets)
	case chess.King:
		set = stepTargets(sq, kingOffsets)
	default:
		for _, d := range slideDirections(piece.Kind) {
			for _, to := range ray(board, sq, d) {
				set = set.With(to)
			}
		}
	}
	return set
}

// stepTargets returns the on-board squares reached by each offset from sq.
func stepTargets(sq chess.Square, offsets []offset) SquareSet {
	var set SquareSet
	for _, o := range offsets {
		if to, ok := sq.Offset(o.df, o.dr); ok {
			set = set.With(to)
		}
	}
	return set
}
