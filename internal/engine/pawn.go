package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pawn pushes, double pushes, captures and en passant.
// Moves onto the last rank are expanded into one move per promotion kind.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(pawn.Colour)

	// Forward move
	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: pawn})

		// Double push from starting rank
		if from.Rank() == pawnStartRank(pawn.Colour) {
			if two, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Piece: pawn, Flags: chess.FlagDoublePush})
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if target, occupied := board.PieceAt(to); occupied {
			if target.Colour != pawn.Colour {
				moves = appendPawnMove(moves, chess.Move{
					From: from, To: to, Piece: pawn,
					Captured: target, Flags: chess.FlagCapture,
				})
			}
			continue
		}
		if victim, ok := enPassantVictim(board, from, to, pawn); ok {
			moves = append(moves, chess.Move{
				From: from, To: to, Piece: pawn,
				Captured: victim, Flags: chess.FlagCapture | chess.FlagEnPassant,
			})
		}
	}
	return moves
}

// appendPawnMove appends m, or its four promotion variants if it reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank() != chess.HomeRank(m.Piece.Colour.Opposite()) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		m.Promotion = kind
		moves = append(moves, m)
	}
	return moves
}

// enPassantVictim returns the pawn that a diagonal step from from to the empty
// square to would capture in passing. The target square must be the board's
// en passant square and the capturing pawn must belong to the side to move.
func enPassantVictim(board *chess.Board, from, to chess.Square, pawn chess.Piece) (chess.Piece, bool) {
	if !board.EnPassant || board.EPSquare != to || board.ToMove != pawn.Colour {
		return chess.NoPiece, false
	}
	if to.Rank() != enPassantTargetRank(pawn.Colour) {
		return chess.NoPiece, false
	}
	victimSq, _ := chess.NewSquare(to.File(), from.Rank())
	victim, ok := board.PieceAt(victimSq)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == pawn.Colour {
		return chess.NoPiece, false
	}
	return victim, true
}

// enPassantCaptureSquare returns the square of the pawn removed by an en passant move.
func enPassantCaptureSquare(m chess.Move) chess.Square {
	sq, _ := chess.NewSquare(m.To.File(), m.From.Rank())
	return sq
}

// pawnStartRank returns the rank index pawns of a colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// enPassantTargetRank returns the rank index a pawn of colour lands on when
// capturing en passant.
func enPassantTargetRank(colour chess.Colour) int {
	if colour == chess.White {
		return 5
	}
	return 2
}
