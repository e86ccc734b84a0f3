package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns the moves of the piece on sq that follow its
// movement pattern and the board occupancy, without regard to whether they
// leave the mover's own king in check. An empty square yields no moves.
func PseudoLegalMoves(board *chess.Board, sq chess.Square) []chess.Move {
	piece, ok := board.PieceAt(sq)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, sq, piece)
	case chess.Knight:
		return stepMoves(board, sq, piece, knightOffsets)
	case chess.King:
		return append(stepMoves(board, sq, piece, kingOffsets), castlingMoves(board, sq, piece)...)
	default:
		return slideMoves(board, sq, piece, slideDirections(piece.Kind))
	}
}

// stepMoves generates knight and king moves from a fixed offset table.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets []offset) []chess.Move {
	var moves []chess.Move
	for _, o := range offsets {
		to, ok := from.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		if m, ok := newMove(board, from, to, piece); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// slideMoves generates rook, bishop and queen moves by casting rays. Each ray
// ends with a capture if the first occupied square holds an enemy piece.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs []offset) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for _, to := range ray(board, from, d) {
			if m, ok := newMove(board, from, to, piece); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// newMove builds a move onto an empty or enemy-occupied square. The second
// result is false if to holds a piece of the mover's colour.
func newMove(board *chess.Board, from, to chess.Square, piece chess.Piece) (chess.Move, bool) {
	m := chess.Move{From: from, To: to, Piece: piece}
	if target, occupied := board.PieceAt(to); occupied {
		if target.Colour == piece.Colour {
			return chess.Move{}, false
		}
		m.Captured = target
		m.Flags |= chess.FlagCapture
	}
	return m, true
}
