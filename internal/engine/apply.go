package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MakeMove applies a move produced by the move generator to the board and
// updates side to move, castling rights, en passant square and clocks.
// It does not check legality; use FindMove or ApplyMove for that.
func MakeMove(board *chess.Board, m chess.Move) {
	colour := m.Piece.Colour

	switch {
	case m.IsEnPassant():
		board.Remove(enPassantCaptureSquare(m))
		board.MovePiece(m.From, m.To)
	case m.IsCastle():
		c := castleFor(m)
		board.MovePiece(c.kingFrom, c.kingTo)
		board.MovePiece(c.rookFrom, c.rookTo)
	default:
		board.MovePiece(m.From, m.To)
	}

	// Handle promotion
	if m.IsPromotion() {
		board.Place(m.To, chess.Piece{Kind: m.Promotion, Colour: colour})
	}

	// Moving a king or rook, or capturing a rook at home, clears the rights.
	board.Castling = board.Castling.Without(rightsLostAt(m.From) | rightsLostAt(m.To))

	// Set en passant square if double pawn push
	board.EnPassant = false
	if m.IsDoublePush() {
		board.EnPassant = true
		board.EPSquare, _ = m.From.Offset(0, chess.ColourOffset(colour))
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// ApplyMove looks up the legal move from -> to (with promotion, or chess.NoKind)
// for the side to move and applies it. It returns false and leaves the board
// untouched if no such legal move exists.
func ApplyMove(board *chess.Board, from, to chess.Square, promotion chess.PieceKind) (chess.Move, bool) {
	piece, ok := board.PieceAt(from)
	if !ok || piece.Colour != board.ToMove {
		return chess.Move{}, false
	}
	m, ok := FindMove(board, from, to, promotion)
	if !ok {
		return chess.Move{}, false
	}
	MakeMove(board, m)
	return m, true
}
