package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. The halfmove clock and
// fullmove number fields are optional and default to "0 1". The position must
// hold exactly one king per colour, no pawn on a back rank, and the side not
// to move must not be in check.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "fields", Got: fen}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}
	if err := validatePosition(board); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: positions}
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: string(c)}
			}
			sq, ok := chess.NewSquare(file, rank)
			if !ok {
				return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: rankText}
			}
			board.Place(sq, piece)
			file++
		}
		if file != chess.BoardSize {
			return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: rankText}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: side}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		}
		if right == chess.NoCastling || board.Castling.Has(right) {
			return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "castling", Got: field}
		}
		board.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// lie behind a pawn of the side that just moved.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil || sq.Rank() != enPassantTargetRank(board.ToMove) {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: field}
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: fields[0]}
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: fields[1]}
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition rejects positions no legal game can reach in one step.
func validatePosition(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := KingSquare(board, colour); err != nil {
			return &errors.PositionError{Err: fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err), Field: "placement"}
		}
	}

	for _, rank := range []int{0, chess.BoardSize - 1} {
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			if p, ok := board.PieceAt(sq); ok && p.Kind == chess.Pawn {
				return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: "pawn on " + sq.String()}
			}
		}
	}

	if IsInCheck(board, board.ToMove.Opposite()) {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: "opponent in check"}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece, ok := board.PieceAt(sq)
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
