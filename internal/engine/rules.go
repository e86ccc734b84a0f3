// Package engine provides chess move generation, check detection and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Halfmove clock thresholds for the move-count draw rules.
const (
	FiftyMoveHalfmoves       = 100
	SeventyFiveMoveHalfmoves = 150
)

// IsFiftyMoveDraw returns true if a draw may be claimed under the fifty-move rule.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveHalfmoves
}

// IsSeventyFiveMoveDraw returns true if the game is drawn automatically under
// the seventy-five-move rule.
func IsSeventyFiveMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= SeventyFiveMoveHalfmoves
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for _, sq := range chess.AllSquares() {
		piece, ok := board.PieceAt(sq)
		if !ok {
			continue
		}

		// Kings don't count for material
		if piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}
