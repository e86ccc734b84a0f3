package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a (file, rank) displacement.
type offset struct {
	df, dr int
}

var (
	rookDirections   = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]offset{}, rookDirections...), bishopDirections...)

	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slideDirections returns the ray directions of a sliding piece kind, or nil.
func slideDirections(kind chess.PieceKind) []offset {
	switch kind {
	case chess.Rook:
		return rookDirections
	case chess.Bishop:
		return bishopDirections
	case chess.Queen:
		return queenDirections
	}
	return nil
}

// ray returns the squares from sq (exclusive) in direction d, stopping at the
// board edge or at the first occupied square, which is included.
func ray(board *chess.Board, sq chess.Square, d offset) []chess.Square {
	var squares []chess.Square
	for next, ok := sq.Offset(d.df, d.dr); ok; next, ok = next.Offset(d.df, d.dr) {
		squares = append(squares, next)
		if !board.IsEmpty(next) {
			break
		}
	}
	return squares
}

// between returns the squares strictly between two squares on a shared rank,
// file or diagonal. It returns nil for unaligned or adjacent squares.
func between(from, to chess.Square) []chess.Square {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return nil
	}

	stepF, stepR := sign(df), sign(dr)
	var squares []chess.Square
	for sq, _ := from.Offset(stepF, stepR); sq != to; sq, _ = sq.Offset(stepF, stepR) {
		squares = append(squares, sq)
	}
	return squares
}

// isPathClear checks that every square strictly between from and to is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range between(from, to) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}
