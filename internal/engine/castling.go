package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castle describes one of the four castling moves.
type castle struct {
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

// castles lists the castling moves of each colour, kingside first.
var castles = [2][2]castle{
	chess.White: {newCastle(chess.White, true), newCastle(chess.White, false)},
	chess.Black: {newCastle(chess.Black, true), newCastle(chess.Black, false)},
}

func newCastle(colour chess.Colour, kingside bool) castle {
	rank := chess.HomeRank(colour)
	sq := func(file int) chess.Square {
		s, _ := chess.NewSquare(file, rank)
		return s
	}
	if kingside {
		return castle{chess.KingsideRight(colour), sq(4), sq(6), sq(7), sq(5)}
	}
	return castle{chess.QueensideRight(colour), sq(4), sq(2), sq(0), sq(3)}
}

// castlingMoves returns the castling moves available to the king on from.
// A castle is generated only if the right is held, the rook is on its home
// square, every square between king and rook is empty, and neither the king's
// square nor any square it crosses or lands on is attacked.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	var moves []chess.Move
	var attacked SquareSet
	computed := false

	rook := chess.Piece{Kind: chess.Rook, Colour: king.Colour}
	for _, c := range castles[king.Colour] {
		if !board.Castling.Has(c.right) || from != c.kingFrom {
			continue
		}
		if !pieceIs(board, c.rookFrom, rook) || !isPathClear(board, c.kingFrom, c.rookFrom) {
			continue
		}

		if !computed {
			attacked = AttackedSquares(board, king.Colour.Opposite())
			computed = true
		}
		path := append([]chess.Square{c.kingFrom, c.kingTo}, between(c.kingFrom, c.kingTo)...)
		safe := true
		for _, sq := range path {
			if attacked.Has(sq) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, chess.Move{From: c.kingFrom, To: c.kingTo, Piece: king, Flags: chess.FlagCastle})
		}
	}
	return moves
}

// castleFor returns the castle description matching a castling move.
func castleFor(m chess.Move) castle {
	pair := castles[m.Piece.Colour]
	if m.IsKingside() {
		return pair[0]
	}
	return pair[1]
}

// rightsLostAt returns the castling rights that are cleared whenever a piece
// leaves or arrives on sq: the king's and rooks' home squares.
func rightsLostAt(sq chess.Square) chess.CastlingRights {
	var lost chess.CastlingRights
	for _, pair := range castles {
		for _, c := range pair {
			if sq == c.kingFrom || sq == c.rookFrom {
				lost |= c.right
			}
		}
	}
	return lost
}
