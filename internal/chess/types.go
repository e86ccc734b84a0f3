// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // No piece (empty square, or no promotion)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is no piece.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if p represents no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Figurine returns the Unicode chess symbol for the piece.
func (p Piece) Figurine() rune {
	if p.IsEmpty() {
		return ' '
	}
	// U+2654 is the white king; kinds run king..pawn from there.
	r := '♔' + rune(King-p.Kind)
	if p.Colour == Black {
		r += 6
	}
	return r
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to a piece. The second result is false
// for any other byte.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if k.Letter() == c {
			return Piece{Kind: k, Colour: colour}, true
		}
	}
	return NoPiece, false
}

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// NoCastling and AllCastling are the empty and full rights sets.
const (
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with the flags in r cleared.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field ("KQkq", "Kq", "-").
func (c CastlingRights) String() string {
	var s []byte
	for _, f := range []struct {
		r CastlingRights
		l byte
	}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
		if c.Has(f.r) {
			s = append(s, f.l)
		}
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// KingsideRight returns the kingside flag for a colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside flag for a colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// GameState is the classification of a position after a move.
type GameState int

// Check means the side to move is in check but has a legal reply; GameOver
// means the game was drawn by an automatic draw rule.
const (
	InProgress GameState = iota
	Check
	Checkmate
	Stalemate
	GameOver
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// IsTerminal returns true if no further moves may be made.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == GameOver
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of a colour (0 for White, 7 for Black).
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}
