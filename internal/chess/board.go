package chess

import "strings"

// Board represents a chess board with all state needed for the game.
// A Board is a plain value: assigning it copies the whole position.
type Board struct {
	// The board squares, indexed by Square.Index().
	squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights for both sides.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the last double-stepping pawn passed over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after each Black move.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [NumSquares]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.squares[file] = W(kind)
		b.squares[BoardSize+file] = W(Pawn)
		b.squares[6*BoardSize+file] = B(Pawn)
		b.squares[7*BoardSize+file] = B(kind)
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// PieceAt returns the piece on a square. The second result is false if the
// square is empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.squares[sq.Index()]
	return p, !p.IsEmpty()
}

// IsEmpty returns true if no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq.Index()].IsEmpty()
}

// Place puts a piece on a square, replacing whatever stood there.
func (b *Board) Place(sq Square, p Piece) {
	b.squares[sq.Index()] = p
}

// Remove clears a square and returns the piece that stood there.
func (b *Board) Remove(sq Square) Piece {
	p := b.squares[sq.Index()]
	b.squares[sq.Index()] = NoPiece
	return p
}

// MovePiece relocates the piece on from to to, returning whatever was captured on to.
// It does not touch side to move, castling rights or clocks.
func (b *Board) MovePiece(from, to Square) Piece {
	captured := b.squares[to.Index()]
	b.squares[to.Index()] = b.squares[from.Index()]
	b.squares[from.Index()] = NoPiece
	return captured
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Occupied returns the squares holding a piece of the given colour, in index order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for i, p := range b.squares {
		if p.IsEmpty() || p.Colour != colour {
			continue
		}
		sq, _ := SquareAt(i)
		squares = append(squares, sq)
	}
	return squares
}

// Find returns every square holding exactly the given piece.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for i, p := range b.squares {
		if p == piece {
			sq, _ := SquareAt(i)
			squares = append(squares, sq)
		}
	}
	return squares
}

// RenderOptions controls the text dump produced by Render.
type RenderOptions struct {
	// Unicode draws figurines instead of FEN letters.
	Unicode bool
	// Empty is the glyph for an unoccupied square.
	Empty rune
}

// DefaultRenderOptions draws FEN letters with '.' for empty squares.
var DefaultRenderOptions = RenderOptions{Empty: '.'}

// Render returns a human-readable 8x8 dump: ranks 8 to 1 top to bottom,
// each prefixed with its label, and file labels a-h underneath.
func (b *Board) Render(opts RenderOptions) string {
	empty := opts.Empty
	if empty == 0 {
		empty = DefaultRenderOptions.Empty
	}

	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(' ')
			p := b.squares[rank*BoardSize+file]
			switch {
			case p.IsEmpty():
				sb.WriteRune(empty)
			case opts.Unicode:
				sb.WriteRune(p.Figurine())
			default:
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for file := 0; file < BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(FileBase + file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// String renders the board with DefaultRenderOptions.
func (b *Board) String() string {
	return b.Render(DefaultRenderOptions)
}
