package chess

// MoveFlags records the special properties of a move.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
)

// Move represents a single chess move produced by the move generator.
type Move struct {
	// Source and destination squares. For castling these are the king's squares.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is the
	// pawn removed from beside To, not a piece on To.
	Captured Piece

	// The kind promoted to (NoKind if not a promotion).
	Promotion PieceKind

	// Special move properties.
	Flags MoveFlags
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Flags&FlagCapture != 0
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags&FlagCastle != 0
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Flags&FlagEnPassant != 0
}

// IsDoublePush returns true if this is a pawn's two-square advance.
func (m Move) IsDoublePush() bool {
	return m.Flags&FlagDoublePush != 0
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsKingside returns true for a castling move toward the h-file.
func (m Move) IsKingside() bool {
	return m.IsCastle() && m.To.File() > m.From.File()
}

// String returns the long algebraic form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
