package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Square is a board coordinate. The fields are unexported so a Square can only
// be obtained through a bounds-checked constructor; every Square is on the board.
type Square struct {
	file, rank int8
}

// NewSquare returns the square at file and rank (both 0-7). The second result
// is false if either component is off the board.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, false
	}
	return Square{file: int8(file), rank: int8(rank)}, true
}

// SquareAt returns the square with the given 0-63 index (a1=0, h1=7, a8=56).
func SquareAt(index int) (Square, bool) {
	if index < 0 || index >= NumSquares {
		return Square{}, false
	}
	return NewSquare(index%BoardSize, index/BoardSize)
}

// ParseSquare converts algebraic text such as "e4" or "E4" to a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: want file and rank: %w", text, errors.ErrInvalidNotation)
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq, ok := NewSquare(int(file)-FileBase, int(text[1])-RankBase)
	if !ok {
		return Square{}, fmt.Errorf("square %q: off the board: %w", text, errors.ErrInvalidNotation)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed text.
// It is intended for literals in tests and tables.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the 0-7 file index (a=0).
func (s Square) File() int { return int(s.file) }

// Rank returns the 0-7 rank index (rank 1 = 0).
func (s Square) Rank() int { return int(s.rank) }

// Index returns the 0-63 index of the square.
func (s Square) Index() int { return int(s.rank)*BoardSize + int(s.file) }

// Offset returns the square df files and dr ranks away. The second result is
// false if that square is off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(int(s.file)+df, int(s.rank)+dr)
}

// IsLight returns true if the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.file+s.rank)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(FileBase + int(s.file)), byte(RankBase + int(s.rank))})
}

// AllSquares returns the 64 squares in index order.
func AllSquares() []Square {
	squares := make([]Square, 0, NumSquares)
	for i := 0; i < NumSquares; i++ {
		sq, _ := SquareAt(i)
		squares = append(squares, sq)
	}
	return squares
}
