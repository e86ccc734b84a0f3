package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParsePromotion converts promotion text to a piece kind. The empty string
// means no promotion. Accepted forms are the letters q, r, b, n and the full
// names, in any case.
func ParsePromotion(text string) (PieceKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return NoKind, nil
	case "q", "queen":
		return Queen, nil
	case "r", "rook":
		return Rook, nil
	case "b", "bishop":
		return Bishop, nil
	case "n", "knight":
		return Knight, nil
	}
	return NoKind, fmt.Errorf("promotion %q: want one of q, r, b, n: %w", text, errors.ErrInvalidNotation)
}
