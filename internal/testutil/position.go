package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Reference positions used across packages.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	StalemateFEN = "k7/8/1QK5/8/8/8/8/8 b - - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

// MustBoard parses a FEN position and fails the test on error.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test position %q: %v", fen, err)
	}
	return board
}

// MustSquare parses square text and fails the test on error.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("invalid test square %q: %v", text, err)
	}
	return sq
}

// Squares parses each text with MustSquare.
func Squares(t testing.TB, texts ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, len(texts))
	for i, text := range texts {
		squares[i] = MustSquare(t, text)
	}
	return squares
}

// Destinations returns the target square of each move.
func Destinations(moves []chess.Move) []chess.Square {
	squares := make([]chess.Square, len(moves))
	for i, m := range moves {
		squares[i] = m.To
	}
	return squares
}

// MoveStrings returns the long algebraic text of each move.
func MoveStrings(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}
