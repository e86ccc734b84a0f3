package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestZobristHashConsistency(t *testing.T) {
	// Create two identical boards and verify they produce the same hash
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if fromFEN := GenerateZobristHash(engine.MustBoardFromFEN(engine.InitialFEN)); fromFEN != hash1 {
		t.Errorf("FEN initial board hash %x != %x", fromFEN, hash1)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	// Manually move e2 to e4
	board2 := chess.NewInitialBoard()
	board2.MovePiece(chess.MustParseSquare("e2"), chess.MustParseSquare("e4"))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashStateFields(t *testing.T) {
	base := chess.NewInitialBoard()
	baseHash := GenerateZobristHash(base)

	sideToMove := base.Copy()
	sideToMove.ToMove = chess.Black
	if GenerateZobristHash(sideToMove) == baseHash {
		t.Error("side to move does not affect hash")
	}

	castling := base.Copy()
	castling.Castling = castling.Castling.Without(chess.WhiteKingside)
	if GenerateZobristHash(castling) == baseHash {
		t.Error("castling rights do not affect hash")
	}

	clocks := base.Copy()
	clocks.HalfmoveClock = 12
	clocks.MoveNumber = 30
	if GenerateZobristHash(clocks) != baseHash {
		t.Error("clocks affect hash; they are not part of position identity")
	}
}

func TestZobristHashEnPassant(t *testing.T) {
	tests := []struct {
		name     string
		withEP   string
		withoutE string
		wantSame bool
	}{
		{
			name:     "no adjacent pawn ignores target",
			withEP:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			withoutE: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			wantSame: true,
		},
		{
			name:     "capturable target distinguishes",
			withEP:   "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			withoutE: "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 3",
			wantSame: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := GenerateZobristHash(engine.MustBoardFromFEN(tt.withEP))
			b := GenerateZobristHash(engine.MustBoardFromFEN(tt.withoutE))
			if (a == b) != tt.wantSame {
				t.Errorf("hash equality = %v; want %v", a == b, tt.wantSame)
			}
		})
	}
}

func TestPositionCounter(t *testing.T) {
	c := NewPositionCounter()
	board := chess.NewInitialBoard()

	if n := c.Add(board); n != 1 {
		t.Errorf("first Add() = %d; want 1", n)
	}
	if n := c.Add(board.Copy()); n != 2 {
		t.Errorf("second Add() = %d; want 2", n)
	}

	other := board.Copy()
	other.ToMove = chess.Black
	c.Add(other)

	if c.Count(board) != 2 || c.Count(other) != 1 {
		t.Errorf("Count() = %d, %d; want 2, 1", c.Count(board), c.Count(other))
	}
	if c.Max() != 2 {
		t.Errorf("Max() = %d; want 2", c.Max())
	}
	if c.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", c.UniqueCount())
	}

	clone := c.Clone()
	c.Reset()
	if c.UniqueCount() != 0 {
		t.Errorf("UniqueCount() after Reset = %d; want 0", c.UniqueCount())
	}
	if clone.Count(board) != 2 {
		t.Errorf("clone.Count() = %d; want 2 (clone must be independent)", clone.Count(board))
	}
}
