package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		colour      chess.Colour
		wantInCheck bool
	}{
		{
			name:        "initial position not in check",
			fen:         InitialFEN,
			colour:      chess.White,
			wantInCheck: false,
		},
		{
			name:        "initial position black not in check",
			fen:         InitialFEN,
			colour:      chess.Black,
			wantInCheck: false,
		},
		{
			name:        "scholar's mate - black in check",
			fen:         "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			colour:      chess.Black,
			wantInCheck: true,
		},
		{
			name:        "white king in check from rook on same rank",
			fen:         "7k/8/8/8/8/8/8/r3K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: true,
		},
		{
			name:        "rook check blocked",
			fen:         "7k/8/8/8/8/8/8/r1N1K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: false,
		},
		{
			name:        "white king in check from bishop on diagonal",
			fen:         "7k/8/8/8/8/8/3b4/4K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: true,
		},
		{
			name:        "white king in check from knight",
			fen:         "7k/8/8/8/8/5n2/8/4K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: true,
		},
		{
			name:        "pawn two ranks away does not attack",
			fen:         "7k/8/8/8/8/3p4/8/4K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: false,
		},
		{
			name:        "white king attacked by pawn on diagonal",
			fen:         "7k/8/8/8/8/8/5p2/4K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: true,
		},
		{
			name:        "pawn straight ahead does not attack",
			fen:         "7k/8/8/8/8/8/4p3/4K3 w - - 0 1",
			colour:      chess.White,
			wantInCheck: false,
		},
		{
			name:        "queen on h1 does not attack e8",
			fen:         "4k3/8/8/8/8/8/8/4K2Q w - - 0 1",
			colour:      chess.Black,
			wantInCheck: false,
		},
		{
			name:        "queen giving check on file",
			fen:         "4k3/8/8/8/4Q3/8/8/4K3 b - - 0 1",
			colour:      chess.Black,
			wantInCheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsInCheck(board, tt.colour)
			if got != tt.wantInCheck {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.wantInCheck)
			}
		})
	}
}

func TestIsInCheck_MissingKing(t *testing.T) {
	board := chess.NewBoard()
	board.Place(chess.MustParseSquare("a1"), chess.B(chess.Rook))
	if IsInCheck(board, chess.White) {
		t.Error("IsInCheck() = true for a board without a white king")
	}
}

func TestKingSquare(t *testing.T) {
	board := MustBoardFromFEN(InitialFEN)
	for colour, want := range map[chess.Colour]string{chess.White: "e1", chess.Black: "e8"} {
		sq, err := KingSquare(board, colour)
		if err != nil {
			t.Fatalf("KingSquare(%v) error = %v", colour, err)
		}
		if sq.String() != want {
			t.Errorf("KingSquare(%v) = %s, want %s", colour, sq, want)
		}
	}

	board.Remove(chess.MustParseSquare("e8"))
	if _, err := KingSquare(board, chess.Black); !errors.Is(err, chesserrors.ErrInvariantViolation) {
		t.Errorf("KingSquare() with no king error = %v, want ErrInvariantViolation", err)
	}

	board.Place(chess.MustParseSquare("a3"), chess.W(chess.King))
	if _, err := KingSquare(board, chess.White); !errors.Is(err, chesserrors.ErrInvariantViolation) {
		t.Errorf("KingSquare() with two kings error = %v, want ErrInvariantViolation", err)
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantMate bool
	}{
		{
			name:     "initial position - not mate",
			fen:      InitialFEN,
			wantMate: false,
		},
		{
			name:     "fool's mate",
			fen:      "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantMate: true,
		},
		{
			name:     "scholar's mate",
			fen:      "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			wantMate: true,
		},
		{
			name:     "back rank mate",
			fen:      "7k/8/8/8/8/8/5PPP/4r1K1 w - - 0 1",
			wantMate: true,
		},
		{
			name:     "smothered mate",
			fen:      "6rk/5Npp/8/8/8/8/8/4K3 b - - 0 1",
			wantMate: true,
		},
		{
			name:     "check but can capture",
			fen:      "7k/8/8/8/8/8/5PPP/R3r1K1 w - - 0 1",
			wantMate: false,
		},
		{
			name:     "check but king can move",
			fen:      "7k/8/8/8/8/8/8/r3K3 w - - 0 1",
			wantMate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsCheckmate(board)
			if got != tt.wantMate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantMate)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantStalemate bool
	}{
		{
			name:          "initial position - not stalemate",
			fen:           InitialFEN,
			wantStalemate: false,
		},
		{
			name:          "classic stalemate - king cornered by queen",
			fen:           "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
		},
		{
			name:          "stalemate - king in corner",
			fen:           "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
		},
		{
			name:          "blocked pawn and king with no squares",
			fen:           "7k/5Q2/6K1/8/8/p7/P7/8 b - - 0 1",
			wantStalemate: true,
		},
		{
			name:          "king vs king and bishop - insufficient but not stalemate",
			fen:           "8/8/8/4k3/8/8/3B4/4K3 b - - 0 1",
			wantStalemate: false,
		},
		{
			name:          "checkmate is not stalemate",
			fen:           "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantStalemate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsStalemate(board)
			if got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
		})
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name           string
		fen            string
		colour         chess.Colour
		wantLegalMoves bool
	}{
		{
			name:           "initial position - white has moves",
			fen:            InitialFEN,
			colour:         chess.White,
			wantLegalMoves: true,
		},
		{
			name:           "initial position - black has moves",
			fen:            InitialFEN,
			colour:         chess.Black,
			wantLegalMoves: true,
		},
		{
			name:           "stalemate - no legal moves",
			fen:            "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			colour:         chess.Black,
			wantLegalMoves: false,
		},
		{
			name:           "checkmate - no legal moves",
			fen:            "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			colour:         chess.White,
			wantLegalMoves: false,
		},
		{
			name:           "king only - has moves",
			fen:            "8/8/8/4k3/8/8/8/4K3 w - - 0 1",
			colour:         chess.White,
			wantLegalMoves: true,
		},
		{
			name:           "pawn on the bishop diagonal",
			fen:            "4k3/8/8/8/b7/8/2P5/4K3 w - - 0 1",
			colour:         chess.White,
			wantLegalMoves: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := HasLegalMoves(board, tt.colour)
			if got != tt.wantLegalMoves {
				t.Errorf("HasLegalMoves() = %v, want %v", got, tt.wantLegalMoves)
			}
			if all := AllLegalMoves(board, tt.colour); (len(all) > 0) != tt.wantLegalMoves {
				t.Errorf("len(AllLegalMoves()) = %d, disagrees with HasLegalMoves", len(all))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameState
	}{
		{"initial", InitialFEN, chess.InProgress},
		{"check", "4k3/8/8/8/4Q3/8/8/4K3 b - - 0 1", chess.Check},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		// draws are decided by the game, not here
		{"bare kings", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", chess.InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(MustBoardFromFEN(tt.fen)); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{5, 5},
		{-5, 5},
	}

	for _, tt := range tests {
		got := abs(tt.input)
		if got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
	if got := abs(int8(-7)); got != 7 {
		t.Errorf("abs(int8(-7)) = %d, want 7", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{5, 1},
		{-5, -1},
	}

	for _, tt := range tests {
		got := sign(tt.input)
		if got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
