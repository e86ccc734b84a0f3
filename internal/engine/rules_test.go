package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveCountRules(t *testing.T) {
	tests := []struct {
		halfmoves       uint
		wantFifty       bool
		wantSeventyFive bool
	}{
		{0, false, false},
		{99, false, false},
		{100, true, false},
		{149, true, false},
		{150, true, true},
		{200, true, true},
	}

	for _, tt := range tests {
		board := chess.NewInitialBoard()
		board.HalfmoveClock = tt.halfmoves
		if got := IsFiftyMoveDraw(board); got != tt.wantFifty {
			t.Errorf("IsFiftyMoveDraw(%d) = %v, want %v", tt.halfmoves, got, tt.wantFifty)
		}
		if got := IsSeventyFiveMoveDraw(board); got != tt.wantSeventyFive {
			t.Errorf("IsSeventyFiveMoveDraw(%d) = %v, want %v", tt.halfmoves, got, tt.wantSeventyFive)
		}
	}
}

func TestBetween(t *testing.T) {
	sq := chess.MustParseSquare
	tests := []struct {
		from, to string
		want     []string
	}{
		{"e1", "h1", []string{"f1", "g1"}},
		{"e1", "a1", []string{"d1", "c1", "b1"}},
		{"a1", "h8", []string{"b2", "c3", "d4", "e5", "f6", "g7"}},
		{"e2", "e4", []string{"e3"}},
		{"e1", "f1", nil},
		{"e1", "f3", nil},
		{"e4", "e4", nil},
	}

	for _, tt := range tests {
		got := between(sq(tt.from), sq(tt.to))
		if len(got) != len(tt.want) {
			t.Errorf("between(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			continue
		}
		for i := range got {
			if got[i].String() != tt.want[i] {
				t.Errorf("between(%s, %s)[%d] = %s, want %s", tt.from, tt.to, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIsPathClear(t *testing.T) {
	board := chess.NewInitialBoard()
	sq := chess.MustParseSquare

	if isPathClear(board, sq("a1"), sq("a8")) {
		t.Error("a1-a8 should be blocked in the initial position")
	}
	if !isPathClear(board, sq("a2"), sq("a7")) {
		t.Error("a2-a7 should be clear in the initial position")
	}
	if !isPathClear(board, sq("e1"), sq("e2")) {
		t.Error("adjacent squares have nothing between them")
	}
}
