// Package hashing provides position keys for chess boards and repetition counting.
package hashing

import (
	"math/rand/v2"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

// zobristTable holds one random key per board feature.
type zobristTable struct {
	pieces    [2][chess.King + 1][chess.NumSquares]uint64
	blackMove uint64
	castling  [chess.AllCastling + 1]uint64
	epFile    [chess.BoardSize]uint64
}

var zobrist = newZobristTable(zobristSeed)

func newZobristTable(seed uint64) *zobristTable {
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	t := &zobristTable{}
	for colour := range t.pieces {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := range t.pieces[colour][kind] {
				t.pieces[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	t.blackMove = rng.Uint64()
	// castling[0] stays zero so a board without rights hashes like its placement.
	for i := 1; i < len(t.castling); i++ {
		t.castling[i] = rng.Uint64()
	}
	for i := range t.epFile {
		t.epFile[i] = rng.Uint64()
	}
	return t
}

// GenerateZobristHash computes the Zobrist key of a position. Two boards get the
// same key when they have the same placement, side to move, castling rights and
// en passant capture possibility, which are the position identity rules used
// for repetition.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Occupied(colour) {
			piece, _ := board.PieceAt(sq)
			hash ^= zobrist.pieces[colour][piece.Kind][sq.Index()]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= zobrist.blackMove
	}
	hash ^= zobrist.castling[board.Castling]
	if enPassantCapturable(board) {
		hash ^= zobrist.epFile[board.EPSquare.File()]
	}
	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands next to
// the pawn that just double-stepped. A target square nobody can use does not
// distinguish positions.
func enPassantCapturable(board *chess.Board) bool {
	if !board.EnPassant {
		return false
	}
	dir := chess.ColourOffset(board.ToMove)
	pawn := chess.Piece{Kind: chess.Pawn, Colour: board.ToMove}
	for _, df := range []int{-1, 1} {
		sq, ok := board.EPSquare.Offset(df, -dir)
		if !ok {
			continue
		}
		if p, ok := board.PieceAt(sq); ok && p == pawn {
			return true
		}
	}
	return false
}

// PositionCounter tracks how many times each position has been reached.
type PositionCounter struct {
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records an occurrence of the board's position and returns how many
// times it has now been seen.
func (c *PositionCounter) Add(board *chess.Board) int {
	hash := GenerateZobristHash(board)
	c.counts[hash]++
	return c.counts[hash]
}

// Count returns how many times the board's position has been recorded.
func (c *PositionCounter) Count(board *chess.Board) int {
	return c.counts[GenerateZobristHash(board)]
}

// Max returns the highest occurrence count of any recorded position.
func (c *PositionCounter) Max() int {
	highest := 0
	for _, n := range c.counts {
		if n > highest {
			highest = n
		}
	}
	return highest
}

// UniqueCount returns the number of distinct positions recorded.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}

// Reset forgets every recorded position. Call it after an irreversible move
// (pawn move or capture), since no earlier position can recur.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
}

// Clone returns an independent copy of the counter.
func (c *PositionCounter) Clone() *PositionCounter {
	return &PositionCounter{counts: maps.Clone(c.counts)}
}
