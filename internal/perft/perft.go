// Package perft counts the leaf nodes of the legal move tree. The counts for
// well-known positions are published, which makes perft an exhaustive check of
// move generation, castling, en passant and promotion.
package perft

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Count returns the number of legal move sequences of length depth from board.
func Count(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.AllLegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		engine.MakeMove(child, m)
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Divide splits Count by root move, searching the subtrees on a pool of
// workers. Results follow move generation order. The second result is the
// total node count.
func Divide(board *chess.Board, depth, workers int) ([]Result, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := engine.AllLegalMoves(board, board.ToMove)
	if len(moves) == 0 {
		return nil, 0
	}

	pool := worker.NewPool(func(s subtree) uint64 { return Count(s.board, s.depth) },
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)))
	pool.Start()
	for i, m := range moves {
		child := board.Copy()
		engine.MakeMove(child, m)
		pool.Submit(i, subtree{board: child, depth: depth - 1})
	}

	results := make([]Result, len(moves))
	var total uint64
	for i, nodes := range pool.Collect(len(moves)) {
		results[i] = Result{Move: moves[i], Nodes: nodes}
		total += nodes
	}
	return results, total
}

// subtree is the position after one root move and the depth left to search.
type subtree struct {
	board *chess.Board
	depth int
}
