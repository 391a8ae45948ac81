package engine

import (
	"errors"

	"chess-core/rules"
)

// =============================================================================
// SEARCH CONSTANTS
// =============================================================================

// SearchDepth is the total search depth in plies; the reply to each
// root move is scored at SearchDepth-1. QuiescenceDepth bounds the
// capture extension below the horizon. Both are fixed: callers needing
// a deadline bound the depth before invocation, never mid-search.
const (
	SearchDepth     = 3
	QuiescenceDepth = 4
)

const (
	// MaxScore bounds the alpha-beta window.
	MaxScore int32 = 32500
	// Checkmate is the mate score, near the window bound and above any
	// static evaluation.
	Checkmate int32 = 30000
)

// ErrNoLegalMoves reports a search on a position with no legal moves.
// The caller must have detected game end first; this is an internal
// invariant failure, not a user error.
var ErrNoLegalMoves = errors.New("no legal moves in active position")

// ChooseReply returns the engine's move for the side to move. The
// search is strictly deterministic: move ordering and the root
// tie-break are its only sources of move choice.
func ChooseReply(p *rules.Position) (rules.MoveRecord, error) {
	moves := p.Board.GenerateMoves()
	if len(moves) == 0 {
		return rules.MoveRecord{}, ErrNoLegalMoves
	}

	// Black maximizes, White minimizes; all scores are from Black's
	// perspective.
	maximizing := !p.Board.WhiteToMove

	var best rules.MoveRecord
	var bestScore int32
	var bestKey uint64
	for i, m := range moves {
		child := p.Board
		child.Apply(m.From, m.To, m.Promotion)
		score := alphabeta(&child, SearchDepth-1, -MaxScore, MaxScore)
		key := rootTieBreak(m, p.MoveCount)

		better := i == 0
		if !better {
			if maximizing {
				better = score > bestScore || (score == bestScore && key > bestKey)
			} else {
				better = score < bestScore || (score == bestScore && key > bestKey)
			}
		}
		if better {
			best, bestScore, bestKey = m, score, key
		}
	}
	return best, nil
}

// rootTieBreak orders equal-scored root moves deterministically.
func rootTieBreak(m rules.MoveRecord, moveCount uint64) uint64 {
	return (uint64(m.From)*7 + uint64(m.To)*3 + moveCount) % 5
}

// alphabeta searches to the given depth with late move reductions:
// after the first three moves, non-captures are searched at depth d-2
// and re-searched at full depth only when the reduced result improves
// the window.
func alphabeta(b *rules.Board, depth int, alpha, beta int32) int32 {
	if depth <= 0 {
		return quiescence(b, QuiescenceDepth, alpha, beta)
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.InCheck(b.WhiteToMove) {
			if b.WhiteToMove {
				return Checkmate // White mated
			}
			return -Checkmate
		}
		return 0 // stalemate
	}

	maximizing := !b.WhiteToMove
	for i, m := range moves {
		child := *b
		child.Apply(m.From, m.To, m.Promotion)

		var score int32
		if i >= 3 && !m.IsCapture() && depth >= 2 {
			score = alphabeta(&child, depth-2, alpha, beta)
			if (maximizing && score > alpha) || (!maximizing && score < beta) {
				score = alphabeta(&child, depth-1, alpha, beta)
			}
		} else {
			score = alphabeta(&child, depth-1, alpha, beta)
		}

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}

// quiescence extends the search through captures only until the
// position is quiet or the capture depth runs out. Stand-pat bounds the
// return on both sides.
func quiescence(b *rules.Board, depth int, alpha, beta int32) int32 {
	standPat := Evaluation(b)
	maximizing := !b.WhiteToMove

	if maximizing {
		if standPat > alpha {
			alpha = standPat
		}
		if beta <= alpha {
			return alpha
		}
	} else {
		if standPat < beta {
			beta = standPat
		}
		if beta <= alpha {
			return beta
		}
	}

	if depth <= 0 {
		return standPat
	}

	for _, m := range b.GenerateCaptures() {
		child := *b
		child.Apply(m.From, m.To, m.Promotion)
		score := quiescence(&child, depth-1, alpha, beta)
		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}
