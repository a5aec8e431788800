// Package minimax implements depth-limited alpha-beta search driven by a
// per-game static evaluator (spec §4.3). It is generic over any
// games.Position and is used directly by every game except backgammon,
// whose dice introduce an expectimax roll phase handled in
// pkg/games/backgammon instead.
package minimax

import (
	"fmt"
	"math"

	"github.com/yourusername/stratengine/pkg/games"
)

const (
	negInf = math.MinInt32 / 2
	posInf = math.MaxInt32 / 2
)

// Recommend enumerates root moves, applies each, searches the resulting
// position to depth-1 and returns the move with the best value for the
// side to move. Ties break by insertion order of LegalMoves. Returns
// games.ErrNoMoves if the position is terminal.
func Recommend(pos games.Position, depth int) (games.Move, int32, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, 0, games.ErrNoMoves
	}
	if len(moves) == 1 {
		return moves[0], 0, nil
	}

	maximizing := pos.SideToMove() == games.PlayerOne
	alpha, beta := int32(negInf), int32(posInf)

	var best games.Move
	bestVal := int32(negInf)
	if !maximizing {
		bestVal = int32(posInf)
	}

	for _, m := range moves {
		if err := pos.Apply(m); err != nil {
			return nil, 0, fmt.Errorf("minimax: %w: %v", games.ErrInternalInvariant, err)
		}
		v := search(pos, depth-1, alpha, beta, !maximizing)
		if err := pos.Undo(m); err != nil {
			return nil, 0, fmt.Errorf("minimax: %w: %v", games.ErrInternalInvariant, err)
		}

		if maximizing {
			if best == nil || v > bestVal {
				bestVal = v
				best = m
			}
			if v > alpha {
				alpha = v
			}
		} else {
			if best == nil || v < bestVal {
				bestVal = v
				best = m
			}
			if v < beta {
				beta = v
			}
		}
	}

	return best, bestVal, nil
}

// search is the recursive alpha-beta routine of spec §4.3.
func search(pos games.Position, depth int, alpha, beta int32, maximizing bool) int32 {
	moves := pos.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return pos.StaticEval()
	}

	if maximizing {
		v := int32(negInf)
		for _, m := range moves {
			if err := pos.Apply(m); err != nil {
				return v
			}
			cv := search(pos, depth-1, alpha, beta, false)
			_ = pos.Undo(m)
			if cv > v {
				v = cv
			}
			if v > alpha {
				alpha = v
			}
			if beta <= alpha {
				break
			}
		}
		return v
	}

	v := int32(posInf)
	for _, m := range moves {
		if err := pos.Apply(m); err != nil {
			return v
		}
		cv := search(pos, depth-1, alpha, beta, true)
		_ = pos.Undo(m)
		if cv < v {
			v = cv
		}
		if v < beta {
			beta = v
		}
		if beta <= alpha {
			break
		}
	}
	return v
}
