package backgammon

import (
	"fmt"

	"github.com/yourusername/stratengine/pkg/games"
)

// rollPairs enumerates the 21 unordered dice combinations, each weighted
// by its probability out of 36 (doubles: 1/36, non-doubles: 2/36), per
// spec §4.3 "Backgammon variation (expectimax)".
var rollPairs = buildRollPairs()

func buildRollPairs() []struct {
	dice   [2]int
	weight float64
} {
	var out []struct {
		dice   [2]int
		weight float64
	}
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := d1; d2 <= 6; d2++ {
			w := 2.0
			if d1 == d2 {
				w = 1.0
			}
			out = append(out, struct {
				dice   [2]int
				weight float64
			}{[2]int{d1, d2}, w})
		}
	}
	return out
}

// MinimaxRecommend implements backgammon's expectimax search: the root
// move phase evaluates each legal play of the already-rolled dice, then
// alternates roll phases (averaging over the 21 dice combinations) with
// move phases for the remaining depth (spec §4.3).
func MinimaxRecommend(pos *Position, depth int) (games.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, games.ErrNoMoves
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	maximizing := pos.SideToMove() == games.PlayerOne
	var best games.Move
	bestVal := 0.0
	first := true

	for _, mv := range moves {
		m := mv.(*Move)
		child := pos.Clone().(*Position)
		if err := child.Apply(m); err != nil {
			return nil, fmt.Errorf("backgammon: %w: %v", games.ErrInternalInvariant, err)
		}

		var v float64
		if depth > 1 {
			v = rollPhase(child, depth-1)
		} else {
			v = float64(child.StaticEval())
		}

		if first || (maximizing && v > bestVal) || (!maximizing && v < bestVal) {
			bestVal = v
			best = mv
			first = false
		}
	}
	return best, nil
}

// rollPhase averages the move-phase value over all 21 unordered dice
// combinations for the opponent now on roll.
func rollPhase(pos *Position, depth int) float64 {
	if depth <= 0 {
		return float64(pos.StaticEval())
	}
	var sum float64
	for _, rp := range rollPairs {
		child := pos.Clone().(*Position)
		child.Dice = rp.dice
		sum += rp.weight * movePhase(child, depth)
	}
	return sum / 36.0
}

// movePhase picks the best (for the mover) play given the position's
// already-set dice, then recurses into the next roll phase.
func movePhase(pos *Position, depth int) float64 {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return float64(pos.StaticEval())
	}
	maximizing := pos.SideToMove() == games.PlayerOne
	best := 0.0
	first := true
	for _, mv := range moves {
		child := pos.Clone().(*Position)
		if err := child.Apply(mv.(*Move)); err != nil {
			continue
		}
		v := rollPhase(child, depth-1)
		if first || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
			first = false
		}
	}
	return best
}
