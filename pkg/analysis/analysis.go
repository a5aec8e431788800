// Package analysis computes aggregate statistics over repeated stochastic
// searches, generalizing the teacher's pkg/engine/matchanalysis.go (which
// summarized a backgammon match's per-move equity swings) to any of the
// six games: here the quantity tracked is the rollout win rate of the
// position's side to move, sampled across independent random playouts.
package analysis

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/stratengine/pkg/games"
)

// WinRateSample is one trial's outcome: 1 if the side to move at the start
// of the playout eventually won, 0 otherwise (a draw/depth-cutoff counts
// as 0, matching the MCTS rollout convention in pkg/search/mcts).
type WinRateSample = float64

// WinRateStats summarizes a batch of rollout trials with their sample mean
// and variance, via gonum/stat.MeanVariance.
type WinRateStats struct {
	Trials   int
	Mean     float64
	Variance float64
	StdDev   float64
}

// RunTrials plays maxTrials independent random rollouts from pos (cloned
// per trial, so pos itself is left untouched) out to maxDepth plies or
// until the game ends, and summarizes how often the mover at the start of
// each playout went on to win.
func RunTrials(pos games.Position, maxTrials, maxDepth int, rng *rand.Rand) WinRateStats {
	samples := make([]WinRateSample, maxTrials)
	weights := make([]float64, maxTrials)
	for i := range samples {
		samples[i] = rolloutSample(pos, maxDepth, rng)
		weights[i] = 1
	}

	mean, variance := stat.MeanVariance(samples, weights)
	return WinRateStats{
		Trials:   maxTrials,
		Mean:     mean,
		Variance: variance,
		StdDev:   stat.StdDev(samples, weights),
	}
}

func rolloutSample(pos games.Position, maxDepth int, rng *rand.Rand) WinRateSample {
	mover := pos.SideToMove()
	cur := pos.Clone()

	for depth := 0; depth < maxDepth; depth++ {
		if winner, ok := cur.Winner(); ok {
			if winner == mover {
				return 1
			}
			return 0
		}
		moves := cur.LegalMoves()
		if len(moves) == 0 {
			return 0
		}
		mv := moves[rng.Intn(len(moves))]
		if err := cur.Apply(mv); err != nil {
			return 0
		}
	}

	if winner, ok := cur.Winner(); ok && winner == mover {
		return 1
	}
	return 0
}
