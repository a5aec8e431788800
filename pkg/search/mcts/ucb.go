package mcts

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// explorationConstant is UCB1's c = sqrt(2) (spec glossary).
const explorationConstant = math.Sqrt2

// UpperConfidenceBound computes UCB1 for a child with the given parent
// simulation count: w/n + c*sqrt(ln(N)/n), or +Inf if the child has never
// been simulated (spec §4.4 step 1, testable property 9).
func UpperConfidenceBound(parentSimulations, childWins, childSimulations int) float64 {
	if childSimulations == 0 {
		return math.Inf(1)
	}
	exploitation := float64(childWins) / float64(childSimulations)
	exploration := explorationConstant * math.Sqrt(math.Log(float64(parentSimulations))/float64(childSimulations))
	return exploitation + exploration
}

// strictlyGreater is the total ordering used by leaf selection: NaN (which cannot arise here but would from a malformed eval)
// falls back to "not greater", keeping the first candidate — a total order
// with Equal as the NaN fallback, per design note "Determinism of float
// max".
func strictlyGreater(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if floats.EqualWithinAbs(a, b, 0) {
		return false
	}
	return a > b
}
