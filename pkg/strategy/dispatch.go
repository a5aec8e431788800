package strategy

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/games/backgammon"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

// Mode is one of the three recommendation strategies of spec §4.5.
type Mode string

const (
	ModeOpening Mode = "opening"
	ModeMinimax Mode = "minimax"
	ModeMCTS    Mode = "mcts"
)

// Result is the outcome of one Dispatch call.
type Result struct {
	Move      games.Move
	FromBook  bool
	StaticEval int32 // only set for ModeMinimax
}

// Dispatch parses encoded with the named game, then runs the requested
// mode against it, applying tuning and rng the way the teacher's
// AnalyzePosition/Evaluate handlers drove a single backgammon engine (spec
// §2 Layer C, §4.5).
func Dispatch(gameName string, mode Mode, encoded string, tuning Tuning, rng *rand.Rand) (Result, error) {
	g, err := Lookup(gameName)
	if err != nil {
		return Result{}, err
	}

	pos, err := g.Parse(encoded)
	if err != nil {
		return Result{}, err
	}

	switch mode {
	case ModeOpening:
		mv, ok := g.Opening(pos, rng)
		if !ok {
			return Result{}, fmt.Errorf("strategy: %w: no book move for this position", games.ErrNoMoves)
		}
		return Result{Move: mv, FromBook: true}, nil

	case ModeMinimax:
		if bg, ok := pos.(*backgammon.Position); ok {
			mv, err := backgammon.MinimaxRecommend(bg, tuning.MinimaxDepth)
			if err != nil {
				return Result{}, err
			}
			return Result{Move: mv, StaticEval: bg.StaticEval()}, nil
		}
		mv, score, err := minimax.Recommend(pos, tuning.MinimaxDepth)
		if err != nil {
			return Result{}, err
		}
		return Result{Move: mv, StaticEval: score}, nil

	case ModeMCTS:
		mv, err := mcts.Recommend(pos, tuning.MCTSSimulationCount, tuning.MCTSSimulationDepth, rng, nil)
		if err != nil {
			return Result{}, err
		}
		return Result{Move: mv}, nil

	default:
		return Result{}, ErrUnknownMode
	}
}
