// Command strategycli runs one move recommendation from the command line,
// generalizing the teacher's cmd/bgengine one-shot CLI to all six games and
// three strategy modes (spec §2, §4.5).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/yourusername/stratengine/internal/rng"
	"github.com/yourusername/stratengine/pkg/analysis"
	"github.com/yourusername/stratengine/pkg/strategy"
)

func main() {
	game := flag.String("game", "", "game name: checkers, backgammon, chess, shogi, xiangqi, go")
	mode := flag.String("mode", "minimax", "strategy mode: opening, minimax, mcts")
	position := flag.String("position", "", "encoded position (spec §6 wire format for the chosen game)")
	seed := flag.Int64("seed", 0, "random seed (0 = process default)")
	analyze := flag.Bool("analysis", false, "sample win-rate statistics (pkg/analysis) instead of recommending a move")
	trials := flag.Int("trials", 200, "-analysis: number of rollout trials")
	maxDepth := flag.Int("max-depth", 60, "-analysis: rollout depth cap")
	flag.Parse()

	if *game == "" || *position == "" {
		fmt.Fprintf(os.Stderr, "usage: strategycli -game <%s> -mode <opening|minimax|mcts> -position <encoded> [-analysis]\n",
			strings.Join(strategy.Names(), "|"))
		os.Exit(2)
	}

	searchRNG := rng.New()
	if *seed != 0 {
		searchRNG = rand.New(rand.NewSource(*seed))
	}

	if *analyze {
		g, err := strategy.Lookup(*game)
		if err != nil {
			log.Fatalf("strategycli: %v", err)
		}
		pos, err := g.Parse(*position)
		if err != nil {
			log.Fatalf("strategycli: %v", err)
		}
		stats := analysis.RunTrials(pos, *trials, *maxDepth, searchRNG)
		fmt.Printf("trials: %d\nmean: %.4f\nvariance: %.4f\nstddev: %.4f\n",
			stats.Trials, stats.Mean, stats.Variance, stats.StdDev)
		return
	}

	tuning, err := strategy.LoadTuning(*game)
	if err != nil {
		log.Fatalf("strategycli: %v", err)
	}

	result, err := strategy.Dispatch(*game, strategy.Mode(*mode), *position, tuning, searchRNG)
	if err != nil {
		log.Fatalf("strategycli: %v", err)
	}

	fmt.Printf("move: %s\n", result.Move.String())
	if result.FromBook {
		fmt.Println("source: opening book")
	}
	if *mode == string(strategy.ModeMinimax) {
		fmt.Printf("static eval: %d\n", result.StaticEval)
	}
}
