package mcts

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/yourusername/stratengine/pkg/games"
)

// Progress is emitted once per completed iteration so a caller (the
// websocket handler) can stream search progress without coupling this
// package to any transport.
type Progress struct {
	Iteration   int
	ArenaSize   int
	RootLeaves  int
	BestRootID  int
	BestRootWin int
}

// Recommend runs simulationCount-1 iterations of MCTS from root and returns
// the move on the root child with the most wins (spec §4.4). rollout moves
// are chosen uniformly at random using rng. progress, if non-nil, is called
// once after every iteration, starting with iteration 1 (the root's initial
// expansion).
func Recommend(root games.Position, simulationCount, simulationDepth int, rng *rand.Rand, progress func(Progress)) (games.Move, error) {
	if len(root.LegalMoves()) == 0 {
		return nil, games.ErrNoMoves
	}

	arena := newArena(root.Clone())

	iterations := simulationCount - 1
	if iterations < 0 {
		iterations = 0
	}

	for i := 0; i < iterations; i++ {
		leaf := selectLeaf(arena)
		if err := expand(arena, leaf); err != nil {
			return nil, fmt.Errorf("mcts: %w", err)
		}
		result := rollout(leaf, simulationDepth, rng)
		backpropagate(arena, leaf, result)

		if progress != nil {
			root := arena.Root()
			best, bestWins := bestRootChild(arena, root)
			bid := 0
			if best != nil {
				bid = best.ID
			}
			progress(Progress{
				Iteration:   i + 1,
				ArenaSize:   arena.Len(),
				RootLeaves:  len(root.ChildIDs),
				BestRootID:  bid,
				BestRootWin: bestWins,
			})
		}
	}

	root2 := arena.Root()
	if len(root2.ChildIDs) == 0 {
		// Iteration count was too small (or zero) to expand the root even
		// once; fall back to a single expansion so a move is still
		// returned whenever legal moves exist.
		if err := expand(arena, root2); err != nil {
			return nil, fmt.Errorf("mcts: %w", err)
		}
	}

	best, _ := bestRootChild(arena, root2)
	if best == nil {
		return nil, games.ErrNoMoves
	}
	return best.Move, nil
}

// selectLeaf implements spec §4.4 step 1: among all current leaves, pick
// the one with maximum UCB1 with respect to its parent, +Inf for an
// unsimulated node, ties broken by insertion (allocation) order.
func selectLeaf(a *Arena) *Node {
	var best *Node
	bestScore := 0.0
	first := true

	for id := 1; id <= a.Len(); id++ {
		n := a.Node(id)
		if len(n.ChildIDs) != 0 {
			continue
		}
		var score float64
		if n.ParentID == noParent {
			score = math.Inf(1) // root is always selectable until its first expansion
		} else {
			parent := a.Node(n.ParentID)
			score = UpperConfidenceBound(parent.Simulations, n.Wins, n.Simulations)
		}
		if first || strictlyGreater(score, bestScore) {
			best = n
			bestScore = score
			first = false
		}
	}
	return best
}

// expand generates one child per legal move of leaf's position (spec §4.4
// step 2). A terminal leaf (no legal moves) is left unexpanded.
func expand(a *Arena, leaf *Node) error {
	moves := leaf.State.LegalMoves()
	for _, m := range moves {
		child := leaf.State.Clone()
		if err := child.Apply(m); err != nil {
			return fmt.Errorf("%w: %v", games.ErrInternalInvariant, err)
		}
		a.alloc(leaf, m, child)
	}
	return nil
}

// rollout plays uniformly random legal moves from a clone of leaf's
// position until the game ends or maxDepth steps elapse (spec §4.4 step
// 3). The result is true iff the eventual winner equals leaf's
// side-to-move; running out of depth without a decided winner counts as a
// loss.
func rollout(leaf *Node, maxDepth int, rng *rand.Rand) bool {
	pos := leaf.State.Clone()
	mover := leaf.State.SideToMove()

	for steps := 0; steps < maxDepth; steps++ {
		if _, over := pos.Winner(); over {
			break
		}
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			break
		}
		var m games.Move
		if len(moves) == 1 {
			m = moves[0]
		} else {
			m = moves[rng.Intn(len(moves))]
		}
		if err := pos.Apply(m); err != nil {
			break
		}
	}

	winner, ok := pos.Winner()
	return ok && winner == mover
}

// backpropagate walks from leaf to the root via ParentID, incrementing
// Simulations at every ancestor (inclusive) and Wins where result is true
// (spec §4.4 step 4; the same boolean at every level, per Design Notes).
func backpropagate(a *Arena, leaf *Node, result bool) {
	for id := leaf.ID; id != noParent; {
		n := a.Node(id)
		n.Simulations++
		if result {
			n.Wins++
		}
		id = n.ParentID
	}
}

// bestRootChild returns the root child with the maximum Wins count, ties
// broken by insertion order (spec §4.4 "Root selection").
func bestRootChild(a *Arena, root *Node) (*Node, int) {
	var best *Node
	bestWins := -1
	for _, id := range root.ChildIDs {
		c := a.Node(id)
		if c.Wins > bestWins {
			bestWins = c.Wins
			best = c
		}
	}
	return best, bestWins
}
