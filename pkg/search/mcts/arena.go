// Package mcts implements Monte Carlo Tree Search over an explicit node
// arena (spec §3 "MCTS Node", §4.4): UCB1 selection, single-step expansion,
// random rollouts to a depth cap, and recursive backpropagation. A search
// owns its arena for the duration of one call and discards it on return.
package mcts

import "github.com/yourusername/stratengine/pkg/games"

// noParent marks the root, whose ParentID is never a valid node id (ids
// start at 1).
const noParent = 0

// Node is one arena entry (spec §3). Wins/Simulations are monotonically
// non-decreasing; ChildIDs is populated exactly once, on expansion.
type Node struct {
	ID          int
	ParentID    int
	ChildIDs    []int
	Move        games.Move // nil at the root
	State       games.Position
	Wins        int
	Simulations int
}

// Arena holds every node allocated during one search. Ids are unique and
// strictly increasing in allocation order; the root has id 1.
type Arena struct {
	nodes []*Node
}

// newArena creates an arena whose root (id 1) holds root.
func newArena(root games.Position) *Arena {
	a := &Arena{nodes: make([]*Node, 0, 64)}
	a.nodes = append(a.nodes, &Node{ID: 1, ParentID: noParent, State: root})
	return a
}

// Node returns the node with the given id. Ids are 1-based.
func (a *Arena) Node(id int) *Node { return a.nodes[id-1] }

// Root returns the arena's root node.
func (a *Arena) Root() *Node { return a.nodes[0] }

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }

// alloc appends a new child of parent to the arena and returns it.
func (a *Arena) alloc(parent *Node, mov games.Move, state games.Position) *Node {
	n := &Node{ID: len(a.nodes) + 1, ParentID: parent.ID, Move: mov, State: state}
	a.nodes = append(a.nodes, n)
	parent.ChildIDs = append(parent.ChildIDs, n.ID)
	return n
}
