// Package games defines the shared contract every per-game position model
// implements: legal-move generation, move application/undo and terminal
// detection, so the search engines in pkg/search can drive any of the six
// supported games through a single interface.
package games

import (
	"errors"
	"math/rand"
)

// Player identifies a side to move. Player 1 moves first in every game.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerOne {
		return "1"
	}
	return "2"
}

// Move is a game-specific discriminated move record. Each game declares its
// own concrete type; String renders the game's external move notation.
type Move interface {
	String() string
}

// Position is a full playable state for one game. Implementations are
// cheaply cloneable; Apply/Undo mutate in place so search engines can avoid
// cloning on the hot path, but Clone is always available for engines (MCTS)
// that need an independent copy to own.
type Position interface {
	// SideToMove returns the player to move next.
	SideToMove() Player

	// LegalMoves returns the legal moves in deterministic order.
	LegalMoves() []Move

	// Apply mutates the position by playing m, which must have come from
	// this position's own LegalMoves(). Returns InternalInvariantError if
	// application fails (a generator bug, never a user-facing condition).
	Apply(m Move) error

	// Undo reverses the most recent Apply(m) exactly.
	Undo(m Move) error

	// Winner reports the decided winner, if the position is terminal and
	// decided. ok is false for a drawn or non-terminal position.
	Winner() (Player, bool)

	// StaticEval returns the per-game static evaluation, positive favoring
	// player one, using the weights fixed by the game's evaluator.
	StaticEval() int32

	// Clone returns an independent copy of the position.
	Clone() Position
}

// Game binds a game's parser and opening book to its Position type so
// pkg/strategy can dispatch by name without per-game glue code.
type Game interface {
	// Name is the lowercase game identifier used in dispatch and in the
	// per-game environment-variable prefixes (§6).
	Name() string

	// Parse decodes the game's fixed string encoding into a Position.
	// Returns ErrParse (wrapped with detail) on malformed input.
	Parse(encoded string) (Position, error)

	// Opening looks up pos in the game's static opening table, picking
	// uniformly at random among equally-recommended replies via rng. ok is
	// false when the position (or, for backgammon, the rolled dice) isn't
	// in the table.
	Opening(pos Position, rng *rand.Rand) (Move, bool)
}

// Sentinel errors surfaced by the core, per spec §7. Callers compare with
// errors.Is; per-game packages wrap these with fmt.Errorf("...: %w", ...).
var (
	// ErrParse indicates a malformed encoded position: wrong length, an
	// invalid character, or internally inconsistent counts.
	ErrParse = errors.New("games: malformed encoded position")

	// ErrNoMoves indicates the position is terminal and a recommendation
	// was requested anyway.
	ErrNoMoves = errors.New("games: position is terminal, no legal moves")

	// ErrInternalInvariant indicates an apply/undo that should not have
	// failed did; this is a generator bug, not a user-facing condition.
	ErrInternalInvariant = errors.New("games: internal invariant violated")
)
