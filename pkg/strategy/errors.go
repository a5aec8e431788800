// Package strategy implements Layer C: dispatch across the six games and
// three recommendation strategies (spec.md §2, §4.5), plus the environment
// driven tuning table of spec.md §6.
package strategy

import (
	"errors"
	"net/http"

	"github.com/yourusername/stratengine/pkg/games"
)

// ErrUnknownGame is returned by Dispatch when the requested game name is
// not in the registry.
var ErrUnknownGame = errors.New("strategy: unknown game")

// ErrUnknownMode is returned by Dispatch when the requested strategy mode
// is neither "opening", "minimax" nor "mcts".
var ErrUnknownMode = errors.New("strategy: unknown mode")

// StatusFor maps a strategy-layer error to the HTTP status the teacher's
// handlers.go uses for request validation failures (400) versus internal
// invariant violations (500), per spec §7's error propagation policy.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, games.ErrParse),
		errors.Is(err, ErrUnknownGame),
		errors.Is(err, ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, games.ErrNoMoves):
		return http.StatusUnprocessableEntity
	case errors.Is(err, games.ErrInternalInvariant):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
