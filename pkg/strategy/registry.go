package strategy

import (
	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/games/backgammon"
	"github.com/yourusername/stratengine/pkg/games/checkers"
	"github.com/yourusername/stratengine/pkg/games/chess"
	"github.com/yourusername/stratengine/pkg/games/shogi"
	"github.com/yourusername/stratengine/pkg/games/weiqi"
	"github.com/yourusername/stratengine/pkg/games/xiangqi"
)

// registry lists every game.Name() this binary knows how to dispatch,
// populated at init time the way the teacher's cmd/bgengine wired a single
// engine.Engine; here there are six.
var registry = map[string]games.Game{
	checkers.Game.Name():  checkers.Game,
	backgammon.Game.Name(): backgammon.Game,
	chess.Game.Name():     chess.Game,
	shogi.Game.Name():     shogi.Game,
	xiangqi.Game.Name():   xiangqi.Game,
	weiqi.Game.Name():     weiqi.Game,
}

// Lookup returns the registered Game for name, or ErrUnknownGame.
func Lookup(name string) (games.Game, error) {
	g, ok := registry[name]
	if !ok {
		return nil, ErrUnknownGame
	}
	return g, nil
}

// Names returns every registered game name, for CLI/HTTP usage messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
