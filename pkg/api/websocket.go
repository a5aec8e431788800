package api

import (
	"log"
	"math/rand"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yourusername/stratengine/internal/rng"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/strategy"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// WSRequest drives one MCTS search over the websocket connection, streaming
// mcts.Progress frames as the search runs (SPEC_FULL.md's DOMAIN STACK:
// gorilla/websocket generalized from the teacher's rollout-progress socket
// to every game's MCTS search instead of only backgammon rollouts).
type WSRequest struct {
	Game     string `json:"game"`
	Position string `json:"position"`
	Seed     int64  `json:"seed,omitempty"`
}

// WSFrame is one streamed message: either a progress tick or the final
// result, discriminated by Type.
type WSFrame struct {
	Type     string        `json:"type"` // "progress", "result", "error"
	Progress *mcts.Progress `json:"progress,omitempty"`
	Move     string        `json:"move,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// WebSocket handles GET /api/ws: parse one request, run MCTS, and stream
// progress frames until the search completes.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	var req WSRequest
	if err := conn.ReadJSON(&req); err != nil {
		return
	}

	g, err := strategy.Lookup(req.Game)
	if err != nil {
		_ = conn.WriteJSON(WSFrame{Type: "error", Error: err.Error()})
		return
	}
	pos, err := g.Parse(req.Position)
	if err != nil {
		_ = conn.WriteJSON(WSFrame{Type: "error", Error: err.Error()})
		return
	}
	tuning, err := strategy.LoadTuning(req.Game)
	if err != nil {
		_ = conn.WriteJSON(WSFrame{Type: "error", Error: err.Error()})
		return
	}

	searchRNG := rng.New()
	if req.Seed != 0 {
		searchRNG = rand.New(rand.NewSource(req.Seed))
	}

	progress := func(p mcts.Progress) {
		pc := p
		_ = conn.WriteJSON(WSFrame{Type: "progress", Progress: &pc})
	}

	mv, err := mcts.Recommend(pos, tuning.MCTSSimulationCount, tuning.MCTSSimulationDepth, searchRNG, progress)
	if err != nil {
		_ = conn.WriteJSON(WSFrame{Type: "error", Error: err.Error()})
		return
	}
	_ = conn.WriteJSON(WSFrame{Type: "result", Move: mv.String()})
}
