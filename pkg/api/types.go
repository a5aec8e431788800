// Package api serves the multi-game move-recommendation surface described
// in SPEC_FULL.md's REQUEST SURFACE section, generalizing the teacher's
// backgammon-only pkg/api (server.go, handlers.go, pool.go, websocket.go)
// to dispatch across all six games via pkg/strategy.
package api

// MoveRequest is the request body for POST /api/move.
type MoveRequest struct {
	Game     string `json:"game"`               // "checkers", "backgammon", "chess", "shogi", "xiangqi", "go"
	Mode     string `json:"mode"`                // "opening", "minimax", "mcts"
	Position string `json:"position"`            // game-specific encoded position
	Seed     int64  `json:"seed,omitempty"`      // 0 = process default
}

// MoveResponse is the response for POST /api/move.
type MoveResponse struct {
	Move       string `json:"move"`
	FromBook   bool   `json:"from_book,omitempty"`
	StaticEval int32  `json:"static_eval,omitempty"`
}

// AnalysisRequest is the request body for POST /api/analysis.
type AnalysisRequest struct {
	Game     string `json:"game"`
	Position string `json:"position"`
	Trials   int    `json:"trials,omitempty"`    // default 200
	MaxDepth int    `json:"max_depth,omitempty"` // default 60
	Seed     int64  `json:"seed,omitempty"`
}

// AnalysisResponse is the response for POST /api/analysis.
type AnalysisResponse struct {
	Trials   int     `json:"trials"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// ErrorResponse is returned with a non-2xx status on any handler failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status  string   `json:"status"`
	Version string   `json:"version"`
	Games   []string `json:"games"`
}
