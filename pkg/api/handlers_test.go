package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/yourusername/stratengine/pkg/games/checkers"
)

var startingCheckersPosition = checkers.Encode(checkers.New())

func newTestServer() *Server {
	return NewServer(DefaultConfig(), "test")
}

func TestHealthReportsAllGames(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	s.handlers.Health(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Games) != 6 {
		t.Fatalf("expected 6 registered games, got %d: %v", len(resp.Games), resp.Games)
	}
}

func TestMoveHandlerCheckersMinimax(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(MoveRequest{
		Game:     "checkers",
		Mode:     "minimax",
		Position: startingCheckersPosition,
	})
	req := httptest.NewRequest("POST", "/api/move", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handlers.Move(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp MoveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Move == "" {
		t.Fatalf("expected a move in the response")
	}
}

func TestMoveHandlerRejectsUnknownGame(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(MoveRequest{Game: "mancala", Mode: "minimax", Position: "x"})
	req := httptest.NewRequest("POST", "/api/move", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handlers.Move(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400 for unknown game, got %d", w.Code)
	}
}

func TestAnalysisHandlerReturnsStats(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(AnalysisRequest{
		Game:     "checkers",
		Position: startingCheckersPosition,
		Trials:   20,
		MaxDepth: 10,
	})
	req := httptest.NewRequest("POST", "/api/analysis", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handlers.Analysis(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Trials != 20 {
		t.Fatalf("expected 20 trials, got %d", resp.Trials)
	}
}
