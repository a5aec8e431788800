package api

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/yourusername/stratengine/internal/rng"
	"github.com/yourusername/stratengine/pkg/analysis"
	"github.com/yourusername/stratengine/pkg/strategy"
)

func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Handlers holds everything the HTTP layer needs to dispatch requests,
// mirroring the teacher's Handlers struct (engine + worker pool) but with
// the engine replaced by the stateless strategy package.
type Handlers struct {
	pool    *WorkerPool
	version string
}

// NewHandlers builds a Handlers bound to the given worker pool.
func NewHandlers(version string, pool *WorkerPool) *Handlers {
	return &Handlers{pool: pool, version: version}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// Health reports which games are registered and serving.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Games:   strategy.Names(),
	})
}

// Move handles POST /api/move: parse the position under the named game and
// run the requested strategy mode against it (spec §2 Layer C, §4.5).
func (h *Handlers) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	if err := h.pool.AcquireFast(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer h.pool.ReleaseFast()

	seedRNG := rng.New()
	if req.Seed != 0 {
		seedRNG = rngFromSeed(req.Seed)
	}

	tuning, err := strategy.LoadTuning(req.Game)
	if err != nil {
		writeError(w, strategy.StatusFor(err), err)
		return
	}

	result, err := strategy.Dispatch(req.Game, strategy.Mode(req.Mode), req.Position, tuning, seedRNG)
	if err != nil {
		writeError(w, strategy.StatusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, MoveResponse{
		Move:       result.Move.String(),
		FromBook:   result.FromBook,
		StaticEval: result.StaticEval,
	})
}

// Analysis handles POST /api/analysis: sample random-rollout win rate
// statistics for a position via pkg/analysis (gonum/stat).
func (h *Handlers) Analysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	if err := h.pool.AcquireSlow(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer h.pool.ReleaseSlow()

	g, err := strategy.Lookup(req.Game)
	if err != nil {
		writeError(w, strategy.StatusFor(err), err)
		return
	}
	pos, err := g.Parse(req.Position)
	if err != nil {
		writeError(w, strategy.StatusFor(err), err)
		return
	}

	trials := req.Trials
	if trials <= 0 {
		trials = 200
	}
	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 60
	}

	seedRNG := rng.New()
	if req.Seed != 0 {
		seedRNG = rngFromSeed(req.Seed)
	}

	stats := analysis.RunTrials(pos, trials, maxDepth, seedRNG)
	writeJSON(w, http.StatusOK, AnalysisResponse{
		Trials:   stats.Trials,
		Mean:     stats.Mean,
		Variance: stats.Variance,
		StdDev:   stats.StdDev,
	})
}
