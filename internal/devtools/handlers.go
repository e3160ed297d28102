package devtools

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/sk8metalme/blockfall/internal/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var inputNames = map[string]engine.Input{
	"move_left":     engine.InputMoveLeft,
	"move_right":    engine.InputMoveRight,
	"soft_drop_one": engine.InputSoftDropOne,
	"hard_drop":     engine.InputHardDrop,
	"rotate_cw":     engine.InputRotateCW,
	"rotate_ccw":    engine.InputRotateCCW,
	"hold":          engine.InputHold,
}

// Handlers bundles the HTTP/WS endpoints the debug binary exposes.
// None of this is gameplay logic — every handler just translates a
// request into an engine.Engine call.
type Handlers struct {
	host *Host
}

// NewHandlers wraps a Host for routing.
func NewHandlers(host *Host) *Handlers {
	return &Handlers{host: host}
}

// HealthCheck answers GET /healthz.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type createSessionRequest struct {
	Seed          uint64 `json:"seed"`
	LockDelayMs   int    `json:"lock_delay_ms"`
	MaxLockResets int    `json:"max_lock_resets"`
	PreviewLength int    `json:"preview_length"`
	StartingLevel int    `json:"starting_level"`
}

type sessionSnapshot struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Score  uint64 `json:"score"`
	Level  int    `json:"level"`
	Lines  uint32 `json:"lines"`
}

func snapshotOf(s *Session) sessionSnapshot {
	return sessionSnapshot{
		ID:     s.ID,
		Status: s.Engine.Status().String(),
		Score:  s.Engine.Score(),
		Level:  s.Engine.Level(),
		Lines:  s.Engine.Lines(),
	}
}

// CreateSession answers POST /sessions. An empty or malformed body is
// treated as a request for all-default configuration.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // best-effort: zero values fall back to defaults
	}

	cfg := engine.Config{
		Seed:          req.Seed,
		LockDelayMs:   req.LockDelayMs,
		MaxLockResets: req.MaxLockResets,
		PreviewLength: req.PreviewLength,
		StartingLevel: req.StartingLevel,
	}

	s := h.host.CreateSession(cfg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snapshotOf(s))
}

type submitInputRequest struct {
	DtMs  int64  `json:"dt_ms"`
	Input string `json:"input"`
}

type submitInputResponse struct {
	sessionSnapshot
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// SubmitInput answers POST /sessions/{id}/input. It first advances
// the engine's clock by dt_ms (if given), then applies input (if
// given) — matching the order a real host loop would use.
func (h *Handlers) SubmitInput(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, ok := h.host.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	var req submitInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.DtMs > 0 {
		s.Engine.Step(req.DtMs)
	}

	resp := submitInputResponse{sessionSnapshot: snapshotOf(s), Accepted: true}
	if req.Input != "" {
		in, known := inputNames[req.Input]
		if !known {
			http.Error(w, "unknown input", http.StatusBadRequest)
			return
		}
		result := s.Engine.Submit(in)
		resp.Accepted = result.Ok()
		if !result.Ok() {
			resp.Reason = result.Reason.String()
		}
		resp.sessionSnapshot = snapshotOf(s)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// StreamEvents answers GET /sessions/{id}/ws, upgrading to a
// read-only websocket of the session's event stream.
func (h *Handlers) StreamEvents(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, ok := h.host.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[devtools] websocket upgrade failed for session %s: %v", id, err)
		return
	}

	s.Broadcaster.Register(id, conn)
}
