package devtools

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sk8metalme/blockfall/internal/engine"
)

// Session pairs one engine with the broadcaster fanning its events
// out to spectators.
type Session struct {
	ID          string
	Engine      *engine.Engine
	Broadcaster *Broadcaster

	unsubscribe func()
}

// Host is the debug binary's in-memory session registry. It holds no
// gameplay rules of its own — every decision is delegated to the
// engine each session wraps.
type Host struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewHost returns an empty registry.
func NewHost() *Host {
	return &Host{sessions: make(map[string]*Session)}
}

// CreateSession starts a new engine under a fresh session ID, begins
// play immediately, and returns the session.
func (h *Host) CreateSession(cfg engine.Config) *Session {
	e := engine.New(cfg)
	b := NewBroadcaster()
	unsub := b.Subscribe(e)

	s := &Session{ID: uuid.NewString(), Engine: e, Broadcaster: b, unsubscribe: unsub}

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	e.Start()
	return s
}

// Get looks up a session by ID.
func (h *Host) Get(id string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// End tears down a session's broadcaster and removes it from the
// registry. The underlying engine is left for the garbage collector.
func (h *Host) End(id string) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	h.mu.Unlock()
	if !ok {
		return
	}
	s.unsubscribe()
	s.Broadcaster.Shutdown()
}

// Shutdown tears down every session.
func (h *Host) Shutdown() {
	h.mu.Lock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	h.mu.Unlock()
	for _, id := range ids {
		h.End(id)
	}
}
