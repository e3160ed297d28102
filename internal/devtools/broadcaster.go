// Package devtools wires the deterministic engine core to a
// read-only debug/spectator surface. Nothing here is part of
// gameplay: it only observes an *engine.Engine and fans its event
// stream out over a websocket for a debugger or overlay to watch.
package devtools

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sk8metalme/blockfall/internal/engine"
)

const (
	sendBuffer    = 256
	pingInterval  = 30 * time.Second
	writeWait     = 10 * time.Second
	pongWait      = 60 * time.Second
	readLimitByte = 512
)

// Client is a single spectator connection.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	closed bool
	mu     sync.Mutex
}

// SafeSend enqueues a message, returning false if the client is
// already closed or its buffer is full.
func (c *Client) SafeSend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// SafeClose closes the Send channel exactly once.
func (c *Client) SafeClose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.Send)
		c.closed = true
	}
}

// wireEvent is the JSON rendering of an engine.Event. Only the fields
// relevant to Tag are populated; the rest are omitted.
type wireEvent struct {
	Tag string `json:"tag"`

	FinalScore *uint64 `json:"final_score,omitempty"`
	FinalLevel *int    `json:"final_level,omitempty"`
	FinalLines *uint32 `json:"final_lines,omitempty"`
	TimeMs     *int64  `json:"time_ms,omitempty"`

	Kind string `json:"kind,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	Rows         []int  `json:"rows,omitempty"`
	ClearKind    string `json:"clear_kind,omitempty"`
	TSpin        string `json:"tspin,omitempty"`
	PerfectClear bool   `json:"perfect_clear,omitempty"`
	Awarded      uint64 `json:"awarded,omitempty"`

	LevelFrom int `json:"level_from,omitempty"`
	LevelTo   int `json:"level_to,omitempty"`

	Reason string `json:"reason,omitempty"`
}

var eventTagNames = map[engine.EventTag]string{
	engine.EventStarted:      "started",
	engine.EventPaused:       "paused",
	engine.EventResumed:      "resumed",
	engine.EventEnded:        "ended",
	engine.EventSpawned:      "spawned",
	engine.EventPieceLocked:  "piece_locked",
	engine.EventLinesCleared: "lines_cleared",
	engine.EventLevelUp:      "level_up",
	engine.EventHeld:         "held",
	engine.EventGameOver:     "game_over",
}

var clearKindNames = map[engine.LineClearKind]string{
	engine.ClearNone:   "none",
	engine.ClearSingle: "single",
	engine.ClearDouble: "double",
	engine.ClearTriple: "triple",
	engine.ClearTetris: "tetris",
}

var tSpinNames = map[engine.TSpinKind]string{
	engine.TSpinNone:   "none",
	engine.TSpinMini:   "mini",
	engine.TSpinProper: "proper",
}

var gameOverReasonNames = map[engine.GameOverReason]string{
	engine.ReasonLockOut:  "lock_out",
	engine.ReasonBlockOut: "block_out",
}

func toWire(e engine.Event) wireEvent {
	w := wireEvent{Tag: eventTagNames[e.Tag]}
	switch e.Tag {
	case engine.EventEnded:
		w.FinalScore = &e.FinalScore
		w.FinalLevel = &e.FinalLevel
		w.FinalLines = &e.FinalLines
		w.TimeMs = &e.TimeMs
	case engine.EventSpawned:
		w.Kind = e.Kind.String()
	case engine.EventPieceLocked:
		w.Kind = e.Kind.String()
	case engine.EventHeld:
		if e.FromSet {
			w.From = e.From.String()
		}
		w.To = e.To.String()
	case engine.EventLinesCleared:
		w.Rows = e.Rows
		w.ClearKind = clearKindNames[e.ClearKind]
		w.TSpin = tSpinNames[e.TSpin]
		w.PerfectClear = e.PerfectClear
		w.Awarded = e.Awarded
	case engine.EventLevelUp:
		w.LevelFrom = e.LevelFrom
		w.LevelTo = e.LevelTo
	case engine.EventGameOver:
		w.Reason = gameOverReasonNames[e.Reason]
	}
	return w
}

// Broadcaster fans out an engine's event stream to every connected
// spectator client. It owns no gameplay state — only connections.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	events     chan []byte
	quit       chan struct{}
}

// NewBroadcaster starts the fan-out loop in the background.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan []byte, sendBuffer),
		quit:       make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case c := <-b.register:
			b.mu.Lock()
			b.clients[c.ID] = c
			b.mu.Unlock()
			log.Printf("[devtools] spectator connected: %s", c.ID)

		case c := <-b.unregister:
			b.mu.Lock()
			if existing, ok := b.clients[c.ID]; ok && existing == c {
				existing.SafeClose()
				delete(b.clients, c.ID)
			}
			b.mu.Unlock()
			log.Printf("[devtools] spectator disconnected: %s", c.ID)

		case payload := <-b.events:
			b.mu.RLock()
			for _, c := range b.clients {
				if !c.SafeSend(payload) {
					log.Printf("[devtools] dropped event for spectator %s", c.ID)
				}
			}
			b.mu.RUnlock()

		case <-b.quit:
			return
		}
	}
}

// Subscribe wires an engine's events into this broadcaster. Returns
// the engine's unsubscribe function.
func (b *Broadcaster) Subscribe(e *engine.Engine) func() {
	return e.Subscribe(func(ev engine.Event) {
		payload, err := json.Marshal(toWire(ev))
		if err != nil {
			log.Printf("[devtools] failed to marshal event: %v", err)
			return
		}
		select {
		case b.events <- payload:
		default:
			log.Printf("[devtools] event channel full, dropping %s", eventTagNames[ev.Tag])
		}
	})
}

// Register adds a websocket connection as a spectator and starts its
// pump goroutines.
func (b *Broadcaster) Register(id string, conn *websocket.Conn) *Client {
	c := &Client{ID: id, Conn: conn, Send: make(chan []byte, sendBuffer)}

	conn.SetReadLimit(readLimitByte)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go b.readPump(c)
	go b.writePump(c)

	b.register <- c
	return c
}

// readPump discards any inbound message — this stream is read-only —
// and only exists to detect disconnects and keep the pong deadline
// alive.
func (b *Broadcaster) readPump(c *Client) {
	defer func() {
		b.unregister <- c
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (b *Broadcaster) writePump(c *Client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Shutdown closes every spectator connection and stops the fan-out
// loop.
func (b *Broadcaster) Shutdown() {
	close(b.quit)
	b.mu.Lock()
	for _, c := range b.clients {
		c.Conn.Close()
		c.SafeClose()
	}
	b.clients = make(map[string]*Client)
	b.mu.Unlock()
}
