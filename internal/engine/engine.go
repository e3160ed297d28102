package engine

import "fmt"

// Input is the closed set of commands Submit accepts (spec.md §4.7).
type Input int

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputSoftDropOne
	InputHardDrop
	InputRotateCW
	InputRotateCCW
	InputHold
)

// Engine is the facade spec.md §2.10 describes: a single-player,
// single-threaded state machine driven entirely by Step and Submit.
// It owns every other component and is the only type a host imports.
type Engine struct {
	cfg    Config
	status GameStatus
	bus    EventBus

	pf      Playfield
	bagGen  *bag
	preview []PieceKind
	current *ActivePiece
	hold    *PieceKind

	dropAccMs  int
	gameTimeMs int64

	score      uint64
	level      int
	lines      uint32
	combo      int
	backToBack bool

	pendingIsRotation     bool
	pendingRotationKickIx int
}

// New constructs an Engine in StatusMenu. cfg's zero fields fall back
// to their documented defaults.
func New(cfg Config) *Engine {
	e := &Engine{cfg: cfg.withDefaults()}
	e.Reset()
	return e
}

// Subscribe registers an event handler. See EventBus.Subscribe.
func (e *Engine) Subscribe(fn Subscriber) func() {
	return e.bus.Subscribe(fn)
}

// Reset unconditionally returns the engine to StatusMenu, clearing the
// playfield, score, hold, and preview queue. Subscribers remain
// subscribed (spec.md §4.10).
func (e *Engine) Reset() {
	e.pf.reset()
	e.status = StatusMenu
	e.score = 0
	e.level = e.cfg.StartingLevel
	e.lines = 0
	e.combo = 0
	e.backToBack = false
	e.hold = nil
	e.current = nil
	e.dropAccMs = 0
	e.gameTimeMs = 0
	e.pendingIsRotation = false
	e.pendingRotationKickIx = -1

	e.bagGen = newBag(e.cfg.Seed)
	e.preview = nil
	e.refillPreview()
}

// Start transitions Menu -> Playing and spawns the first piece.
func (e *Engine) Start() error {
	if e.status != StatusMenu {
		return fmt.Errorf("engine: Start: invalid from status %s", e.status)
	}
	e.status = StatusPlaying
	e.bus.emit(Event{Tag: EventStarted})
	e.spawnNext()
	return nil
}

// Pause transitions Playing -> Paused.
func (e *Engine) Pause() error {
	if e.status != StatusPlaying {
		return fmt.Errorf("engine: Pause: invalid from status %s", e.status)
	}
	e.status = StatusPaused
	e.bus.emit(Event{Tag: EventPaused})
	return nil
}

// Resume transitions Paused -> Playing.
func (e *Engine) Resume() error {
	if e.status != StatusPaused {
		return fmt.Errorf("engine: Resume: invalid from status %s", e.status)
	}
	e.status = StatusPlaying
	e.bus.emit(Event{Tag: EventResumed})
	return nil
}

// --- observers ---

func (e *Engine) Status() GameStatus    { return e.status }
func (e *Engine) Playfield() *Playfield { return &e.pf }
func (e *Engine) Score() uint64         { return e.score }
func (e *Engine) Level() int            { return e.level }
func (e *Engine) Lines() uint32         { return e.lines }
func (e *Engine) GameTimeMs() int64     { return e.gameTimeMs }
func (e *Engine) Hold() (PieceKind, bool) {
	if e.hold == nil {
		return 0, false
	}
	return *e.hold, true
}

// ActivePiece returns the falling piece, or nil if there is none
// (Menu, Paused before first spawn is impossible, or GameOver).
func (e *Engine) ActivePiece() *ActivePiece {
	if e.current == nil {
		return nil
	}
	return e.current.clone()
}

// Preview returns up to n upcoming kinds without consuming them.
func (e *Engine) Preview(n int) []PieceKind {
	if n > len(e.preview) {
		n = len(e.preview)
	}
	out := make([]PieceKind, n)
	copy(out, e.preview[:n])
	return out
}

// GhostRow returns the row the active piece would occupy if hard
// dropped from its current column and rotation, or 0 if there is no
// active piece.
func (e *Engine) GhostRow() int {
	if e.current == nil {
		return 0
	}
	row := e.current.Row
	for fits(&e.pf, e.current.Kind, e.current.Rotation, row+1, e.current.Col) {
		row++
	}
	return row
}

func (e *Engine) refillPreview() {
	for len(e.preview) < e.cfg.PreviewLength {
		e.preview = append(e.preview, e.bagGen.next())
	}
}

func (e *Engine) takeFromPreview() PieceKind {
	k := e.preview[0]
	e.preview = e.preview[1:]
	e.refillPreview()
	return k
}
