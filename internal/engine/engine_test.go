package engine

import "testing"

func TestStatusTransitions(t *testing.T) {
	e := New(Config{Seed: 1})
	if e.Status() != StatusMenu {
		t.Fatalf("new engine status = %v, want StatusMenu", e.Status())
	}
	if err := e.Pause(); err == nil {
		t.Error("Pause from Menu should fail")
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start from Menu failed: %v", err)
	}
	if e.Status() != StatusPlaying {
		t.Fatalf("status after Start = %v, want StatusPlaying", e.Status())
	}
	if err := e.Start(); err == nil {
		t.Error("Start from Playing should fail")
	}
	if err := e.Pause(); err != nil {
		t.Fatalf("Pause from Playing failed: %v", err)
	}
	if e.Status() != StatusPaused {
		t.Fatalf("status after Pause = %v, want StatusPaused", e.Status())
	}
	if err := e.Resume(); err != nil {
		t.Fatalf("Resume from Paused failed: %v", err)
	}
	if e.Status() != StatusPlaying {
		t.Fatalf("status after Resume = %v, want StatusPlaying", e.Status())
	}
}

func TestResetReturnsToMenuAndClearsState(t *testing.T) {
	e := New(Config{Seed: 1})
	e.Start()
	e.Submit(InputHardDrop)
	e.Reset()
	if e.Status() != StatusMenu {
		t.Errorf("status after Reset = %v, want StatusMenu", e.Status())
	}
	if e.Score() != 0 || e.Lines() != 0 {
		t.Errorf("score/lines after Reset = %d/%d, want 0/0", e.Score(), e.Lines())
	}
	if e.ActivePiece() != nil {
		t.Error("ActivePiece should be nil immediately after Reset")
	}
	if !e.Playfield().IsEmpty() {
		t.Error("playfield should be empty after Reset")
	}
}

// TestStartAndGravity is spec scenario S1: with the default level-1
// drop interval of 1000ms, step(999) should not move the piece and a
// further step(2) should move it down by exactly one row.
func TestStartAndGravity(t *testing.T) {
	e := New(Config{Seed: 0, StartingLevel: 1})
	e.Start()

	before := e.ActivePiece()
	if before == nil {
		t.Fatal("expected an active piece immediately after Start")
	}
	startRow := before.Row

	e.Step(999)
	if got := e.ActivePiece().Row; got != startRow {
		t.Errorf("row after step(999) = %d, want unchanged %d", got, startRow)
	}

	e.Step(2)
	if got := e.ActivePiece().Row; got != startRow+1 {
		t.Errorf("row after step(2) = %d, want %d", got, startRow+1)
	}
}

// TestHoldLocksOutSecondHoldSameTurn is spec scenario S5.
func TestHoldLocksOutSecondHoldSameTurn(t *testing.T) {
	e := New(Config{Seed: 3})
	e.Start()

	if r := e.Submit(InputHold); !r.Ok() {
		t.Fatalf("first Hold rejected: %v", r.Reason)
	}
	r := e.Submit(InputHold)
	if r.Ok() || r.Reason != RejectAlreadyHeld {
		t.Fatalf("second Hold = %v, want Rejected(AlreadyHeld)", r.Reason)
	}
}

// TestGameOverByBlockOut is spec scenario S6: pre-occupying the next
// piece's spawn cells must surface GameOver{BlockOut} with no
// Spawned event for the piece that couldn't fit.
func TestGameOverByBlockOut(t *testing.T) {
	e := New(Config{Seed: 7})
	e.Start()

	var tags []EventTag
	e.Subscribe(func(ev Event) { tags = append(tags, ev.Tag) })

	nextKind := e.Preview(1)[0]
	row, col := spawnOrigin(nextKind)
	cells := absoluteCellsFor(nextKind, RotationR0, row, col)
	blocker := cells[0]
	for _, c := range cells {
		if c.Row > blocker.Row {
			blocker = c
		}
	}
	e.Playfield().cells[blocker.Row][blocker.Col] = cellForKind(KindI)

	e.Submit(InputHardDrop)

	if e.Status() != StatusGameOver {
		t.Fatalf("status = %v, want StatusGameOver", e.Status())
	}
	if len(tags) == 0 || tags[len(tags)-1] != EventGameOver {
		t.Fatalf("last event = %v, want EventGameOver (tags: %v)", tags[len(tags)-1], tags)
	}
	for _, tag := range tags {
		if tag == EventSpawned {
			t.Errorf("expected no Spawned event on block-out, got tags %v", tags)
		}
	}
	if e.ActivePiece() != nil {
		t.Error("ActivePiece should be nil after a block-out game over")
	}
}

// TestSingleLineClearScoring is a simplified version of spec scenario
// S2: hard-dropping a vertical I piece into the only open column of
// an otherwise full bottom row should clear it and award
// 100*level + hard_drop_distance*2.
func TestSingleLineClearScoring(t *testing.T) {
	e := New(Config{Seed: 11, StartingLevel: 1})
	e.Start()

	for col := 0; col < PlayfieldWidth-1; col++ {
		e.Playfield().cells[PlayfieldHeight-1][col] = cellForKind(KindJ)
	}

	// Force the active piece into a vertical I spanning rows 0..3 in
	// the one open column, so hard-dropping lands its last cell at
	// (PlayfieldHeight-1, PlayfieldWidth-1).
	e.current = &ActivePiece{Kind: KindI, Rotation: RotationR1, Row: 0, Col: PlayfieldWidth - 3}

	var tags []EventTag
	e.Subscribe(func(ev Event) { tags = append(tags, ev.Tag) })

	r := e.Submit(InputHardDrop)
	if !r.Ok() {
		t.Fatalf("hard drop rejected: %v", r.Reason)
	}

	wantDistance := PlayfieldHeight - 4 // lands with origin row = height-4
	wantScore := uint64(100) + uint64(2*wantDistance)
	if e.Score() != wantScore {
		t.Errorf("score = %d, want %d", e.Score(), wantScore)
	}
	if e.Lines() != 1 {
		t.Errorf("lines = %d, want 1", e.Lines())
	}

	foundClear := false
	for _, tag := range tags {
		if tag == EventLinesCleared {
			foundClear = true
		}
	}
	if !foundClear {
		t.Errorf("expected a LinesCleared event, got tags %v", tags)
	}
}
