package engine

// Step advances the simulation by dt_ms of game time. It is the only
// source of gravity; everything else is driven by Submit. A no-op
// unless the engine is Playing (spec.md §4.7).
func (e *Engine) Step(dtMs int64) {
	if e.status != StatusPlaying {
		return
	}
	if dtMs <= 0 {
		return
	}
	e.gameTimeMs += dtMs

	interval := DropIntervalMs(e.level)
	e.dropAccMs += int(dtMs)
	for e.dropAccMs >= interval {
		e.dropAccMs -= interval
		if !e.canMoveDown() {
			break
		}
		e.current.Row++
		e.pendingIsRotation = false
	}

	if e.status != StatusPlaying || e.current == nil {
		return
	}

	if e.canMoveDown() {
		e.current.lockDelayMs = 0
		return
	}

	e.current.lockDelayMs += int(dtMs)
	if e.current.lockDelayMs >= e.cfg.LockDelayMs {
		e.lockPiece()
	}
}

func (e *Engine) canMoveDown() bool {
	if e.current == nil {
		return false
	}
	return fits(&e.pf, e.current.Kind, e.current.Rotation, e.current.Row+1, e.current.Col)
}

// Submit applies a single player command and returns whether it was
// accepted. No events are produced on the rejection path.
func (e *Engine) Submit(in Input) SubmitResult {
	if e.status != StatusPlaying {
		return SubmitResult{Reason: RejectNotPlaying}
	}
	if e.current == nil {
		return SubmitResult{Reason: RejectNoActivePiece}
	}

	switch in {
	case InputMoveLeft:
		return e.submitShift(-1)
	case InputMoveRight:
		return e.submitShift(1)
	case InputSoftDropOne:
		return e.submitSoftDrop()
	case InputHardDrop:
		return e.submitHardDrop()
	case InputRotateCW:
		return e.submitRotate(RotateCW)
	case InputRotateCCW:
		return e.submitRotate(RotateCCW)
	case InputHold:
		return e.submitHold()
	default:
		return SubmitResult{Reason: RejectCollision}
	}
}

func (e *Engine) submitShift(dcol int) SubmitResult {
	newCol := e.current.Col + dcol
	if !fits(&e.pf, e.current.Kind, e.current.Rotation, e.current.Row, newCol) {
		return SubmitResult{Reason: RejectCollision}
	}
	e.current.Col = newCol
	e.pendingIsRotation = false
	e.maybeResetLock()
	return SubmitResult{}
}

func (e *Engine) submitSoftDrop() SubmitResult {
	if !e.canMoveDown() {
		return SubmitResult{Reason: RejectCollision}
	}
	e.current.Row++
	e.pendingIsRotation = false
	e.score += SoftDropAward(1)
	return SubmitResult{}
}

func (e *Engine) submitHardDrop() SubmitResult {
	distance := 0
	for fits(&e.pf, e.current.Kind, e.current.Rotation, e.current.Row+distance+1, e.current.Col) {
		distance++
	}
	e.current.Row += distance
	if distance > 0 {
		e.pendingIsRotation = false
	}
	e.score += HardDropAward(distance)
	e.lockPiece()
	return SubmitResult{}
}

func (e *Engine) submitRotate(dir RotationDirection) SubmitResult {
	pose, ok := tryRotate(&e.pf, e.current, dir)
	if !ok {
		return SubmitResult{Reason: RejectCollision}
	}
	e.current.Row = pose.Row
	e.current.Col = pose.Col
	e.current.Rotation = pose.Rotation
	e.pendingIsRotation = true
	e.pendingRotationKickIx = pose.KickIndex
	e.maybeResetLock()
	return SubmitResult{}
}

func (e *Engine) submitHold() SubmitResult {
	if e.current.hasHeldThisTurn {
		return SubmitResult{Reason: RejectAlreadyHeld}
	}

	outgoing := e.current.Kind
	var incoming PieceKind
	if e.hold == nil {
		incoming = e.takeFromPreview()
	} else {
		incoming = *e.hold
	}
	held := outgoing
	e.hold = &held

	p := spawnPiece(incoming)
	p.hasHeldThisTurn = true
	e.current = p
	e.pendingIsRotation = false

	e.bus.emit(Event{Tag: EventHeld, From: outgoing, FromSet: true, To: incoming})

	if !pieceFits(&e.pf, e.current) {
		e.current = nil
		e.endGame(ReasonBlockOut)
	}
	return SubmitResult{}
}

// maybeResetLock resets the grounded lock timer after a successful
// lateral or rotational move, up to MaxLockResets times per piece
// (spec.md §4.7, invariant 8).
func (e *Engine) maybeResetLock() {
	if e.canMoveDown() {
		return
	}
	if e.current.lockResetsUsed >= e.cfg.MaxLockResets {
		return
	}
	e.current.lockDelayMs = 0
	e.current.lockResetsUsed++
}

// lockPiece runs the atomic locking sequence of spec.md §4.7: place,
// score, clear, spawn, each step emitting its event before the next
// begins.
func (e *Engine) lockPiece() {
	cells := e.current.AbsoluteCells()
	for _, c := range cells {
		if c.Row < 0 {
			e.endGame(ReasonLockOut)
			return
		}
	}

	kind := e.current.Kind
	tspin := TSpinNone
	if kind == KindT && e.pendingIsRotation {
		tspin = classifyTSpin(&e.pf, e.current.Rotation, e.current.Row, e.current.Col, e.pendingRotationKickIx)
	}

	e.pf.Place(cells, kind)
	e.bus.emit(Event{Tag: EventPieceLocked, Kind: kind, Cells: cells})

	rows := e.pf.FullRows()
	switch {
	case len(rows) > 0:
		clearKind := lineClearKind(len(rows))
		e.pf.ClearRows(rows)
		perfectClear := e.pf.IsEmpty()
		comboCount := e.combo

		awarded := Award(ClearAward{
			Kind:         clearKind,
			TSpin:        tspin,
			Level:        e.level,
			ComboCount:   comboCount,
			BackToBack:   e.backToBack,
			PerfectClear: perfectClear,
		})
		e.score += awarded
		e.lines += uint32(len(rows))

		oldLevel := e.level
		newLevel := LevelForLines(e.lines)
		if newLevel < e.cfg.StartingLevel {
			newLevel = e.cfg.StartingLevel
		}
		e.level = newLevel

		e.combo++
		e.backToBack = btbEligible(clearKind, tspin)

		e.bus.emit(Event{
			Tag:          EventLinesCleared,
			Rows:         rows,
			ClearKind:    clearKind,
			TSpin:        tspin,
			PerfectClear: perfectClear,
			Awarded:      awarded,
		})
		if e.level != oldLevel {
			e.bus.emit(Event{Tag: EventLevelUp, LevelFrom: oldLevel, LevelTo: e.level})
		}

	case tspin != TSpinNone:
		// A T-spin that clears no lines is still on the §4.8 award
		// table (T-spin Mini/Proper, 0 lines), but it isn't a
		// clearing lock, so it doesn't carry a combo bonus and it
		// breaks rather than extends the combo streak.
		awarded := Award(ClearAward{
			Kind:       ClearNone,
			TSpin:      tspin,
			Level:      e.level,
			BackToBack: e.backToBack,
		})
		e.score += awarded
		e.combo = 0
		e.backToBack = btbEligible(ClearNone, tspin)

		e.bus.emit(Event{
			Tag:       EventLinesCleared,
			ClearKind: ClearNone,
			TSpin:     tspin,
			Awarded:   awarded,
		})

	default:
		e.combo = 0
		e.backToBack = false
	}

	e.current = nil
	if e.status == StatusPlaying {
		e.spawnNext()
	}
}

// spawnNext takes the next kind off the preview queue and places it
// at its spawn pose, or ends the game with ReasonBlockOut if the
// spawn pose is already occupied (spec.md §4.7).
func (e *Engine) spawnNext() {
	kind := e.takeFromPreview()
	p := spawnPiece(kind)
	e.pendingIsRotation = false

	if !fits(&e.pf, p.Kind, p.Rotation, p.Row, p.Col) {
		e.current = nil
		e.endGame(ReasonBlockOut)
		return
	}

	e.current = p
	e.bus.emit(Event{Tag: EventSpawned, Kind: kind})
}

func (e *Engine) endGame(reason GameOverReason) {
	e.status = StatusGameOver
	e.bus.emit(Event{
		Tag:        EventEnded,
		FinalScore: e.score,
		FinalLevel: e.level,
		FinalLines: e.lines,
		TimeMs:     e.gameTimeMs,
	})
	e.bus.emit(Event{Tag: EventGameOver, Reason: reason})
}
