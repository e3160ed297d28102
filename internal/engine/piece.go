package engine

// ActivePiece is the falling piece the scheduler owns exclusively.
// Its lifetime begins at spawn and ends at lock or at a hold swap.
type ActivePiece struct {
	Kind     PieceKind
	Row, Col int
	Rotation RotationState

	lockDelayMs     int
	lockResetsUsed  int
	hasHeldThisTurn bool
	spawnRow        int
}

// cellPos is an absolute (row, col) pair on the playfield.
type cellPos struct {
	Row, Col int
}

// AbsoluteCells returns the four occupied cells of the piece in its
// current pose. O rotation changes the stored rotation but never the
// absolute cells (spec.md §4.2, invariant 6).
func (p *ActivePiece) AbsoluteCells() [4]cellPos {
	return absoluteCellsFor(p.Kind, p.Rotation, p.Row, p.Col)
}

func absoluteCellsFor(k PieceKind, r RotationState, row, col int) [4]cellPos {
	offs := shape(k, r)
	var cells [4]cellPos
	for i, o := range offs {
		cells[i] = cellPos{Row: row + o.dr, Col: col + o.dc}
	}
	return cells
}

func spawnPiece(k PieceKind) *ActivePiece {
	row, col := spawnOrigin(k)
	return &ActivePiece{
		Kind:     k,
		Row:      row,
		Col:      col,
		Rotation: RotationR0,
		spawnRow: row,
	}
}

func (p *ActivePiece) clone() *ActivePiece {
	cp := *p
	return &cp
}
