package engine

// fits is the pure collision test used by both the rotation system
// and the scheduler: true iff every absolute cell of the given pose
// is inside the grid and empty. No mutation, no allocation
// (spec.md §4.5).
func fits(pf *Playfield, kind PieceKind, rotation RotationState, row, col int) bool {
	cells := absoluteCellsFor(kind, rotation, row, col)
	for _, c := range cells {
		if pf.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

func pieceFits(pf *Playfield, p *ActivePiece) bool {
	return fits(pf, p.Kind, p.Rotation, p.Row, p.Col)
}
