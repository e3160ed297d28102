package engine

import "fmt"

const (
	// PlayfieldWidth and PlayfieldHeight are the fixed, immutable grid
	// dimensions (spec.md §3).
	PlayfieldWidth  = 10
	PlayfieldHeight = 20
)

// Playfield is the fixed-size grid of locked cells. Row 0 is top, row
// PlayfieldHeight-1 is bottom. Mutated only by the scheduler (piece
// lock, line collapse) and by an explicit host reset.
type Playfield struct {
	cells [PlayfieldHeight][PlayfieldWidth]Cell
}

// IsOccupied is boundary-checked: out-of-bounds reads as occupied, so
// collision logic can treat the wall/floor as solid (spec.md §4.1).
func (pf *Playfield) IsOccupied(row, col int) bool {
	if row < 0 || row >= PlayfieldHeight || col < 0 || col >= PlayfieldWidth {
		return true
	}
	return pf.cells[row][col] != cellEmpty
}

// Cell returns the raw tag at (row, col). Out-of-range access is a
// programmer error (spec.md §7 ProgrammerError) — callers must only
// call this within the field's bounds.
func (pf *Playfield) Cell(row, col int) Cell {
	if row < 0 || row >= PlayfieldHeight || col < 0 || col >= PlayfieldWidth {
		panic(fmt.Sprintf("engine: out-of-range cell access (%d,%d)", row, col))
	}
	return pf.cells[row][col]
}

// Place writes kind's tag into every given cell. Every cell must be
// in range and empty; violating that is a programmer error — callers
// (the scheduler) are expected to have checked fits() first.
func (pf *Playfield) Place(cells [4]cellPos, kind PieceKind) {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= PlayfieldHeight || c.Col < 0 || c.Col >= PlayfieldWidth {
			panic(fmt.Sprintf("engine: place out of range at (%d,%d)", c.Row, c.Col))
		}
		if pf.cells[c.Row][c.Col] != cellEmpty {
			panic(fmt.Sprintf("engine: place onto occupied cell (%d,%d)", c.Row, c.Col))
		}
		pf.cells[c.Row][c.Col] = cellForKind(kind)
	}
}

// FullRows returns, ascending, the indices of every row whose columns
// are all non-zero.
func (pf *Playfield) FullRows() []int {
	var rows []int
	for row := 0; row < PlayfieldHeight; row++ {
		full := true
		for col := 0; col < PlayfieldWidth; col++ {
			if pf.cells[row][col] == cellEmpty {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearRows removes the given rows and shifts survivors down so the
// top of the field gains empty rows. Relative order of survivors is
// preserved. Returns the count cleared. This is the only mutation
// that changes row geometry (spec.md §4.1).
func (pf *Playfield) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}
	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		cleared[r] = true
	}

	var next [PlayfieldHeight][PlayfieldWidth]Cell
	destRow := PlayfieldHeight - 1
	for row := PlayfieldHeight - 1; row >= 0; row-- {
		if cleared[row] {
			continue
		}
		next[destRow] = pf.cells[row]
		destRow--
	}
	pf.cells = next
	return len(rows)
}

// IsEmpty is true iff every cell is 0.
func (pf *Playfield) IsEmpty() bool {
	for row := 0; row < PlayfieldHeight; row++ {
		for col := 0; col < PlayfieldWidth; col++ {
			if pf.cells[row][col] != cellEmpty {
				return false
			}
		}
	}
	return true
}

func (pf *Playfield) reset() {
	*pf = Playfield{}
}
