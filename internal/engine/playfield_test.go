package engine

import "testing"

func TestIsOccupiedTreatsOutOfBoundsAsSolid(t *testing.T) {
	var pf Playfield
	if !pf.IsOccupied(-1, 0) {
		t.Error("row -1 should be occupied (off the top)")
	}
	if !pf.IsOccupied(0, -1) {
		t.Error("col -1 should be occupied (off the left wall)")
	}
	if !pf.IsOccupied(PlayfieldHeight, 0) {
		t.Error("row at height should be occupied (below the floor)")
	}
	if pf.IsOccupied(0, 0) {
		t.Error("a freshly constructed field should be empty at (0,0)")
	}
}

func TestPlacePanicsOnOccupiedCell(t *testing.T) {
	var pf Playfield
	pf.cells[5][5] = cellForKind(KindT)

	defer func() {
		if recover() == nil {
			t.Error("expected Place onto an occupied cell to panic")
		}
	}()
	pf.Place([4]cellPos{{5, 5}, {5, 6}, {5, 7}, {5, 8}}, KindI)
}

func TestFullRowsAndClearRowsPreserveOrder(t *testing.T) {
	var pf Playfield
	for col := 0; col < PlayfieldWidth; col++ {
		pf.cells[18][col] = cellForKind(KindL)
		pf.cells[19][col] = cellForKind(KindJ)
	}
	pf.cells[17][0] = cellForKind(KindS) // a single marker cell above the full rows

	rows := pf.FullRows()
	if len(rows) != 2 || rows[0] != 18 || rows[1] != 19 {
		t.Fatalf("FullRows() = %v, want [18 19]", rows)
	}

	cleared := pf.ClearRows(rows)
	if cleared != 2 {
		t.Errorf("ClearRows returned %d, want 2", cleared)
	}
	if pf.cells[19][0] != cellForKind(KindS) {
		t.Errorf("surviving row did not shift down correctly: cell(19,0) = %v, want %v", pf.cells[19][0], cellForKind(KindS))
	}
	for row := 0; row < 18; row++ {
		for col := 0; col < PlayfieldWidth; col++ {
			if pf.cells[row][col] != cellEmpty {
				t.Errorf("expected row %d to be empty after clear, found %v at col %d", row, pf.cells[row][col], col)
			}
		}
	}
}

func TestIsEmpty(t *testing.T) {
	var pf Playfield
	if !pf.IsEmpty() {
		t.Error("a freshly constructed field should be empty")
	}
	pf.cells[0][0] = cellForKind(KindI)
	if pf.IsEmpty() {
		t.Error("field with one occupied cell should not be empty")
	}
}
