package engine

import "testing"

func TestFitsAtSpawnForEveryKind(t *testing.T) {
	var pf Playfield
	for k := KindI; k <= KindL; k++ {
		row, col := spawnOrigin(k)
		if !fits(&pf, k, RotationR0, row, col) {
			t.Errorf("kind %v does not fit at its own spawn pose on an empty field", k)
		}
	}
}

func TestFitsRejectsWallOverlap(t *testing.T) {
	var pf Playfield
	// I piece at R1 occupies a single column (origin col + 2); an origin
	// col of -3 puts that column at -1, off the left wall.
	if fits(&pf, KindI, RotationR1, 0, -3) {
		t.Error("expected I piece in col -1 not to fit")
	}
}

func TestFitsRejectsOccupiedCell(t *testing.T) {
	var pf Playfield
	pf.cells[1][3] = cellForKind(KindO)
	if fits(&pf, KindT, RotationR0, 0, 2) {
		t.Error("expected T piece to collide with the pre-placed O cell")
	}
}

func TestPieceFitsWrapper(t *testing.T) {
	var pf Playfield
	p := spawnPiece(KindT)
	if !pieceFits(&pf, p) {
		t.Error("freshly spawned T piece should fit an empty field")
	}
}
