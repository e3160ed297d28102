package engine

// offset is a (row, col) displacement relative to a piece's origin.
// Row grows downward, matching spec.md's playfield convention.
type offset struct {
	dr, dc int
}

// shapeTable holds, for every (PieceKind, RotationState), the four
// occupied offsets of that orientation. Built once at init and never
// mutated afterward — rotation changes state, never shape storage
// (spec.md §9 design note).
var shapeTable = buildShapeTable()

func buildShapeTable() [7][4][4]offset {
	var t [7][4][4]offset

	set := func(k PieceKind, r RotationState, cells [4][2]int) {
		var os [4]offset
		for i, c := range cells {
			os[i] = offset{dr: c[0], dc: c[1]}
		}
		t[k][r] = os
	}

	// I: 4x4 bounding box.
	set(KindI, RotationR0, [4][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	set(KindI, RotationR1, [4][2]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}})
	set(KindI, RotationR2, [4][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}})
	set(KindI, RotationR3, [4][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}})

	// O: 2x2 bounding box, identical in every rotation (never leaves
	// R0 observably, per spec.md §3).
	for r := RotationState(0); r < 4; r++ {
		set(KindO, r, [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	}

	// T: 3x3 bounding box.
	set(KindT, RotationR0, [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}})
	set(KindT, RotationR1, [4][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 1}})
	set(KindT, RotationR2, [4][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 1}})
	set(KindT, RotationR3, [4][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 1}})

	// S: 3x3 bounding box.
	set(KindS, RotationR0, [4][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}})
	set(KindS, RotationR1, [4][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}})
	set(KindS, RotationR2, [4][2]int{{1, 1}, {1, 2}, {2, 0}, {2, 1}})
	set(KindS, RotationR3, [4][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}})

	// Z: 3x3 bounding box.
	set(KindZ, RotationR0, [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}})
	set(KindZ, RotationR1, [4][2]int{{0, 2}, {1, 1}, {1, 2}, {2, 1}})
	set(KindZ, RotationR2, [4][2]int{{1, 0}, {1, 1}, {2, 1}, {2, 2}})
	set(KindZ, RotationR3, [4][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 0}})

	// J: 3x3 bounding box.
	set(KindJ, RotationR0, [4][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}})
	set(KindJ, RotationR1, [4][2]int{{0, 1}, {0, 2}, {1, 1}, {2, 1}})
	set(KindJ, RotationR2, [4][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 2}})
	set(KindJ, RotationR3, [4][2]int{{0, 1}, {1, 1}, {2, 0}, {2, 1}})

	// L: 3x3 bounding box.
	set(KindL, RotationR0, [4][2]int{{0, 2}, {1, 0}, {1, 1}, {1, 2}})
	set(KindL, RotationR1, [4][2]int{{0, 1}, {1, 1}, {2, 1}, {2, 2}})
	set(KindL, RotationR2, [4][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 0}})
	set(KindL, RotationR3, [4][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}})

	return t
}

func shape(k PieceKind, r RotationState) [4]offset {
	return shapeTable[k][r]
}

// spawnOrigin returns the (row, col) of a freshly spawned piece's
// bounding-box origin, per the guideline centring spec.md §4.7 refers
// to ("column 3 or 4 per guideline, row 0 or -1 per shape").
func spawnOrigin(k PieceKind) (row, col int) {
	switch k {
	case KindO:
		return 0, 4
	case KindI:
		return -1, 3
	}
	return 0, 3
}

// kickOffset is a (dcol, drow) translation tried in order after a
// rotation that doesn't fit in place.
type kickOffset struct {
	dc, dr int
}

// kickKey identifies a single-step rotation transition.
type kickKey struct {
	from, to RotationState
}

var jlstzKicks = map[kickKey][5]kickOffset{
	{RotationR0, RotationR1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotationR1, RotationR0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{RotationR1, RotationR2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{RotationR2, RotationR1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotationR2, RotationR3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{RotationR3, RotationR2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotationR3, RotationR0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotationR0, RotationR3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[kickKey][5]kickOffset{
	{RotationR0, RotationR1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotationR1, RotationR0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{RotationR1, RotationR2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{RotationR2, RotationR1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotationR2, RotationR3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{RotationR3, RotationR2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotationR3, RotationR0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotationR0, RotationR3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// kicksFor returns the ordered offsets to try for the given kind and
// transition. O's table is empty: rotation is a no-op that always
// succeeds in place (spec.md §4.6).
func kicksFor(k PieceKind, from, to RotationState) []kickOffset {
	if k == KindO {
		return nil
	}
	key := kickKey{from, to}
	if k == KindI {
		if os, ok := iKicks[key]; ok {
			return os[:]
		}
		return nil
	}
	if os, ok := jlstzKicks[key]; ok {
		return os[:]
	}
	return nil
}
