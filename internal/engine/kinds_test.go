package engine

import "testing"

func TestPieceKindString(t *testing.T) {
	cases := map[PieceKind]string{KindI: "I", KindO: "O", KindT: "T", KindS: "S", KindZ: "Z", KindJ: "J", KindL: "L"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("PieceKind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := PieceKind(99).String(); got != "?" {
		t.Errorf("out-of-range PieceKind.String() = %q, want %q", got, "?")
	}
}

func TestPieceKindFromString(t *testing.T) {
	k, ok := PieceKindFromString("T")
	if !ok || k != KindT {
		t.Errorf("PieceKindFromString(T) = (%v, %v), want (KindT, true)", k, ok)
	}
	if _, ok := PieceKindFromString("Q"); ok {
		t.Error("PieceKindFromString(Q) unexpectedly succeeded")
	}
}

func TestNextRotationCycles(t *testing.T) {
	r := RotationR0
	for i := 0; i < 4; i++ {
		r = nextRotation(r, RotateCW)
	}
	if r != RotationR0 {
		t.Errorf("four CW rotations should return to R0, got %v", r)
	}

	r = RotationR0
	r = nextRotation(r, RotateCCW)
	if r != RotationR3 {
		t.Errorf("CCW from R0 = %v, want R3", r)
	}
}

func TestCellKindRoundTrip(t *testing.T) {
	for k := KindI; k <= KindL; k++ {
		c := cellForKind(k)
		got, ok := KindOfCell(c)
		if !ok || got != k {
			t.Errorf("KindOfCell(cellForKind(%v)) = (%v, %v), want (%v, true)", k, got, ok, k)
		}
	}
	if _, ok := KindOfCell(cellEmpty); ok {
		t.Error("KindOfCell(cellEmpty) unexpectedly reported a kind")
	}
}

func TestNextRotationInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected nextRotation to panic on an invalid direction")
		}
	}()
	nextRotation(RotationR0, RotationDirection(99))
}
