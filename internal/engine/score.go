package engine

import "math"

// LineClearKind classifies a lock's line clear by count, independent
// of T-spin status.
type LineClearKind int

const (
	ClearNone LineClearKind = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
)

func lineClearKind(n int) LineClearKind {
	switch n {
	case 1:
		return ClearSingle
	case 2:
		return ClearDouble
	case 3:
		return ClearTriple
	case 4:
		return ClearTetris
	default:
		return ClearNone
	}
}

var baseAward = map[LineClearKind]int{
	ClearSingle: 100,
	ClearDouble: 300,
	ClearTriple: 500,
	ClearTetris: 800,
}

var tSpinAward = [3]map[LineClearKind]int{
	TSpinNone: nil,
	TSpinMini: {
		ClearNone: 100,
	},
	TSpinProper: {
		ClearNone:   400,
		ClearSingle: 800,
		ClearDouble: 1200,
		ClearTriple: 1600,
	},
}

var perfectClearBonus = map[int]int{1: 800, 2: 1200, 3: 1800, 4: 2000}

// btbEligible reports whether a clear of this shape extends a
// back-to-back streak (spec.md §4.8): a proper T-spin (including one
// that clears no lines), or a Tetris. T-spin Minis are not eligible.
func btbEligible(kind LineClearKind, tspin TSpinKind) bool {
	if tspin == TSpinProper {
		return true
	}
	return kind == ClearTetris
}

// ClearAward bundles the inputs ScoreEngine.Award needs to compute a
// single lock's line-clear score.
type ClearAward struct {
	Kind         LineClearKind
	TSpin        TSpinKind
	Level        int
	ComboCount   int // number of preceding consecutive clearing locks
	BackToBack   bool
	PerfectClear bool
}

// Award computes the points a single lock's line clear earns, per
// spec.md §4.8. All integer arithmetic, floor-toward-zero on the
// back-to-back multiplier.
func Award(a ClearAward) uint64 {
	var base int
	if a.TSpin != TSpinNone {
		table := tSpinAward[a.TSpin]
		if v, ok := table[a.Kind]; ok {
			base = v
		}
	} else {
		base = baseAward[a.Kind]
	}

	base *= a.Level

	if a.BackToBack && btbEligible(a.Kind, a.TSpin) {
		base = base * 3 / 2
	}

	total := base

	if a.ComboCount >= 1 {
		total += 50 * a.ComboCount * a.Level
	}

	if a.PerfectClear && a.Kind != ClearNone {
		lines := int(a.Kind)
		if lines > 4 {
			lines = 4
		}
		total += perfectClearBonus[lines] * a.Level
	}

	if total < 0 {
		return 0
	}
	return uint64(total)
}

// SoftDropAward is +1 per cell, never multiplied by level
// (spec.md §4.8).
func SoftDropAward(cells int) uint64 {
	if cells < 0 {
		return 0
	}
	return uint64(cells)
}

// HardDropAward is +2 per cell, never multiplied by level.
func HardDropAward(cells int) uint64 {
	if cells < 0 {
		return 0
	}
	return uint64(2 * cells)
}

// LevelForLines computes level = min(99, 1 + floor(lines/10))
// (spec.md §3, invariant 4).
func LevelForLines(totalLines uint32) int {
	level := 1 + int(totalLines/10)
	if level > 99 {
		level = 99
	}
	return level
}

// DropIntervalMs derives the gravity cadence for a level: level 1 is
// 1000ms, level N is max(50, 1000 * 0.8^(N-1)) (spec.md §4.8, open
// question (a) — the explicit monotone formula the spec pins, not
// the teacher's linear curve).
func DropIntervalMs(level int) int {
	if level < 1 {
		level = 1
	}
	ms := 1000 * math.Pow(0.8, float64(level-1))
	if ms < 50 {
		ms = 50
	}
	return int(ms)
}
