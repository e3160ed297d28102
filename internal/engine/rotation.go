package engine

// RotatedPose is the result of a successful try_rotate: the pose the
// piece should adopt, plus which kick offset (if any) was required.
// KickIndex is -1 when the in-place rotation fit without a kick.
type RotatedPose struct {
	Row, Col int
	Rotation RotationState
	KickIndex int
}

// tryRotate resolves a rotation request into a pose. It returns
// ok=false when neither the in-place rotation nor any pose in the kick
// table fits; the piece is left unchanged by the caller.
func tryRotate(pf *Playfield, p *ActivePiece, dir RotationDirection) (RotatedPose, bool) {
	to := nextRotation(p.Rotation, dir)

	if fits(pf, p.Kind, to, p.Row, p.Col) {
		return RotatedPose{Row: p.Row, Col: p.Col, Rotation: to, KickIndex: -1}, true
	}

	for i, k := range kicksFor(p.Kind, p.Rotation, to) {
		row := p.Row + k.dr
		col := p.Col + k.dc
		if fits(pf, p.Kind, to, row, col) {
			return RotatedPose{Row: row, Col: col, Rotation: to, KickIndex: i}, true
		}
	}

	return RotatedPose{}, false
}

// tCorner identifies one of the four cells diagonally adjacent to a
// T piece's centre (the 3x3 box's middle cell), relative to the
// piece's origin.
type tCorner int

const (
	cornerTL tCorner = iota
	cornerTR
	cornerBL
	cornerBR
)

var tCornerOffset = [4]offset{
	cornerTL: {dr: 0, dc: 0},
	cornerTR: {dr: 0, dc: 2},
	cornerBL: {dr: 2, dc: 0},
	cornerBR: {dr: 2, dc: 2},
}

// frontCorners names the two corners on the side of the T's flat face
// (the side opposite the nub) for each rotation.
var frontCorners = [4][2]tCorner{
	RotationR0: {cornerBL, cornerBR}, // nub points up
	RotationR1: {cornerTL, cornerBL}, // nub points right
	RotationR2: {cornerTL, cornerTR}, // nub points down
	RotationR3: {cornerTR, cornerBR}, // nub points left
}

// TSpinKind classifies a T piece lock that immediately followed a
// rotation, per spec.md §4.6.
type TSpinKind int

const (
	TSpinNone TSpinKind = iota
	TSpinMini
	TSpinProper
)

// classifyTSpin inspects the four corners around a T piece's centre
// at (row, col, rotation). kickIndex must be >= 0 (i.e. the lock's
// rotation required a kick) for anything other than TSpinNone.
func classifyTSpin(pf *Playfield, rotation RotationState, row, col, kickIndex int) TSpinKind {
	if kickIndex < 0 {
		return TSpinNone
	}

	occupied := [4]bool{}
	count := 0
	for c := tCorner(0); c < 4; c++ {
		o := tCornerOffset[c]
		if pf.IsOccupied(row+o.dr, col+o.dc) {
			occupied[c] = true
			count++
		}
	}
	if count < 3 {
		return TSpinNone
	}

	front := frontCorners[rotation]
	if occupied[front[0]] && occupied[front[1]] {
		return TSpinProper
	}
	return TSpinMini
}
