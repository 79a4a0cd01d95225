package subway

// neighborOffsets maps each absolute Direction to its (drow, dcol) step.
var neighborOffsets = [4][2]int{
	DirNorth: {-1, 0},
	DirEast:  {0, 1},
	DirSouth: {1, 0},
	DirWest:  {0, -1},
}

// neighborIdx returns the saturating neighbor of idx in the given absolute
// direction: arithmetic clamps at the lattice edges rather than wrapping.
func neighborIdx(idx int, dir Direction) int {
	row, col := FromIdx(idx)
	off := neighborOffsets[dir]
	row = clampInt(row+off[0], 0, Size-1)
	col = clampInt(col+off[1], 0, Size-1)
	return ToIdx(row, col)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// policyResult is the four rotated-frame candidates the local movement
// policy returns: index 0=forward, 1=right, 2=back, 3=left, relative to the
// direction of entry.
type policyResult struct {
	nextIdx [4]int
	prob    [4]float64
}

// localMovementPolicy implements §4.7's local movement policy.
func (f *Field) localMovementPolicy(idx int, inDir Direction, moveCount int) policyResult {
	kind := f.cells[idx]

	absorbing := kind == CellWall ||
		(kind == CellEntrance && moveCount >= f.cfg.EntranceAbsorbTick) ||
		kind == CellTreasury || kind == CellSubtreasury
	if absorbing {
		return policyResult{nextIdx: [4]int{idx, idx, idx, idx}}
	}

	// inDir is the direction arrived FROM; the actual direction of travel
	// (and so "forward") is its opposite (§4.7, verified against S3).
	travelDir := inDir.opposite()
	forwardDir := travelDir
	rightDir := (travelDir + 1) % 4
	backDir := (travelDir + 2) % 4
	leftDir := (travelDir + 3) % 4

	nextIdx := [4]int{
		neighborIdx(idx, forwardDir),
		neighborIdx(idx, rightDir),
		neighborIdx(idx, backDir),
		neighborIdx(idx, leftDir),
	}

	walls := [4]bool{
		f.cells[nextIdx[0]] == CellWall,
		f.cells[nextIdx[1]] == CellWall,
		f.cells[nextIdx[2]] == CellWall,
		f.cells[nextIdx[3]] == CellWall,
	}

	if moveCount == 0 && kind == CellEntrance {
		return policyResult{nextIdx: nextIdx, prob: uniformOverOpen(walls)}
	}

	return policyResult{nextIdx: nextIdx, prob: directionPreference(walls)}
}

func uniformOverOpen(walls [4]bool) [4]float64 {
	var prob [4]float64
	open := 0
	for _, w := range walls {
		if !w {
			open++
		}
	}
	if open == 0 {
		return prob
	}
	share := 1.0 / float64(open)
	for i, w := range walls {
		if !w {
			prob[i] = share
		}
	}
	return prob
}

// directionPreference implements the direction preference table of §4.7.
// F=forward, R=right, B=back, L=left; true means "wall".
func directionPreference(walls [4]bool) [4]float64 {
	f, r, b, l := walls[0], walls[1], walls[2], walls[3]

	switch {
	case f && r && b && l:
		return [4]float64{0, 0, 0, 0}
	case f && r && b && !l:
		return [4]float64{0, 0, 0, 1}
	case f && r && !b && l:
		return [4]float64{0, 0, 1, 0}
	case f && !r && b && l:
		return [4]float64{0, 1, 0, 0}
	case !f && r && b && l:
		return [4]float64{1, 0, 0, 0}
	case f && r && !l:
		return [4]float64{0, 0, 0, 1}
	case f && !r && l:
		return [4]float64{0, 0.8, 0.2, 0}
	case f && !r && !l:
		return [4]float64{0, 0.8, 0, 0.2}
	case !f && r:
		return [4]float64{1, 0, 0, 0}
	case !f && !r && l:
		return [4]float64{0.85, 0.15, 0, 0}
	case !f && !r && !b && !l:
		return [4]float64{0.85, 0.15, 0, 0}
	case !f && !r && b && !l:
		return [4]float64{0, 0, 0, 0}
	default:
		return [4]float64{0, 0, 0, 0}
	}
}
