package subway

// Init clears visited and movers, then seeds every Entrance cell: visited is
// set to 1.0 and its movement distribution at tick 0 (entering from South)
// is written directly into movers (§4.6).
func (f *Field) Init(jumpy bool) {
	f.jumpy = jumpy
	f.clearVisitedAndMovers()

	for idx, kind := range f.cells {
		if kind != CellEntrance {
			continue
		}
		f.visited[idx] = 1.0
		result := f.localMovementPolicy(idx, DirSouth, 0)
		travelDir := DirSouth.opposite()
		for k := 0; k < 4; k++ {
			if result.prob[k] == 0 || result.nextIdx[k] == idx {
				continue
			}
			absoluteDir := (travelDir + Direction(k)) % 4
			f.movers[absoluteDir][result.nextIdx[k]] += result.prob[k]
		}
	}
}

// GetMovement exposes the local movement policy directly, for the S3/S4
// boundary-scenario tests and for the overlay viewer's debug draw.
func (f *Field) GetMovement(idx int, inDir Direction, moveCount int) ([4]int, [4]float64) {
	result := f.localMovementPolicy(idx, inDir, moveCount)
	return result.nextIdx, result.prob
}

// Step advances movers across the lattice by one tick (§4.7). Reads only
// from the tick's initial movers; writes only to a staging buffer until the
// final swap, so two paths converging on the same cell in the same tick add
// rather than clobber.
func (f *Field) Step(tick uint32) {
	var nextMovers [4][FlatSize]float64

	for c := 0; c < FlatSize; c++ {
		var sum float64
		for d := 0; d < 4; d++ {
			sum += f.movers[d][c]
		}
		f.visited[c] += sum
	}

	jumpActive := f.jumpy && int(tick) >= f.cfg.JumpMinMoveCount
	jumpP := f.cfg.JumpProbability

	for c := 0; c < FlatSize; c++ {
		if !isInterior(c) {
			continue
		}
		for d := 0; d < 4; d++ {
			mass := f.movers[d][c]
			if mass <= 0 {
				continue
			}
			inDir := Direction(d).opposite()
			result := f.localMovementPolicy(c, inDir, int(tick))

			for k := 0; k < 4; k++ {
				p := result.prob[k]
				if p <= 0 || result.nextIdx[k] == c {
					continue
				}
				outDir := (Direction(k) + Direction(d)) % 4

				if !jumpActive {
					nextMovers[outDir][result.nextIdx[k]] += p * mass
					continue
				}

				jumpIdx := f.jumpNeighbor(c, outDir)
				ordinaryShare := (1 - jumpP) * p * mass
				jumpShare := jumpP * p * mass
				nextMovers[outDir][result.nextIdx[k]] += ordinaryShare
				if jumpIdx != c {
					nextMovers[outDir][jumpIdx] += jumpShare
				} else {
					nextMovers[outDir][result.nextIdx[k]] += jumpShare
				}
			}
		}
	}

	f.movers = nextMovers
}

// jumpNeighbor computes the saturating two-cell-ahead position in absolute
// direction dir, used by the optional jumpy mode (§4.7).
func (f *Field) jumpNeighbor(idx int, dir Direction) int {
	once := neighborIdx(idx, dir)
	return neighborIdx(once, dir)
}
