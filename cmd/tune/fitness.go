package main

import (
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/griddetect"
	"github.com/kriolyth/gv-subway/maze"
)

// Evaluator scores a DetectionConfig by how many cells it misclassifies
// across the fixture corpus, plus a large penalty for failing to detect a
// grid at all.
type Evaluator struct {
	fixtures []fixture
}

// NewEvaluator builds an Evaluator over the standard fixture corpus.
func NewEvaluator() *Evaluator {
	return &Evaluator{fixtures: buildFixtures()}
}

const missedGridPenalty = 1000.0

// Evaluate returns the total misclassification count (to be minimized) for
// the given detection config across every fixture.
func (e *Evaluator) Evaluate(cfg config.DetectionConfig) float64 {
	total := 0.0
	for _, fx := range e.fixtures {
		grid := griddetect.DetectGrid(fx.img, cfg)
		if !grid.Valid() || grid.RowCount != fx.rows || grid.ColCount != fx.cols {
			total += missedGridPenalty
			continue
		}

		m := maze.ClassifyGrid(fx.img, grid, cfg)
		if !m.IsValid() {
			total += missedGridPenalty
			continue
		}

		for r := 0; r < fx.rows; r++ {
			for c := 0; c < fx.cols; c++ {
				wantWall := fx.wallAt[[2]int{r, c}]
				gotWall := m.Cells[r*fx.cols+c] == maze.CellWall
				if wantWall != gotWall {
					total++
				}
			}
		}
	}
	return total
}
