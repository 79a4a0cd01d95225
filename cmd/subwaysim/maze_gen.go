package main

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/kriolyth/gv-subway/catalogue"
	"github.com/kriolyth/gv-subway/maze"
)

// generateMaze builds a synthetic maze of the given size using simplex
// noise as a cave-generation heuristic: cells below wallThreshold become
// Wall, the rest Pass, with the border forced to Wall, an Entrance placed on
// the first open interior cell in raster order and a Treasury on the last.
func generateMaze(seed int64, rows, cols int, wallThreshold float64) *maze.Maze {
	noise := opensimplex.NewNormalized(seed)

	cells := make([]maze.Cell, rows*cols)
	marks := make([]catalogue.Mark, rows*cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				cells[idx] = maze.CellWall
				continue
			}
			v := noise.Eval2(float64(r)/4.0, float64(c)/4.0)
			if v < wallThreshold {
				cells[idx] = maze.CellWall
			} else {
				cells[idx] = maze.CellPass
			}
			marks[idx] = catalogue.MarkNone
		}
	}

	entrance := firstOpenCell(cells, rows, cols, false)
	treasury := firstOpenCell(cells, rows, cols, true)
	if entrance >= 0 {
		cells[entrance] = maze.CellPass
		marks[entrance] = catalogue.MarkEntrance
	}
	if treasury >= 0 && treasury != entrance {
		cells[treasury] = maze.CellPass
		marks[treasury] = catalogue.MarkTreasury
	}

	return &maze.Maze{
		Placement: maze.Placement{RowCount: rows, ColCount: cols, CellSize: 0},
		Cells:     cells,
		Marks:     marks,
	}
}

// firstOpenCell scans interior cells in raster order (or its reverse, for
// the farthest-corner Treasury) and returns the first non-wall cell's flat
// index, or -1 if every interior cell is Wall.
func firstOpenCell(cells []maze.Cell, rows, cols int, reverse bool) int {
	n := rows * cols
	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		r, c := idx/cols, idx%cols
		if r > 0 && r < rows-1 && c > 0 && c < cols-1 && cells[idx] != maze.CellWall {
			return idx
		}
	}
	return -1
}
