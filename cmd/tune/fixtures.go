package main

import "github.com/kriolyth/gv-subway/intensity"

// fixture is one synthetic maze screenshot together with its known ground
// truth: true means Wall at that grid slot.
type fixture struct {
	img      *intensity.Image
	gridSize int
	rows     int
	cols     int
	wallAt   map[[2]int]bool
}

// buildFixtures renders a handful of synthetic uniform grids at different
// pitches and wall densities, used as CMA-ES's evaluation corpus.
func buildFixtures() []fixture {
	return []fixture{
		sparseWallsFixture(20, 11, 11, []int{5, 17, 33}),
		sparseWallsFixture(24, 9, 9, []int{0, 10, 20, 40, 60}),
		sparseWallsFixture(16, 14, 14, nil),
	}
}

// sparseWallsFixture builds a rows x cols grid of cellSize-pixel cells with
// dark grid lines, marking the given flat (row*cols+col) indices as wall
// cells (rendered as a uniformly dark interior) and all others as plain
// mid-gray passage.
func sparseWallsFixture(cellSize, rows, cols int, wallIdx []int) fixture {
	wallSet := make(map[int]bool, len(wallIdx))
	for _, i := range wallIdx {
		wallSet[i] = true
	}

	w := cols * cellSize
	h := rows * cellSize
	rgba := make([]byte, w*h*4)
	wallAt := make(map[[2]int]bool)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			onLine := x%cellSize < 2 || y%cellSize < 2
			row, col := y/cellSize, x/cellSize
			isWall := wallSet[row*cols+col]
			v := byte(210)
			if onLine || isWall {
				v = 25
			}
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = v, v, v, 255
			if isWall {
				wallAt[[2]int{row, col}] = true
			}
		}
	}

	return fixture{
		img:      intensity.FromRGBA(w, h, rgba),
		gridSize: cellSize,
		rows:     rows,
		cols:     cols,
		wallAt:   wallAt,
	}
}
