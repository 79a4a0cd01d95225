// Package maze classifies each cell of a detected grid as Wall or Pass and,
// for passage cells, recognizes an icon mark via the BRIEF matcher.
package maze

import (
	"github.com/kriolyth/gv-subway/brief"
	"github.com/kriolyth/gv-subway/catalogue"
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/griddetect"
	"github.com/kriolyth/gv-subway/intensity"
)

// Cell is the closed enumeration of cell kinds a detector can assign.
type Cell int

const (
	CellWall Cell = iota
	CellPass
)

// Placement records where a classified grid sits and how big its cells are,
// enough information to center it inside the Subway Field.
type Placement struct {
	RowOffset, ColOffset int
	RowCount, ColCount   int
	CellSize             int // 0 for a flex grid (no uniform pitch)
}

// Maze is the classified grid: cell kinds and icon marks in row-major order,
// plus the placement used to build it.
type Maze struct {
	Placement Placement
	Cells     []Cell
	Marks     []catalogue.Mark
}

// IsValid reports whether the maze was built with consistent array lengths
// and a non-degenerate placement.
func (m *Maze) IsValid() bool {
	n := m.Placement.RowCount * m.Placement.ColCount
	return n > 0 && len(m.Cells) == n && len(m.Marks) == n
}

// GetMark returns the mark at (row, col), or MarkNone if out of range (§7).
func (m *Maze) GetMark(row, col int) catalogue.Mark {
	if row < 0 || col < 0 || row >= m.Placement.RowCount || col >= m.Placement.ColCount {
		return catalogue.MarkNone
	}
	return m.Marks[row*m.Placement.ColCount+col]
}

type cellRect struct {
	x0, y0, x1, y1 int
}

// ClassifyGrid classifies a uniformly detected grid's cells.
func ClassifyGrid(img *intensity.Image, grid griddetect.Grid, cfg config.DetectionConfig) *Maze {
	if !grid.Valid() {
		return &Maze{}
	}
	inset := 1 + grid.Size/15
	rects := make([]cellRect, 0, grid.RowCount*grid.ColCount)
	for r := 0; r < grid.RowCount; r++ {
		for c := 0; c < grid.ColCount; c++ {
			x0 := grid.ColOffset + c*grid.Size + inset
			y0 := grid.RowOffset + r*grid.Size + inset
			x1 := grid.ColOffset + (c+1)*grid.Size - inset
			y1 := grid.RowOffset + (r+1)*grid.Size - inset
			rects = append(rects, cellRect{x0, y0, x1, y1})
		}
	}
	placement := Placement{
		RowOffset: grid.RowOffset, ColOffset: grid.ColOffset,
		RowCount: grid.RowCount, ColCount: grid.ColCount,
		CellSize: grid.Size,
	}
	return classify(img, placement, rects, grid.Size*grid.Size, cfg.WallFactorUniform, true, cfg)
}

// ClassifyFlexGrid classifies a flexible grid's cells.
func ClassifyFlexGrid(img *intensity.Image, flex griddetect.FlexGrid, cfg config.DetectionConfig) *Maze {
	if !flex.Valid() {
		return &Maze{}
	}
	rowCount := len(flex.Rows) - 1
	colCount := len(flex.Cols) - 1
	if rowCount < 1 || colCount < 1 {
		return &Maze{}
	}
	rects := make([]cellRect, 0, rowCount*colCount)
	for r := 0; r < rowCount; r++ {
		for c := 0; c < colCount; c++ {
			rects = append(rects, cellRect{flex.Cols[c], flex.Rows[r], flex.Cols[c+1], flex.Rows[r+1]})
		}
	}
	placement := Placement{
		RowOffset: flex.Rows[0], ColOffset: flex.Cols[0],
		RowCount: rowCount, ColCount: colCount,
		CellSize: 0,
	}
	return classify(img, placement, rects, flex.CellSize*flex.CellSize, cfg.WallFactorFlex, false, cfg)
}

func classify(img *intensity.Image, placement Placement, rects []cellRect, cellArea, wallFactor int, uniform bool, cfg config.DetectionConfig) *Maze {
	n := len(rects)
	cells := make([]Cell, n)
	marks := make([]catalogue.Mark, n)

	refPatch, refW, refH := extractPatch(img, rects[0])

	bestEntrance, bestEntranceDist := -1, 1<<30
	bestTreasury, bestTreasuryDist := -1, 1<<30

	for i, rect := range rects {
		patch, w, h := extractPatch(img, rect)
		min, max := minMax(patch)

		if max-min < float64(cfg.PassUniformSpread) {
			cells[i] = CellPass
			marks[i] = catalogue.MarkNone
			continue
		}

		sad := sumAbsDiff(patch, w, h, refPatch, refW, refH)
		if float64(sad) < float64(wallFactor*cellArea) {
			cells[i] = CellWall
			marks[i] = catalogue.MarkNone
			continue
		}

		cells[i] = CellPass

		iconEligible := !uniform || max-min > float64(cfg.IconSpreadUniform)
		if !iconEligible {
			marks[i] = catalogue.MarkNone
			continue
		}

		resized := resizeTo8x8(patch, w, h)
		fv := brief.Build(resized, 8, 8)
		mark, dist := brief.Classify(fv)

		if dist > cfg.DetectThreshold || mark == catalogue.MarkWall {
			marks[i] = catalogue.MarkNone
			continue
		}

		switch mark {
		case catalogue.MarkEntrance:
			if dist < bestEntranceDist {
				bestEntranceDist = dist
				bestEntrance = i
			}
			marks[i] = catalogue.MarkEntrance
		case catalogue.MarkTreasury:
			if dist < bestTreasuryDist {
				bestTreasuryDist = dist
				bestTreasury = i
			}
			marks[i] = catalogue.MarkTreasury
		default:
			marks[i] = mark
		}
	}

	// Entrance and Treasury are candidates: only the single best-scoring cell
	// in the whole maze keeps the mark; duplicates are suppressed (§4.5).
	for i := range marks {
		if marks[i] == catalogue.MarkEntrance && i != bestEntrance {
			marks[i] = catalogue.MarkNone
		}
		if marks[i] == catalogue.MarkTreasury && i != bestTreasury {
			marks[i] = catalogue.MarkNone
		}
	}

	return &Maze{Placement: placement, Cells: cells, Marks: marks}
}

func extractPatch(img *intensity.Image, r cellRect) ([]float64, int, int) {
	w := r.x1 - r.x0
	h := r.y1 - r.y0
	if w <= 0 || h <= 0 {
		return []float64{0}, 1, 1
	}
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := clamp(r.x0+x, 0, img.Width()-1)
			py := clamp(r.y0+y, 0, img.Height()-1)
			out[y*w+x] = img.At(px, py)
		}
	}
	return out, w, h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minMax(v []float64) (float64, float64) {
	min, max := v[0], v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// sumAbsDiff compares two patches pixelwise, resampling b onto a's grid with
// nearest-neighbor lookup if dimensions differ.
func sumAbsDiff(a []float64, aw, ah int, b []float64, bw, bh int) int {
	sum := 0.0
	for y := 0; y < ah; y++ {
		for x := 0; x < aw; x++ {
			bx := x * bw / aw
			by := y * bh / ah
			if bx >= bw {
				bx = bw - 1
			}
			if by >= bh {
				by = bh - 1
			}
			d := a[y*aw+x] - b[by*bw+bx]
			if d < 0 {
				d = -d
			}
			sum += d
		}
	}
	return int(sum)
}

// resizeTo8x8 nearest-neighbor resamples a patch down/up to 8x8 before BRIEF
// construction, which does its own smooth Catmull-Rom resize to 24x24.
func resizeTo8x8(patch []float64, w, h int) []float64 {
	out := make([]float64, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sx := x * w / 8
			sy := y * h / 8
			if sx >= w {
				sx = w - 1
			}
			if sy >= h {
				sy = h - 1
			}
			out[y*8+x] = patch[sy*w+sx]
		}
	}
	return out
}
