package maze

import (
	"testing"

	"github.com/kriolyth/gv-subway/catalogue"
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/griddetect"
	"github.com/kriolyth/gv-subway/intensity"
)

func testDetectionConfig() config.DetectionConfig {
	return config.DetectionConfig{
		DetectThreshold:    30,
		GridSensitivity:    15,
		SpikeThreshold:     40,
		InitialSeekSize:    12,
		WallFactorUniform:  15,
		WallFactorFlex:     25,
		PassUniformSpread:  40,
		IconSpreadUniform:  100,
	}
}

// buildUniformMazeImage renders a cols x rows grid of cellSize-pixel cells:
// dark grid lines, and a single dark wall cell at (wallRow, wallCol), all
// other interiors a flat mid-gray passage.
func buildUniformMazeImage(cols, rows, cellSize, wallRow, wallCol int) *intensity.Image {
	w := cols * cellSize
	h := rows * cellSize
	rgba := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			onLine := x%cellSize < 2 || y%cellSize < 2
			cellRow, cellCol := y/cellSize, x/cellSize
			v := byte(220)
			if onLine || (cellRow == wallRow && cellCol == wallCol) {
				v = 20
			}
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = v, v, v, 255
		}
	}
	return intensity.FromRGBA(w, h, rgba)
}

func TestClassifyGridWallVersusPass(t *testing.T) {
	cfg := testDetectionConfig()
	img := buildUniformMazeImage(6, 6, 24, 2, 3)
	grid := griddetect.Grid{Size: 24, RowOffset: 0, ColOffset: 0, RowCount: 6, ColCount: 6}

	m := ClassifyGrid(img, grid, cfg)
	if !m.IsValid() {
		t.Fatalf("expected a valid maze")
	}
	if got := m.Cells[2*6+3]; got != CellWall {
		t.Fatalf("cell (2,3) = %v, want Wall", got)
	}
	if got := m.Cells[0]; got != CellPass {
		t.Fatalf("cell (0,0) = %v, want Pass", got)
	}
}

func TestClassifyGridInvalidOnDegenerateGrid(t *testing.T) {
	cfg := testDetectionConfig()
	img := buildUniformMazeImage(2, 2, 10, 0, 0)
	grid := griddetect.Grid{}
	m := ClassifyGrid(img, grid, cfg)
	if m.IsValid() {
		t.Fatalf("expected an invalid maze for a zero-value grid")
	}
}

func TestGetMarkOutOfBoundsIsNone(t *testing.T) {
	m := &Maze{
		Placement: Placement{RowCount: 2, ColCount: 2},
		Cells:     []Cell{CellPass, CellPass, CellPass, CellPass},
		Marks:     []catalogue.Mark{catalogue.MarkNone, catalogue.MarkNone, catalogue.MarkNone, catalogue.MarkNone},
	}
	if got := m.GetMark(-1, 0); got != catalogue.MarkNone {
		t.Fatalf("GetMark out of bounds = %v, want MarkNone", got)
	}
	if got := m.GetMark(5, 5); got != catalogue.MarkNone {
		t.Fatalf("GetMark out of bounds = %v, want MarkNone", got)
	}
}
