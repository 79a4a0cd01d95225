// Package imageproc is the facade a host calls into: load a frame, detect
// its grid, classify its maze. It wires together intensity, griddetect and
// maze behind the single external surface described for the Image
// Processor.
package imageproc

import (
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/griddetect"
	"github.com/kriolyth/gv-subway/intensity"
	"github.com/kriolyth/gv-subway/logging"
	"github.com/kriolyth/gv-subway/maze"
)

// Processor holds one frame's Intensity Image and the detection config used
// to interpret it.
type Processor struct {
	img   *intensity.Image
	cfg   config.DetectionConfig
	debug bool
}

// New builds a Processor from a raw RGBA frame. When debug is true,
// diagnostic strings are written to the debug channel (logging.Logf).
func New(w, h int, rgba []byte, cfg config.DetectionConfig, debug bool) *Processor {
	p := &Processor{cfg: cfg, debug: debug}
	p.FromRGBASlice(w, h, rgba)
	return p
}

// FromRGBASlice (re)initializes the Processor's Intensity Image from a raw
// RGBA frame, replacing whatever frame it held before.
func (p *Processor) FromRGBASlice(w, h int, rgba []byte) {
	p.img = intensity.FromRGBA(w, h, rgba)
	if p.debug {
		logging.Logf("imageproc: loaded %dx%d frame", w, h)
	}
}

// Width returns the current frame's width in pixels.
func (p *Processor) Width() int {
	if p.img == nil {
		return 0
	}
	return p.img.Width()
}

// Height returns the current frame's height in pixels.
func (p *Processor) Height() int {
	if p.img == nil {
		return 0
	}
	return p.img.Height()
}

// GetImageData exports the current frame's normalized Intensity Image back
// to a grayscale RGBA buffer.
func (p *Processor) GetImageData() []byte {
	if p.img == nil {
		return nil
	}
	return p.img.GetImageData()
}

// DetectGrid runs uniform grid detection on the current frame.
func (p *Processor) DetectGrid() griddetect.Grid {
	grid := griddetect.DetectGrid(p.img, p.cfg)
	if p.debug {
		logging.Logf("imageproc: detect_grid size=%d rows=%d cols=%d valid=%v",
			grid.Size, grid.RowCount, grid.ColCount, grid.Valid())
	}
	return grid
}

// DetectFlexGrid runs flexible (irregular pitch) grid detection on the
// current frame.
func (p *Processor) DetectFlexGrid() griddetect.FlexGrid {
	flex := griddetect.DetectFlexGrid(p.img, p.cfg)
	if p.debug {
		logging.Logf("imageproc: detect_flex_grid rows=%d cols=%d valid=%v",
			len(flex.Rows), len(flex.Cols), flex.Valid())
	}
	return flex
}

// DetectMaze classifies a previously detected uniform Grid's cells.
func (p *Processor) DetectMaze(grid griddetect.Grid) *maze.Maze {
	m := maze.ClassifyGrid(p.img, grid, p.cfg)
	if p.debug {
		logging.Logf("imageproc: detect_maze valid=%v cells=%d", m.IsValid(), len(m.Cells))
	}
	return m
}

// DetectFlexMaze classifies a previously detected FlexGrid's cells.
func (p *Processor) DetectFlexMaze(flex griddetect.FlexGrid) *maze.Maze {
	m := maze.ClassifyFlexGrid(p.img, flex, p.cfg)
	if p.debug {
		logging.Logf("imageproc: detect_flex_maze valid=%v cells=%d", m.IsValid(), len(m.Cells))
	}
	return m
}

// DebugDraw writes a one-line per-row ASCII rendering of a classified Maze
// to the debug channel: '#' for Wall, '.' for a plain Pass cell, and the
// mark's initial letter otherwise. It is a diagnostic aid, not a renderer.
func (p *Processor) DebugDraw(m *maze.Maze) {
	if !p.debug || !m.IsValid() {
		return
	}
	for r := 0; r < m.Placement.RowCount; r++ {
		row := make([]byte, m.Placement.ColCount)
		for c := 0; c < m.Placement.ColCount; c++ {
			cell := m.Cells[r*m.Placement.ColCount+c]
			mark := m.GetMark(r, c)
			switch {
			case cell == maze.CellWall:
				row[c] = '#'
			case mark.String() == "None":
				row[c] = '.'
			default:
				row[c] = mark.String()[0]
			}
		}
		logging.Logf("%s", string(row))
	}
}
