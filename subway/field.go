// Package subway implements the fixed 20x20 simulation lattice and the
// probabilistic flow stepper that accumulates per-cell visit probability.
package subway

import (
	"github.com/kriolyth/gv-subway/catalogue"
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/maze"
)

// Size is the fixed lattice dimension on each axis.
const Size = 20

// FlatSize is the total number of cells.
const FlatSize = Size * Size

// Cell is the closed enumeration of lattice cell kinds (§6).
type Cell int

const (
	CellWall Cell = iota
	CellPass
	CellEntrance
	CellTreasury
	CellSubtreasury
)

// Direction is a 4-valued cyclic enumeration with arithmetic (a+b) mod 4.
type Direction int

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
)

func (d Direction) opposite() Direction {
	return (d + 2) % 4
}

// Opposite returns the reverse of d, exported for callers outside the
// package (e.g. agentsim's Monte-Carlo cross-check) that need to track
// travel direction across cells the same way the stepper does.
func (d Direction) Opposite() Direction {
	return d.opposite()
}

// Field is the fixed 20x20 lattice. Border cells are permanently Wall.
// Field exclusively owns cells, visited and movers (§3).
type Field struct {
	cells   [FlatSize]Cell
	visited [FlatSize]float64
	movers  [4][FlatSize]float64

	jumpy bool
	cfg   config.SimulationConfig
}

// New creates a Field reset to all-Wall, using the given simulation config.
func New(cfg config.SimulationConfig) *Field {
	f := &Field{cfg: cfg}
	f.Reset()
	return f
}

// ToIdx converts (row, col) to a flat index.
func ToIdx(row, col int) int {
	return row*Size + col
}

// FromIdx converts a flat index back to (row, col).
func FromIdx(idx int) (int, int) {
	return idx / Size, idx % Size
}

func isInterior(idx int) bool {
	row, col := FromIdx(idx)
	return row > 0 && row < Size-1 && col > 0 && col < Size-1
}

// Reset zeros everything to all-Wall, including the border.
func (f *Field) Reset() {
	for i := range f.cells {
		f.cells[i] = CellWall
	}
	f.clearVisitedAndMovers()
}

func (f *Field) clearVisitedAndMovers() {
	for i := range f.visited {
		f.visited[i] = 0
	}
	for d := range f.movers {
		for i := range f.movers[d] {
			f.movers[d][i] = 0
		}
	}
}

// SetField writes a cell kind, restricted to the interior; out-of-interior
// writes (including the border) are silently ignored (§7).
func (f *Field) SetField(idx int, cell Cell) {
	if idx < 0 || idx >= FlatSize || !isInterior(idx) {
		return
	}
	f.cells[idx] = cell
}

// GetField returns the cell kind at idx.
func (f *Field) GetField(idx int) Cell {
	if idx < 0 || idx >= FlatSize {
		return CellWall
	}
	return f.cells[idx]
}

// GetVisitedProbability returns the accumulated expected visit count for a
// cell. It is not clamped to 1 (§3, §5).
func (f *Field) GetVisitedProbability(idx int) float64 {
	if idx < 0 || idx >= FlatSize {
		return 0
	}
	return f.visited[idx]
}

// ApplyMaze resets the field, then centers m inside the 20x20 lattice and
// writes its cells and marks (§6: apply_to_subway resets all prior
// non-border cells to Wall before writing, §8 invariant 7).
func (f *Field) ApplyMaze(m *maze.Maze) {
	f.Reset()
	if !m.IsValid() {
		return
	}
	rowOffset := (Size - m.Placement.RowCount) / 2
	colOffset := (Size - m.Placement.ColCount) / 2
	for r := 0; r < m.Placement.RowCount; r++ {
		for c := 0; c < m.Placement.ColCount; c++ {
			subwayIdx := ToIdx(r+rowOffset, c+colOffset)
			cell := m.Cells[r*m.Placement.ColCount+c]
			mark := m.Marks[r*m.Placement.ColCount+c]
			f.SetField(subwayIdx, cellKind(cell, mark))
		}
	}
}

func cellKind(cell maze.Cell, mark catalogue.Mark) Cell {
	if cell == maze.CellWall {
		return CellWall
	}
	switch mark {
	case catalogue.MarkEntrance:
		return CellEntrance
	case catalogue.MarkTreasury:
		return CellTreasury
	case catalogue.MarkSubtreasury:
		return CellSubtreasury
	default:
		return CellPass
	}
}
