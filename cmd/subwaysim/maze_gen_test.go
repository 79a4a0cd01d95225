package main

import (
	"testing"

	"github.com/kriolyth/gv-subway/catalogue"
	"github.com/kriolyth/gv-subway/maze"
)

func TestGenerateMazeBorderIsWall(t *testing.T) {
	m := generateMaze(7, 12, 12, 0.35)
	for c := 0; c < 12; c++ {
		if m.Cells[c] != maze.CellWall || m.Cells[11*12+c] != maze.CellWall {
			t.Fatalf("top/bottom border not all Wall at col %d", c)
		}
	}
	for r := 0; r < 12; r++ {
		if m.Cells[r*12] != maze.CellWall || m.Cells[r*12+11] != maze.CellWall {
			t.Fatalf("left/right border not all Wall at row %d", r)
		}
	}
}

func TestGenerateMazePlacesEntranceAndTreasury(t *testing.T) {
	m := generateMaze(7, 12, 12, 0.35)
	foundEntrance, foundTreasury := false, false
	for _, mark := range m.Marks {
		if mark == catalogue.MarkEntrance {
			foundEntrance = true
		}
		if mark == catalogue.MarkTreasury {
			foundTreasury = true
		}
	}
	if !foundEntrance {
		t.Fatalf("expected an Entrance mark somewhere in the maze")
	}
	if !foundTreasury {
		t.Fatalf("expected a Treasury mark somewhere in the maze")
	}
}
