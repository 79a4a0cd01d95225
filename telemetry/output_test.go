package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputManagerDisabledWhenDirEmpty(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatalf("expected nil manager for empty dir")
	}
	if err := om.WriteRun(RunRecord{}); err != nil {
		t.Fatalf("nil manager WriteRun should no-op, got %v", err)
	}
}

func TestOutputManagerWritesRunsAndVisited(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	if err := om.WriteRun(RunRecord{Source: "test.png", GridSize: 20, RowCount: 11, ColCount: 11, Ticks: 50}); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	if err := om.WriteRun(RunRecord{Source: "test2.png", GridSize: 24, RowCount: 9, ColCount: 9, Ticks: 30}); err != nil {
		t.Fatalf("WriteRun (2nd): %v", err)
	}

	rows := []VisitedRecord{
		{Idx: 0, Row: 0, Col: 0, Cell: "Wall", Mark: "None", Visited: 0},
		{Idx: 128, Row: 6, Col: 8, Cell: "Entrance", Mark: "Entrance", Visited: 1},
	}
	if err := om.WriteVisited(rows); err != nil {
		t.Fatalf("WriteVisited: %v", err)
	}

	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, name := range []string{"runs.csv", "visited.csv"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("expected %s to be non-empty", name)
		}
	}
}
