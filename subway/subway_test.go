package subway

import (
	"testing"

	"github.com/kriolyth/gv-subway/config"
)

func testConfig() config.SimulationConfig {
	return config.SimulationConfig{
		JumpProbability:    0.2,
		JumpMinMoveCount:   5,
		EntranceAbsorbTick: 20,
	}
}

// corridorField builds the three-cell corridor of S1: 128=Entrance,
// 127=Pass, 126=Pass, 125=Treasury, all else Wall.
func corridorField(t *testing.T) *Field {
	t.Helper()
	f := New(testConfig())
	f.SetField(128, CellEntrance)
	f.SetField(127, CellPass)
	f.SetField(126, CellPass)
	f.SetField(125, CellTreasury)
	return f
}

func TestThreeCellCorridor(t *testing.T) {
	f := corridorField(t)
	f.Init(false)

	if got := f.GetVisitedProbability(128); got != 1 {
		t.Fatalf("visited[128] = %v, want 1", got)
	}
	if got := f.movers[DirWest][127]; got != 1 {
		t.Fatalf("movers[West,127] = %v, want 1", got)
	}

	f.Step(1)
	if got := f.GetVisitedProbability(127); got != 1 {
		t.Fatalf("after step 1: visited[127] = %v, want 1", got)
	}
	if got := f.movers[DirWest][126]; got != 1 {
		t.Fatalf("after step 1: movers[West,126] = %v, want 1", got)
	}

	f.Step(2)
	if got := f.GetVisitedProbability(126); got != 1 {
		t.Fatalf("after step 2: visited[126] = %v, want 1", got)
	}
	if got := f.movers[DirWest][125]; got != 1 {
		t.Fatalf("after step 2: movers[West,125] = %v, want 1", got)
	}

	f.Step(3)
	if got := f.GetVisitedProbability(125); got != 1 {
		t.Fatalf("after step 3: visited[125] = %v, want 1", got)
	}
	for d := 0; d < 4; d++ {
		for c := 0; c < FlatSize; c++ {
			if f.movers[d][c] != 0 {
				t.Fatalf("after step 3: movers[%d,%d] = %v, want 0", d, c, f.movers[d][c])
			}
		}
	}
}

func TestLocalMovementAtPassCell(t *testing.T) {
	f := corridorField(t)

	nextIdx, prob := f.GetMovement(127, DirEast, 1)
	wantIdx := [4]int{126, 107, 128, 147}
	wantProb := [4]float64{1, 0, 0, 0}
	if nextIdx != wantIdx {
		t.Fatalf("nextIdx = %v, want %v", nextIdx, wantIdx)
	}
	if prob != wantProb {
		t.Fatalf("prob = %v, want %v", prob, wantProb)
	}
}

func TestAbsorptionAtTreasury(t *testing.T) {
	f := corridorField(t)

	nextIdx, prob := f.GetMovement(125, DirEast, 1)
	want := [4]int{125, 125, 125, 125}
	if nextIdx != want {
		t.Fatalf("nextIdx = %v, want %v", nextIdx, want)
	}
	for i, p := range prob {
		if p != 0 {
			t.Fatalf("prob[%d] = %v, want 0", i, p)
		}
	}
}

// loopField builds the 3x3 rectangular passage of S2: rows 4-6, cols 6-8
// (indices 86-88, 106-108, 126-128), with 127=Treasury, 128=Entrance, and
// the interior center 107 walled.
func loopField(t *testing.T) *Field {
	t.Helper()
	f := New(testConfig())
	loop := []int{86, 87, 88, 106, 108, 126, 127, 128}
	for _, idx := range loop {
		f.SetField(idx, CellPass)
	}
	f.SetField(127, CellTreasury)
	f.SetField(128, CellEntrance)
	return f
}

func TestRectangularLoop(t *testing.T) {
	f := loopField(t)
	f.Init(false)

	for tick := uint32(1); tick <= 3; tick++ {
		f.Step(tick)
	}
	if got := f.GetVisitedProbability(127); got != 0.5 {
		t.Fatalf("after step 1..3: visited[127] = %v, want 0.5", got)
	}
	if got := f.GetVisitedProbability(107); got != 0 {
		t.Fatalf("visited[107] = %v, want 0 (walled interior)", got)
	}

	for tick := uint32(4); tick <= 7; tick++ {
		f.Step(tick)
	}
	if got := f.GetVisitedProbability(127); got <= 0.5 {
		t.Fatalf("after step 4..7: visited[127] = %v, want > 0.5", got)
	}
	if got := f.GetVisitedProbability(107); got != 0 {
		t.Fatalf("visited[107] = %v, want 0 (walled interior)", got)
	}
}

func TestBorderAlwaysWall(t *testing.T) {
	f := New(testConfig())
	f.Init(false)
	for row := 0; row < Size; row++ {
		for _, col := range []int{0, Size - 1} {
			idx := ToIdx(row, col)
			if f.GetField(idx) != CellWall {
				t.Fatalf("border cell (%d,%d) = %v, want Wall", row, col, f.GetField(idx))
			}
		}
	}
	for col := 0; col < Size; col++ {
		for _, row := range []int{0, Size - 1} {
			idx := ToIdx(row, col)
			if f.GetField(idx) != CellWall {
				t.Fatalf("border cell (%d,%d) = %v, want Wall", row, col, f.GetField(idx))
			}
		}
	}
}

func TestIdxRoundTrip(t *testing.T) {
	for idx := 0; idx < FlatSize; idx++ {
		row, col := FromIdx(idx)
		if ToIdx(row, col) != idx {
			t.Fatalf("round trip failed for idx %d", idx)
		}
	}
}

func TestSetFieldIgnoresBorder(t *testing.T) {
	f := New(testConfig())
	f.SetField(ToIdx(0, 5), CellPass)
	if got := f.GetField(ToIdx(0, 5)); got != CellWall {
		t.Fatalf("border write should be ignored, got %v", got)
	}
}

func TestVisitedMonotonic(t *testing.T) {
	f := corridorField(t)
	f.Init(false)
	for tick := uint32(1); tick <= 3; tick++ {
		before := f.GetVisitedProbability(128)
		f.Step(tick)
		after := f.GetVisitedProbability(128)
		if after < before {
			t.Fatalf("visited[128] decreased from %v to %v at tick %d", before, after, tick)
		}
	}
}
