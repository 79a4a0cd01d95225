package agentsim

import (
	"testing"

	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/subway"
)

func testConfig() config.SimulationConfig {
	return config.SimulationConfig{
		JumpProbability:    0.2,
		JumpMinMoveCount:   5,
		EntranceAbsorbTick: 20,
	}
}

// corridorField mirrors the three-cell corridor seed scenario: a single
// deterministic path from Entrance to Treasury.
func corridorField() *subway.Field {
	f := subway.New(testConfig())
	f.SetField(128, subway.CellEntrance)
	f.SetField(127, subway.CellPass)
	f.SetField(126, subway.CellPass)
	f.SetField(125, subway.CellTreasury)
	return f
}

func TestValidatorConvergesOnCorridor(t *testing.T) {
	f := corridorField()
	v := NewValidator(f, 1, 200)
	v.Run(4)

	if got := v.EmpiricalVisited(125); got < 0.9 {
		t.Fatalf("empirical visited[125] = %v, want close to 1 (deterministic corridor)", got)
	}
}

func TestValidatorAgreesWithAnalyticField(t *testing.T) {
	f := corridorField()
	f.Init(false)
	for tick := uint32(1); tick <= 3; tick++ {
		f.Step(tick)
	}
	analytic := f.GetVisitedProbability(125)

	f2 := corridorField()
	v := NewValidator(f2, 7, 500)
	v.Run(3)
	empirical := v.EmpiricalVisited(125)

	diff := analytic - empirical
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.2 {
		t.Fatalf("empirical (%v) diverged from analytic (%v) by more than 0.2", empirical, analytic)
	}
}
