// Command subwaysim is a headless evaluator: it generates a synthetic maze,
// runs the flow stepper for a fixed number of ticks, and writes a visited-
// probability snapshot plus a run summary to an output directory.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/maze"
	"github.com/kriolyth/gv-subway/subway"
	"github.com/kriolyth/gv-subway/telemetry"
)

func main() {
	seed := flag.Int64("seed", 42, "Simplex noise seed for maze generation")
	rows := flag.Int("rows", 14, "Maze rows (including border)")
	cols := flag.Int("cols", 14, "Maze cols (including border)")
	wallThreshold := flag.Float64("wall-threshold", 0.35, "Noise value below which a cell is Wall")
	ticks := flag.Int("ticks", 60, "Number of simulation ticks to run")
	jumpy := flag.Bool("jumpy", false, "Enable the 2-cell jump movement mode")
	configPath := flag.String("config", "", "Config YAML file (empty = embedded defaults)")
	outputDir := flag.String("output", "", "Output directory for run telemetry (empty = skip)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	m := generateMaze(*seed, *rows, *cols, *wallThreshold)

	field := subway.New(cfg.Simulation)
	field.ApplyMaze(m)
	field.Init(*jumpy)
	for t := uint32(1); t <= uint32(*ticks); t++ {
		field.Step(t)
	}

	wallCells, passCells := 0, 0
	entranceFound, treasuryFound := false, false
	for i := range m.Cells {
		if m.Cells[i] == maze.CellWall {
			wallCells++
		} else {
			passCells++
		}
	}
	for r := 0; r < m.Placement.RowCount; r++ {
		for c := 0; c < m.Placement.ColCount; c++ {
			switch m.GetMark(r, c).String() {
			case "Entrance":
				entranceFound = true
			case "Treasury":
				treasuryFound = true
			}
		}
	}

	fmt.Printf("generated %dx%d maze: %d wall cells, %d pass cells, entrance=%v treasury=%v\n",
		m.Placement.RowCount, m.Placement.ColCount, wallCells, passCells, entranceFound, treasuryFound)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to open output: %v", err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		log.Printf("failed to write config: %v", err)
	}
	runRecord := telemetry.RunRecord{
		Source:        fmt.Sprintf("synthetic-seed-%d", *seed),
		GridSize:      0,
		RowCount:      m.Placement.RowCount,
		ColCount:      m.Placement.ColCount,
		FlexGrid:      true,
		WallCells:     wallCells,
		PassCells:     passCells,
		EntranceFound: entranceFound,
		TreasuryFound: treasuryFound,
		Ticks:         *ticks,
	}
	if err := om.WriteRun(runRecord); err != nil {
		log.Printf("failed to write run record: %v", err)
	}

	var rows2 []telemetry.VisitedRecord
	for idx := 0; idx < subway.FlatSize; idx++ {
		v := field.GetVisitedProbability(idx)
		if v == 0 {
			continue
		}
		row, col := subway.FromIdx(idx)
		rows2 = append(rows2, telemetry.VisitedRecord{
			Idx:     idx,
			Row:     row,
			Col:     col,
			Cell:    fieldCellName(field.GetField(idx)),
			Visited: v,
		})
	}
	if err := om.WriteVisited(rows2); err != nil {
		log.Printf("failed to write visited snapshot: %v", err)
	}
	if *outputDir != "" {
		fmt.Printf("telemetry written to %s\n", om.Dir())
	}
}

func fieldCellName(c subway.Cell) string {
	switch c {
	case subway.CellWall:
		return "Wall"
	case subway.CellPass:
		return "Pass"
	case subway.CellEntrance:
		return "Entrance"
	case subway.CellTreasury:
		return "Treasury"
	case subway.CellSubtreasury:
		return "Subtreasury"
	default:
		return "Unknown"
	}
}
