package telemetry

// RunRecord summarizes one end-to-end detection+simulation run.
type RunRecord struct {
	Source        string `csv:"source"`
	GridSize      int    `csv:"grid_size"`
	RowCount      int    `csv:"row_count"`
	ColCount      int    `csv:"col_count"`
	FlexGrid      bool   `csv:"flex_grid"`
	WallCells     int    `csv:"wall_cells"`
	PassCells     int    `csv:"pass_cells"`
	EntranceFound bool   `csv:"entrance_found"`
	TreasuryFound bool   `csv:"treasury_found"`
	Ticks         int    `csv:"ticks"`
}

// VisitedRecord is one lattice cell's final accumulated state, written as a
// row of the visited-probability snapshot.
type VisitedRecord struct {
	Idx     int     `csv:"idx"`
	Row     int     `csv:"row"`
	Col     int     `csv:"col"`
	Cell    string  `csv:"cell"`
	Mark    string  `csv:"mark"`
	Visited float64 `csv:"visited"`
}
