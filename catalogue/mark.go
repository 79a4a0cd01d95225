// Package catalogue holds the closed icon enumeration and the static
// reference-descriptor table the BRIEF matcher searches against.
package catalogue

// Mark identifies the icon class recognized on a passage cell.
type Mark int

const (
	MarkNone Mark = iota
	MarkWall
	MarkEntrance
	MarkTreasury
	MarkSubtreasury
	MarkFinalBoss
	MarkOtherBoss
	MarkLadder
	MarkTrap
	MarkLuck
	MarkRaiseWall
	MarkDirection
	MarkScarecrow
	MarkFountain
)

var markNames = map[Mark]string{
	MarkNone:        "None",
	MarkWall:        "Wall",
	MarkEntrance:    "Entrance",
	MarkTreasury:    "Treasury",
	MarkSubtreasury: "Subtreasury",
	MarkFinalBoss:   "FinalBoss",
	MarkOtherBoss:   "OtherBoss",
	MarkLadder:      "Ladder",
	MarkTrap:        "Trap",
	MarkLuck:        "Luck",
	MarkRaiseWall:   "RaiseWall",
	MarkDirection:   "Direction",
	MarkScarecrow:   "Scarecrow",
	MarkFountain:    "Fountain",
}

// String returns the human-readable name of the mark, for overlay tooltips
// and diagnostics.
func (m Mark) String() string {
	if name, ok := markNames[m]; ok {
		return name
	}
	return "Unknown"
}
