package agentsim

import "github.com/kriolyth/gv-subway/subway"

// AgentPos is the lattice cell an agent currently occupies.
type AgentPos struct {
	Idx int
}

// AgentDir is the direction an agent arrived from at its current cell (the
// opposite of the direction it last traveled in); it is the "came from"
// direction fed into the local movement policy on the agent's next step.
type AgentDir struct {
	Dir subway.Direction
}

// AgentAlive marks whether an agent still moves. Agents absorbed into a
// Treasury/Subtreasury/timed-out Entrance stop being queried further but are
// kept as entities so their final resting cell remains part of the tally.
type AgentAlive struct {
	Alive bool
}
