// Package agentsim cross-checks the analytic flow stepper in subway with a
// Monte-Carlo population of discrete ECS agents sampled from the same local
// movement policy, the way a fuzz harness validates a closed-form model.
package agentsim

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/kriolyth/gv-subway/subway"
)

// Validator walks a population of discrete agents across a Subway Field
// using the field's own local movement policy, sampled stochastically
// instead of propagated as exact probability mass.
type Validator struct {
	field *subway.Field
	rng   *rand.Rand
	jumpy bool

	world         *ecs.World
	agentMapper   ecs.Map3[AgentPos, AgentDir, AgentAlive]
	agentFilter   ecs.Filter3[AgentPos, AgentDir, AgentAlive]
	visitCounts   [subway.FlatSize]int
	agentsSpawned int
}

// NewValidator seeds perEntrance agents at every Entrance cell, each placed
// on a neighbor drawn at random from that entrance's initial movement split,
// so the agents fan out over its open directions in proportion to their
// probability on average.
func NewValidator(field *subway.Field, seed int64, perEntrance int) *Validator {
	world := ecs.NewWorld()
	v := &Validator{
		field: field,
		rng:   rand.New(rand.NewSource(seed)),
		world: world,
		agentMapper: ecs.NewMap3[AgentPos, AgentDir, AgentAlive](world),
		agentFilter: ecs.NewFilter3[AgentPos, AgentDir, AgentAlive](world),
	}
	v.spawn(perEntrance)
	return v
}

func (v *Validator) spawn(perEntrance int) {
	for idx := 0; idx < subway.FlatSize; idx++ {
		if v.field.GetField(idx) != subway.CellEntrance {
			continue
		}
		nextIdx, prob := v.field.GetMovement(idx, subway.DirSouth, 0)
		for n := 0; n < perEntrance; n++ {
			dest, dir := pickWeighted(v.rng, nextIdx, prob, idx, subway.DirSouth)
			pos := AgentPos{Idx: dest}
			ad := AgentDir{Dir: dir}
			alive := AgentAlive{Alive: true}
			v.agentMapper.NewEntity(&pos, &ad, &alive)
			v.visitCounts[idx]++
			v.visitCounts[dest]++
			v.agentsSpawned++
		}
	}
}

// pickWeighted samples one of the four rotated-frame candidates according to
// prob, falling back to staying at origin (an absorbing or dead-end result)
// when all weights are zero.
func pickWeighted(rng *rand.Rand, nextIdx [4]int, prob [4]float64, origin int, inDir subway.Direction) (int, subway.Direction) {
	total := prob[0] + prob[1] + prob[2] + prob[3]
	if total <= 0 {
		return origin, inDir
	}
	r := rng.Float64() * total
	acc := 0.0
	for k := 0; k < 4; k++ {
		acc += prob[k]
		if r < acc {
			// outDir is this step's absolute travel direction, mirroring
			// subway.Field.Step's outDir; the direction arrived from at the
			// destination is its opposite.
			travelDir := inDir.Opposite()
			outDir := (subway.Direction(k) + travelDir) % 4
			return nextIdx[k], outDir.Opposite()
		}
	}
	return nextIdx[3], inDir
}

// Step advances every living agent by one tick, sampling its next cell from
// the field's local movement policy at moveCount = tick.
func (v *Validator) Step(tick int) {
	query := v.agentFilter.Query()
	type pending struct {
		entity ecs.Entity
		pos    AgentPos
		dir    AgentDir
	}
	var moves []pending
	for query.Next() {
		pos, dir, alive := query.Get()
		if !alive.Alive {
			continue
		}
		moves = append(moves, pending{entity: query.Entity(), pos: *pos, dir: *dir})
	}

	for _, m := range moves {
		nextIdx, prob := v.field.GetMovement(m.pos.Idx, m.dir.Dir, tick)
		dest, outDir := pickWeighted(v.rng, nextIdx, prob, m.pos.Idx, m.dir.Dir)

		posPtr, dirPtr, alivePtr := v.agentMapper.Get(m.entity)
		posPtr.Idx = dest
		dirPtr.Dir = outDir
		if dest == m.pos.Idx {
			alivePtr.Alive = false
			continue
		}
		v.visitCounts[dest]++
	}
}

// Run advances the simulation for the given number of ticks.
func (v *Validator) Run(ticks int) {
	for t := 1; t <= ticks; t++ {
		v.Step(t)
	}
}

// EmpiricalVisited returns the Monte-Carlo visit frequency for idx,
// normalized by the total number of agents spawned, comparable to
// subway.Field.GetVisitedProbability.
func (v *Validator) EmpiricalVisited(idx int) float64 {
	if v.agentsSpawned == 0 {
		return 0
	}
	return float64(v.visitCounts[idx]) / float64(v.agentsSpawned)
}
