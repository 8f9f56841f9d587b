// Package sim implements the fixed-timestep arena simulation.
package sim

import (
	"math/rand"

	"github.com/tomz197/shooty/internal/input"
	"github.com/tomz197/shooty/internal/object"
)

// Input is an alias for the input package's Intent type.
type Input = input.Intent

// State holds the full simulation: the ship, all spawned entities, and the
// global counters. One Step call owns all mutation for the tick; a render
// pass may read it between ticks.
type State struct {
	Ship      object.Body
	Bullets   []object.Projectile
	Crates    []object.Body
	Splinters []object.Projectile

	// CrateSpawnTime counts down to the next spawn attempt. It can go
	// negative, representing a backlog of pending spawns.
	CrateSpawnTime float64

	// BounceEdge selects the bounce boundary policy instead of wrap.
	BounceEdge bool

	rng *rand.Rand
}

// NewState creates a simulation with the ship at the arena center and a
// banked crate-spawn backlog. The seed drives all randomized generation,
// so equal seeds replay identically.
func NewState(seed int64) *State {
	return &State{
		Ship:           object.NewBody(0.5*Width, 0.5*Height),
		CrateSpawnTime: -CrateSpawnRate * SpawnBacklog,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Policy returns the active boundary policy.
func (s *State) Policy() BoundaryPolicy {
	if s.BounceEdge {
		return BounceEdges
	}
	return WrapEdges
}

// uniform draws a float uniformly from [lo, hi).
func (s *State) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// forEachBody visits every live body: ship, bullets, crates, splinters.
func (s *State) forEachBody(f func(*object.Body)) {
	f(&s.Ship)
	for i := range s.Bullets {
		f(&s.Bullets[i].Body)
	}
	for i := range s.Crates {
		f(&s.Crates[i])
	}
	for i := range s.Splinters {
		f(&s.Splinters[i].Body)
	}
}
