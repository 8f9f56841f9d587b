package sim

import (
	"math"

	"github.com/tomz197/shooty/internal/object"
	"github.com/tomz197/shooty/internal/physics"
)

// trySpawnCrate runs the per-tick spawn check and countdown decay.
//
// When the countdown has reached zero, a uniformly random candidate position
// is drawn; if it lands within SpawnClearance of the ship it is rejected
// without resetting the countdown, otherwise one crate spawns and a spawn
// interval is added back (additively, so backlog accumulated while the cap
// froze the countdown is preserved). The countdown only ticks downward while
// the crate count is below the cap.
func (s *State) trySpawnCrate() {
	if s.CrateSpawnTime <= 0 {
		pos := physics.Vec2{
			X: s.uniform(0, Width),
			Y: s.uniform(0, Height),
		}
		if physics.DistanceSq(s.Ship.Pos, pos) >= SpawnClearance*SpawnClearance {
			s.CrateSpawnTime += CrateSpawnRate
			s.Crates = append(s.Crates, object.Body{
				Pos: pos,
				Vel: physics.Vec2{
					X: s.uniform(-CrateMaxSpeed, CrateMaxSpeed),
					Y: s.uniform(-CrateMaxSpeed, CrateMaxSpeed),
				},
				Rot:  s.uniform(0, 2*math.Pi),
				RotV: s.uniform(-CrateMaxSpin, CrateMaxSpin),
			})
		}
	}

	if len(s.Crates) < CrateLimit {
		s.CrateSpawnTime -= Delta
	}
}
