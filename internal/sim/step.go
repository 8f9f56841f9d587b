package sim

import (
	"math"

	"github.com/tomz197/shooty/internal/object"
	"github.com/tomz197/shooty/internal/physics"
)

// Step advances the simulation by one fixed tick.
//
// Per-tick order: spawn check, lifetime decay and pruning, ship control
// (including edge-triggered fire/force-spawn/toggle), kinematic integration,
// boundary handling, bullet/crate destruction, crate/crate pairs, ship/crate
// pairs.
func (s *State) Step(in Input) {
	s.trySpawnCrate()

	s.Bullets = decayAndPrune(s.Bullets)
	s.Splinters = decayAndPrune(s.Splinters)

	s.controlShip(in)

	s.forEachBody(func(b *object.Body) {
		b.Integrate(Delta)
	})

	policy := s.Policy()
	s.forEachBody(func(b *object.Body) {
		ApplyBoundary(policy, b)
	})

	s.resolveBulletHits()
	s.resolveCratePairs()
	s.resolveShipCrates()
}

// decayAndPrune decrements every projectile's lifetime by one tick and
// removes all that expired, in one order-preserving in-place pass.
func decayAndPrune(ps []object.Projectile) []object.Projectile {
	kept := ps[:0] // reuse backing array
	for i := range ps {
		ps[i].TTL -= Delta
		if !ps[i].Expired() {
			kept = append(kept, ps[i])
		}
	}
	return kept
}

// controlShip applies one tick of input to the ship and handles the
// edge-triggered intents.
func (s *State) controlShip(in Input) {
	if in.Fire {
		s.fireBullet()
	}
	if in.ForceSpawn {
		s.CrateSpawnTime -= CrateSpawnRate
	}
	if in.ToggleBounce {
		s.BounceEdge = !s.BounceEdge
	}

	if in.RotateLeft {
		s.Ship.Rot -= RotSpeed * Delta
	}
	if in.RotateRight {
		s.Ship.Rot += RotSpeed * Delta
	}

	var wish physics.Vec2
	if in.Forward {
		wish.X += 1
	}
	if in.Backward {
		wish.X -= 1
	}
	if in.StrafeUp {
		wish.Y += 1
	}
	if in.StrafeDown {
		wish.Y -= 1
	}
	wish = wish.Normalized()
	dir := s.Ship.Facing()

	if in.Brake {
		// Cancel only the velocity that is not forward along the facing.
		forward := math.Max(s.Ship.Vel.Dot(dir), 0)
		cancel := s.Ship.Vel.Sub(dir.Scale(forward))
		step := Acceleration * Delta
		if l := cancel.Length(); l <= step {
			s.Ship.Vel = s.Ship.Vel.Sub(cancel)
		} else {
			s.Ship.Vel = s.Ship.Vel.Sub(cancel.Scale(step / l))
		}
	}

	if !wish.IsZero() {
		accel := dir.Rotate(wish).Scale(Acceleration)
		s.Ship.Vel = s.Ship.Vel.Add(accel.Scale(Delta))
	}
}

// fireBullet spawns a bullet ahead of the ship, inheriting its velocity.
func (s *State) fireBullet() {
	dir := s.Ship.Facing()
	b := object.Body{
		Pos: s.Ship.Pos.Add(dir.Scale(BulletOffset)),
		Vel: s.Ship.Vel.Add(dir.Scale(BulletSpeed)),
		Rot: s.Ship.Rot,
	}
	s.Bullets = append(s.Bullets, object.NewProjectile(b, s.uniform(BulletTTLMin, BulletTTLMax)))
}
