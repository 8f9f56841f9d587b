package sim

import (
	"math"

	"github.com/tomz197/shooty/internal/object"
	"github.com/tomz197/shooty/internal/physics"
)

// coincidentEpsilon guards resolvePair against two bodies with (near)
// coincident centers, where the impulse math would divide by zero.
const coincidentEpsilon = 1e-9

// resolveBulletHits handles destructive bullet/crate collisions.
//
// Each bullet destroys at most the first crate (in collection order) within
// HitDist of it; the crate bursts into four splinters. Detection runs
// against a stable snapshot: marked bullets and crates are removed only
// after the full scan.
func (s *State) resolveBulletHits() {
	if len(s.Bullets) == 0 || len(s.Crates) == 0 {
		return
	}

	deadBullets := make([]bool, len(s.Bullets))
	deadCrates := make([]bool, len(s.Crates))

	for b := range s.Bullets {
		for c := range s.Crates {
			if deadCrates[c] {
				continue
			}
			if physics.WithinRange(s.Bullets[b].Body.Pos, s.Crates[c].Pos, HitDist) {
				deadBullets[b] = true
				deadCrates[c] = true
				s.burstCrate(s.Crates[c], s.Bullets[b].Body.Vel)
				break
			}
		}
	}

	s.Bullets = pruneProjectiles(s.Bullets, deadBullets)
	s.Crates = pruneBodies(s.Crates, deadCrates)
}

// burstCrate spawns four splinters from a destroyed crate, one kicked along
// each of +x/-x/+y/-y, with randomized spin and lifetime.
func (s *State) burstCrate(crate object.Body, bulletVel physics.Vec2) {
	crate.Vel = crate.Vel.Add(bulletVel.Scale(SplinterInherit))

	const d = SplinterOffset
	const dv = SplinterKick
	kicks := [4][4]float64{
		{d, 0, dv, 0},
		{-d, 0, -dv, 0},
		{0, d, 0, dv},
		{0, -d, 0, -dv},
	}
	for _, k := range kicks {
		body := crate.Pushed(k[0], k[1], k[2], k[3],
			s.uniform(0, 2*math.Pi),
			s.uniform(-SplinterMaxSpin, SplinterMaxSpin))
		s.Splinters = append(s.Splinters, object.NewProjectile(body, s.uniform(SplinterTTLMin, SplinterTTLMax)))
	}
}

// resolveCratePairs runs elastic collision over every unordered crate pair,
// each pair exactly once per tick in index order. Dense clusters may keep a
// little residual overlap; it re-resolves next tick.
func (s *State) resolveCratePairs() {
	for i := 0; i < len(s.Crates); i++ {
		for j := i + 1; j < len(s.Crates); j++ {
			resolvePair(&s.Crates[i], &s.Crates[j])
		}
	}
}

// resolveShipCrates bounces the ship off every crate, ship always on the
// first side of the pair.
func (s *State) resolveShipCrates() {
	for i := range s.Crates {
		resolvePair(&s.Ship, &s.Crates[i])
	}
}

// resolvePair applies an equal-mass elastic impulse plus positional
// de-penetration between two bodies closer than CollideRadius.
//
// The relative velocity projected onto the separation vector is transferred
// symmetrically, then both bodies are pushed apart along the separation
// vector by half the overlap each. Coincident centers are skipped so no
// non-finite value can enter position or velocity.
func resolvePair(a, b *object.Body) {
	d := a.Pos.Sub(b.Pos)
	distSq := d.LengthSq()
	if distSq >= CollideRadius*CollideRadius || distSq < coincidentEpsilon {
		return
	}

	dv := d.Scale(a.Vel.Sub(b.Vel).Dot(d) / distSq)
	a.Vel = a.Vel.Sub(dv)
	b.Vel = b.Vel.Add(dv)

	dist := math.Sqrt(distSq)
	dp := d.Scale(0.5 * (CollideRadius/dist - 1))
	a.Pos = a.Pos.Add(dp)
	b.Pos = b.Pos.Sub(dp)
}

// pruneProjectiles removes the marked elements, preserving order.
func pruneProjectiles(ps []object.Projectile, dead []bool) []object.Projectile {
	kept := ps[:0]
	for i := range ps {
		if !dead[i] {
			kept = append(kept, ps[i])
		}
	}
	return kept
}

// pruneBodies removes the marked elements, preserving order.
func pruneBodies(bs []object.Body, dead []bool) []object.Body {
	kept := bs[:0]
	for i := range bs {
		if !dead[i] {
			kept = append(kept, bs[i])
		}
	}
	return kept
}
