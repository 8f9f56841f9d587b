// Package object defines the simulated entity types.
package object

import "github.com/tomz197/shooty/internal/physics"

// Body is a kinematic rigid body: position, velocity, rotation and spin.
// Bodies have no identity beyond their slot in the owning collection and
// are mutated in place every tick.
type Body struct {
	Pos  physics.Vec2
	Vel  physics.Vec2
	Rot  float64 // Rotation in radians
	RotV float64 // Angular velocity in radians per second
}

// NewBody creates a stationary body at (x, y).
func NewBody(x, y float64) Body {
	return Body{Pos: physics.Vec2{X: x, Y: y}}
}

// Integrate advances position by velocity and rotation by angular velocity.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Rot += b.RotV * dt
}

// Facing returns the unit vector of the body's current rotation.
func (b Body) Facing() physics.Vec2 {
	return physics.FromAngle(b.Rot)
}

// Pushed returns a copy of the body displaced by (dx, dy), kicked by
// (dvx, dvy), and with the given extra rotation and spin. Used to derive
// splinter bodies from a destroyed crate.
func (b Body) Pushed(dx, dy, dvx, dvy, rot, rotv float64) Body {
	return Body{
		Pos:  b.Pos.Add(physics.Vec2{X: dx, Y: dy}),
		Vel:  b.Vel.Add(physics.Vec2{X: dvx, Y: dvy}),
		Rot:  b.Rot + rot,
		RotV: b.RotV + rotv,
	}
}

// Sprite is the draw descriptor the renderer consumes: world position,
// rotation, a uniform half scale, and an opacity in [0, 1].
type Sprite struct {
	Pos     physics.Vec2
	Rot     float64
	Scale   float64
	Opacity float64
}

// Sprite returns the body's draw descriptor.
func (b Body) Sprite() Sprite {
	return Sprite{Pos: b.Pos, Rot: b.Rot, Scale: 0.5, Opacity: 1}
}
