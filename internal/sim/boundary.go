package sim

import (
	"math"

	"github.com/tomz197/shooty/internal/object"
)

// BoundaryPolicy selects how bodies are kept inside the arena.
type BoundaryPolicy int

const (
	// WrapEdges teleports bodies across the arena, asteroids-style.
	WrapEdges BoundaryPolicy = iota
	// BounceEdges turns velocity back inward near the edges.
	BounceEdges
)

// ApplyBoundary applies the given policy to one body, per axis.
//
// Wrap maps both coordinates into [0, extent) with a non-negative modulo.
// Bounce forces the perpendicular velocity component inward once the body
// comes within EdgeMargin of an edge; position is not clamped, so a slight
// overshoot corrects itself on the following ticks.
func ApplyBoundary(policy BoundaryPolicy, b *object.Body) {
	switch policy {
	case BounceEdges:
		if b.Pos.X < EdgeMargin {
			b.Vel.X = math.Abs(b.Vel.X)
		} else if b.Pos.X >= Width-EdgeMargin {
			b.Vel.X = -math.Abs(b.Vel.X)
		}
		if b.Pos.Y < EdgeMargin {
			b.Vel.Y = math.Abs(b.Vel.Y)
		} else if b.Pos.Y >= Height-EdgeMargin {
			b.Vel.Y = -math.Abs(b.Vel.Y)
		}
	default:
		b.Pos.X = wrap(b.Pos.X, Width)
		b.Pos.Y = wrap(b.Pos.Y, Height)
	}
}

// wrap maps v into [0, extent) regardless of sign.
func wrap(v, extent float64) float64 {
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	return v
}
