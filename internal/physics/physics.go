// Package physics provides 2D vector math and distance utilities.
package physics

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// DistanceSq calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSq(a, b Vec2) float64 {
	return a.Sub(b).LengthSq()
}

// WithinRange checks if two points are strictly closer than dist.
func WithinRange(a, b Vec2, dist float64) bool {
	return DistanceSq(a, b) < dist*dist
}
