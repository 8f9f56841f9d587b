package object

// Projectile is a body with a remaining lifetime in seconds.
// Bullets and splinters are the same type with different TTL distributions.
type Projectile struct {
	Body Body
	TTL  float64 // Seconds remaining before removal
}

// NewProjectile wraps a body with the given lifetime.
func NewProjectile(b Body, ttl float64) Projectile {
	return Projectile{Body: b, TTL: ttl}
}

// Expired reports whether the projectile's lifetime has run out.
func (p Projectile) Expired() bool {
	return p.TTL <= 0
}

// Opacity returns the render opacity derived from the remaining lifetime:
// fully opaque above 0.5s, fading linearly to transparent at expiry.
func (p Projectile) Opacity() float64 {
	a := min(p.TTL, 5) * 2
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Sprite returns the projectile's draw descriptor with lifetime fade.
func (p Projectile) Sprite() Sprite {
	s := p.Body.Sprite()
	s.Opacity = p.Opacity()
	return s
}
