package sim

// Simulation tunables.
// All gameplay parameters are centralized here for easy adjustment.

// Arena bounds in logical units.
const (
	Width  = 1200.0
	Height = 900.0
)

// Delta is the fixed tick duration in seconds.
const Delta = 1.0 / 60.0

// Ship handling
const (
	RotSpeed     = 5.53  // Radians per second
	Acceleration = 150.0 // Thrust and brake, units per second²
)

// Bullets
const (
	BulletSpeed  = 470.0 // Added along facing on top of ship velocity
	BulletOffset = 20.0  // Spawn distance ahead of the ship
	BulletTTLMin = 4.5
	BulletTTLMax = 6.2
)

// Crates
const (
	CrateLimit     = 200  // Hard cap on live crates
	CrateSpawnRate = 0.65 // Seconds between spawns
	CrateMaxSpeed  = 150.0
	CrateMaxSpin   = 3.0
	SpawnClearance = 160.0 // Min distance from the ship for a spawn candidate
	SpawnBacklog   = 20    // Initial spawn intervals banked at start
)

// Collision
const (
	HitDist       = 16.0 + 8.0 // Bullet/crate destruction distance
	CollideRadius = 32.0       // Crate/crate and ship/crate resolve radius
	EdgeMargin    = 16.0       // Bounce margin at arena edges
)

// Splinters
const (
	SplinterOffset  = 8.0  // Position displacement along each axis
	SplinterKick    = 50.0 // Velocity delta along the same axis
	SplinterMaxSpin = 3.0
	SplinterInherit = 0.4 // Fraction of bullet velocity the crate keeps
	SplinterTTLMin  = 1.6
	SplinterTTLMax  = 4.2
)
