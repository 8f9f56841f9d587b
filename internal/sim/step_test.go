package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/shooty/internal/object"
	"github.com/tomz197/shooty/internal/physics"
)

// quietState returns a state with the spawn countdown parked far in the
// future, so tests can control the entity populations directly.
func quietState(seed int64) *State {
	s := NewState(seed)
	s.CrateSpawnTime = 1e9
	return s
}

func TestIntegrationLinearity(t *testing.T) {
	s := quietState(1)
	s.Ship.Vel = physics.Vec2{X: 30, Y: -18}
	start := s.Ship.Pos

	const n = 120
	for i := 0; i < n; i++ {
		s.Step(Input{})
	}

	assert.InDelta(t, start.X+30*n*Delta, s.Ship.Pos.X, 1e-9)
	assert.InDelta(t, start.Y-18*n*Delta, s.Ship.Pos.Y, 1e-9)
}

func TestTTLExpiry(t *testing.T) {
	s := quietState(1)
	ttl := 2.5 * Delta
	s.Bullets = append(s.Bullets, object.NewProjectile(object.NewBody(100, 100), ttl))

	// Present for exactly floor(ttl/Delta) ticks, then gone for good.
	for i := 0; i < 2; i++ {
		s.Step(Input{})
		require.Len(t, s.Bullets, 1, "tick %d", i+1)
	}
	s.Step(Input{})
	require.Empty(t, s.Bullets)
	s.Step(Input{})
	require.Empty(t, s.Bullets)
}

func TestTTLExpiryRemovesAdjacent(t *testing.T) {
	s := quietState(1)
	// Two adjacent expiring splinters around one survivor.
	s.Splinters = []object.Projectile{
		object.NewProjectile(object.NewBody(10, 10), 0.5*Delta),
		object.NewProjectile(object.NewBody(20, 20), 0.5*Delta),
		object.NewProjectile(object.NewBody(30, 30), 10),
	}

	s.Step(Input{})

	require.Len(t, s.Splinters, 1)
	assert.InDelta(t, 10-Delta, s.Splinters[0].TTL, 1e-9)
}

func TestFireScenario(t *testing.T) {
	s := quietState(7)
	require.Equal(t, physics.Vec2{X: 0.5 * Width, Y: 0.5 * Height}, s.Ship.Pos)

	s.Step(Input{Fire: true})

	require.Len(t, s.Bullets, 1)
	b := s.Bullets[0]

	// Ship faces +x at rotation 0: spawned 20 ahead, then integrated once.
	assert.InDelta(t, 0.5*Width+BulletOffset+BulletSpeed*Delta, b.Body.Pos.X, 1e-9)
	assert.InDelta(t, 0.5*Height, b.Body.Pos.Y, 1e-9)
	assert.InDelta(t, BulletSpeed, b.Body.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, b.Body.Vel.Y, 1e-9)
	assert.Equal(t, 0.0, b.Body.Rot)
	assert.Equal(t, 0.0, b.Body.RotV)
	assert.GreaterOrEqual(t, b.TTL, BulletTTLMin)
	assert.Less(t, b.TTL, BulletTTLMax)

	// Edge-triggered: no held-state repeat fire.
	s.Step(Input{})
	assert.Len(t, s.Bullets, 1)
}

func TestFireBulletTTLDistribution(t *testing.T) {
	s := quietState(42)
	for i := 0; i < 200; i++ {
		s.fireBullet()
	}
	for _, b := range s.Bullets {
		require.GreaterOrEqual(t, b.TTL, BulletTTLMin)
		require.Less(t, b.TTL, BulletTTLMax)
	}
}

func TestRotation(t *testing.T) {
	s := quietState(1)

	s.Step(Input{RotateRight: true})
	assert.InDelta(t, RotSpeed*Delta, s.Ship.Rot, 1e-9)

	s.Step(Input{RotateLeft: true})
	s.Step(Input{RotateLeft: true})
	assert.InDelta(t, -RotSpeed*Delta, s.Ship.Rot, 1e-9)
}

func TestThrust(t *testing.T) {
	s := quietState(1)

	s.Step(Input{Forward: true})
	assert.InDelta(t, Acceleration*Delta, s.Ship.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, s.Ship.Vel.Y, 1e-9)

	// Diagonal intent is normalized before scaling.
	s = quietState(1)
	s.Step(Input{Forward: true, StrafeUp: true})
	want := Acceleration * Delta / math.Sqrt2
	assert.InDelta(t, want, s.Ship.Vel.X, 1e-9)
	assert.InDelta(t, want, s.Ship.Vel.Y, 1e-9)
}

func TestThrustFollowsFacing(t *testing.T) {
	s := quietState(1)
	s.Ship.Rot = math.Pi / 2 // facing +y

	s.Step(Input{Forward: true})
	assert.InDelta(t, 0.0, s.Ship.Vel.X, 1e-9)
	assert.InDelta(t, Acceleration*Delta, s.Ship.Vel.Y, 1e-9)
}

func TestBrakeCancelsLateralOnly(t *testing.T) {
	s := quietState(1)
	s.Ship.Rot = 0 // facing +x
	s.Ship.Vel = physics.Vec2{X: 50, Y: 30}

	s.Step(Input{Brake: true})

	assert.InDelta(t, 50.0, s.Ship.Vel.X, 1e-9)
	assert.InDelta(t, 30-Acceleration*Delta, s.Ship.Vel.Y, 1e-9)
}

func TestBrakeNeverOvershoots(t *testing.T) {
	s := quietState(1)
	s.Ship.Vel = physics.Vec2{X: 50, Y: 0.5} // lateral smaller than one brake step

	s.Step(Input{Brake: true})

	assert.InDelta(t, 50.0, s.Ship.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, s.Ship.Vel.Y, 1e-9)
}

func TestBrakeCancelsBackwardComponent(t *testing.T) {
	s := quietState(1)
	s.Ship.Rot = 0
	s.Ship.Vel = physics.Vec2{X: -50, Y: 0} // moving against facing

	s.Step(Input{Brake: true})

	// The forward component clamps to zero, so backward motion is braked.
	assert.InDelta(t, -50+Acceleration*Delta, s.Ship.Vel.X, 1e-9)
}

func TestToggleBounce(t *testing.T) {
	s := quietState(1)
	require.False(t, s.BounceEdge)
	require.Equal(t, WrapEdges, s.Policy())

	s.Step(Input{ToggleBounce: true})
	assert.True(t, s.BounceEdge)
	assert.Equal(t, BounceEdges, s.Policy())

	s.Step(Input{ToggleBounce: true})
	assert.False(t, s.BounceEdge)
}

func TestStepKeepsStateFinite(t *testing.T) {
	s := NewState(99)
	in := Input{Forward: true, RotateRight: true}
	for i := 0; i < 600; i++ {
		if i%37 == 0 {
			in.Fire = true
		} else {
			in.Fire = false
		}
		s.Step(in)

		requireFinite(t, s.Ship)
		for _, c := range s.Crates {
			requireFinite(t, c)
		}
		for _, b := range s.Bullets {
			requireFinite(t, b.Body)
		}
		for _, sp := range s.Splinters {
			requireFinite(t, sp.Body)
		}
	}
}

func requireFinite(t *testing.T, b object.Body) {
	t.Helper()
	for _, v := range []float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Rot, b.RotV} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite value in body: %+v", b)
	}
}

func TestSeededReplayIsDeterministic(t *testing.T) {
	run := func() *State {
		s := NewState(1234)
		for i := 0; i < 300; i++ {
			s.Step(Input{Forward: true, Fire: i%50 == 0})
		}
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a.Ship, b.Ship)
	assert.Equal(t, a.Crates, b.Crates)
	assert.Equal(t, a.Bullets, b.Bullets)
	assert.Equal(t, a.Splinters, b.Splinters)
	assert.Equal(t, a.CrateSpawnTime, b.CrateSpawnTime)
}

func TestUniformRange(t *testing.T) {
	s := &State{rng: rand.New(rand.NewSource(5))}
	for i := 0; i < 1000; i++ {
		v := s.uniform(-3, 3)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 3.0)
	}
}
