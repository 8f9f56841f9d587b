package loop

import (
	"fmt"
	"math"

	"github.com/tomz197/shooty/internal/draw"
	"github.com/tomz197/shooty/internal/object"
	"github.com/tomz197/shooty/internal/sim"
)

// Entity shape sizes in arena units.
const (
	shipSize       = 22.0 // Nose distance from center
	shipWingAngle  = 2.5  // Radians from nose to each wing
	crateHalfWidth = 12.0
)

// blinkFrequency is the on/off rate for fading projectiles, in Hz.
const blinkFrequency = 8.0

// drawFrame renders the full simulation state and flushes it out.
func drawFrame(s *sim.State, canvas *draw.Canvas, writer *draw.ChunkWriter) error {
	draw.ClearScreen(writer)
	canvas.Clear()

	drawShip(canvas, s.Ship)
	for _, c := range s.Crates {
		drawCrate(canvas, c)
	}
	for _, b := range s.Bullets {
		drawProjectile(canvas, b)
	}
	for _, sp := range s.Splinters {
		drawProjectile(canvas, sp)
	}

	canvas.Render(writer)
	canvas.RenderBorder(writer)
	drawHUD(s, canvas, writer)

	return writer.Flush()
}

// drawShip renders the ship as a triangle pointing along its facing.
func drawShip(canvas *draw.Canvas, ship object.Body) {
	sp := ship.Sprite()
	size := shipSize * 2 * sp.Scale

	points := canvas.BorrowPoints(3)
	points[0] = pointAt(sp.Pos.X, sp.Pos.Y, sp.Rot, size)
	points[1] = pointAt(sp.Pos.X, sp.Pos.Y, sp.Rot+shipWingAngle, size*0.7)
	points[2] = pointAt(sp.Pos.X, sp.Pos.Y, sp.Rot-shipWingAngle, size*0.7)
	canvas.DrawPolygon(points, true)
}

// drawCrate renders a crate as a rotated square outline.
func drawCrate(canvas *draw.Canvas, crate object.Body) {
	sp := crate.Sprite()
	radius := crateHalfWidth * math.Sqrt2 * 2 * sp.Scale

	points := canvas.BorrowPoints(4)
	for i := 0; i < 4; i++ {
		corner := sp.Rot + math.Pi/4 + float64(i)*math.Pi/2
		points[i] = pointAt(sp.Pos.X, sp.Pos.Y, corner, radius)
	}
	canvas.DrawPolygon(points, false)
}

// drawProjectile renders a bullet or splinter as a dot, blinking as its
// opacity fades toward expiry.
func drawProjectile(canvas *draw.Canvas, p object.Projectile) {
	sp := p.Sprite()
	if sp.Opacity <= 0 {
		return
	}
	if sp.Opacity < 1 {
		// Blink while fading out.
		phase := int(p.TTL * blinkFrequency)
		if phase%2 != 0 {
			return
		}
	}
	canvas.Set(sp.Pos.X, sp.Pos.Y)
}

// pointAt returns the point at the given distance and angle from (x, y).
func pointAt(x, y, angle, dist float64) draw.Point {
	sin, cos := math.Sincos(angle)
	return draw.Point{X: x + cos*dist, Y: y + sin*dist}
}

// drawHUD writes the status line above the arena.
func drawHUD(s *sim.State, canvas *draw.Canvas, writer *draw.ChunkWriter) {
	mode := "wrap"
	if s.BounceEdge {
		mode = "bounce"
	}
	status := fmt.Sprintf(" crates %d  bullets %d  edge:%s ", len(s.Crates), len(s.Bullets), mode)
	writer.WriteAt(2, 0, status)

	help := " wasd/eq move  x brake  space fire  b edge  c crate  ^C quit "
	row := canvas.TerminalHeight() + 1
	writer.WriteAt(2, row, help)
}
