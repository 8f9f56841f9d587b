// Package loop drives the game: fixed-timestep simulation plus rendering.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/shooty/internal/draw"
	"github.com/tomz197/shooty/internal/input"
	"github.com/tomz197/shooty/internal/sim"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxTicksPerFrame caps how many simulation ticks a single frame may run,
// so a stalled terminal does not trigger a catch-up spiral.
const maxTicksPerFrame = 4

// Options configures a game run.
type Options struct {
	// TermSizeFunc reports the terminal dimensions. Defaults to os.Stdout.
	TermSizeFunc draw.TermSizeFunc
	// Seed drives all randomized generation in the simulation.
	Seed int64
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// The simulation advances in fixed 1/60s ticks regardless of the render
// cadence; rendering only reads simulation state. Blocks until the player
// quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	state := sim.NewState(opts.Seed)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return err
	}
	renderW, renderH, offCol, offRow := fitTerminal(termWidth, termHeight)
	canvas := draw.NewCanvas(renderW, renderH, sim.Width, sim.Height)
	canvas.SetOffset(offCol, offRow)
	writer := draw.NewChunkWriter(w, offCol, offRow)

	lastTime := time.Now()
	var acc float64

	for {
		frameStart := time.Now()
		acc += frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		intent := stream.ReadIntent()
		if intent.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		if acc > maxTicksPerFrame*sim.Delta {
			acc = maxTicksPerFrame * sim.Delta
		}
		for acc >= sim.Delta {
			state.Step(intent)
			// Edge-triggered intents apply to the first tick only.
			intent.ClearEdges()
			acc -= sim.Delta
		}

		// ===== DRAW PHASE =====
		if err := updateScreen(canvas, writer, termSizeFunc); err != nil {
			return err
		}
		if err := drawFrame(state, canvas, writer); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updateScreen checks for terminal resize and recenters the render area.
func updateScreen(canvas *draw.Canvas, writer *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	renderW, renderH, offCol, offRow := fitTerminal(termWidth, termHeight)
	if renderW != canvas.TerminalWidth() || renderH != canvas.TerminalHeight() {
		canvas.Resize(renderW, renderH)
	}
	canvas.SetOffset(offCol, offRow)
	writer.SetOffset(offCol, offRow)
	return nil
}

// fitTerminal fits the largest render area with the arena's aspect ratio
// into the terminal, assuming cells roughly twice as tall as wide (each
// cell holds two half-block pixels). Returns the area and centering offset.
func fitTerminal(termWidth, termHeight int) (width, height, offsetCol, offsetRow int) {
	if termWidth < 2 {
		termWidth = 2
	}
	if termHeight < 2 {
		termHeight = 2
	}

	// cols/rows ratio matching the arena: cols : 2*rows = Width : Height
	wantCols := func(rows int) int {
		return int(float64(rows) * 2 * sim.Width / sim.Height)
	}

	height = termHeight
	width = wantCols(height)
	for width > termWidth && height > 2 {
		height--
		width = wantCols(height)
	}
	if width > termWidth {
		width = termWidth
	}

	offsetCol = (termWidth - width) / 2
	offsetRow = (termHeight - height) / 2
	return width, height, offsetCol, offsetRow
}
