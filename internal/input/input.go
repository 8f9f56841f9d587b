// Package input turns a raw terminal byte stream into per-frame intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Intent represents the logical input state for one frame.
// Rotate/thrust/brake fields are "currently held"; Fire, ForceSpawn and
// ToggleBounce are edge-triggered and true only on the read that saw the
// key press.
type Intent struct {
	Quit bool

	RotateLeft  bool // a / left arrow
	RotateRight bool // d / right arrow
	Forward     bool // w / up arrow
	Backward    bool // s / down arrow
	StrafeUp    bool // e
	StrafeDown  bool // q
	Brake       bool // x

	Fire         bool // space
	ForceSpawn   bool // c
	ToggleBounce bool // b
}

// keyState tracks the last time each held-style key was pressed.
type keyState struct {
	rotateLeft  time.Time
	rotateRight time.Time
	forward     time.Time
	backward    time.Time
	strafeUp    time.Time
	strafeDown  time.Time
	brake       time.Time
}

// Stream delivers input bytes via a channel and tracks key state so that
// simultaneously held keys are detected across reads.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadIntent drains all available bytes from the stream (non-blocking) and
// returns the resulting intent. Held keys stay active for a short hold
// window after their last byte; edge-triggered keys fire once per press.
func (s *Stream) ReadIntent() Intent {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	var intent Intent
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.forward = now
			case 'B':
				s.state.backward = now
			case 'C':
				s.state.rotateRight = now
			case 'D':
				s.state.rotateLeft = now
			}
			i += 2
			continue
		}

		s.applyByte(b, now, &intent)
	}

	// Held keys are active if seen within the hold window.
	intent.RotateLeft = now.Sub(s.state.rotateLeft) < keyHoldDuration
	intent.RotateRight = now.Sub(s.state.rotateRight) < keyHoldDuration
	intent.Forward = now.Sub(s.state.forward) < keyHoldDuration
	intent.Backward = now.Sub(s.state.backward) < keyHoldDuration
	intent.StrafeUp = now.Sub(s.state.strafeUp) < keyHoldDuration
	intent.StrafeDown = now.Sub(s.state.strafeDown) < keyHoldDuration
	intent.Brake = now.Sub(s.state.brake) < keyHoldDuration

	return intent
}

// applyByte updates key state for held keys and sets edge-triggered intents.
func (s *Stream) applyByte(b byte, now time.Time, intent *Intent) {
	switch b {
	case '\x03', '\x04': // ctrl-c, ctrl-d
		intent.Quit = true
	case 'a', 'A', 'j', 'J':
		s.state.rotateLeft = now
	case 'd', 'D', 'l', 'L':
		s.state.rotateRight = now
	case 'w', 'W', 'i', 'I':
		s.state.forward = now
	case 's', 'S', 'k', 'K':
		s.state.backward = now
	case 'e', 'E':
		s.state.strafeUp = now
	case 'q', 'Q':
		s.state.strafeDown = now
	case 'x', 'X':
		s.state.brake = now
	case ' ':
		intent.Fire = true
	case 'c', 'C':
		intent.ForceSpawn = true
	case 'b', 'B':
		intent.ToggleBounce = true
	}
}

// ClearEdges zeroes the edge-triggered intents. The loop uses this when one
// frame drives several simulation ticks so a press applies exactly once.
func (in *Intent) ClearEdges() {
	in.Fire = false
	in.ForceSpawn = false
	in.ToggleBounce = false
}
