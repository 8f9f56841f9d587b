package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamFrom builds a Stream whose goroutine has already delivered all of
// the given bytes into the channel buffer.
func streamFrom(t *testing.T, data string) *Stream {
	t.Helper()
	s := StartStream(bufio.NewReader(bytes.NewReader([]byte(data))))

	// Wait for the reader goroutine to buffer everything (channel closes at EOF).
	deadline := time.Now().Add(time.Second)
	for len(s.ch) < len(data) {
		if time.Now().After(deadline) {
			t.Fatalf("input stream never buffered %d bytes", len(data))
		}
		time.Sleep(time.Millisecond)
	}
	return s
}

func TestReadIntentHeldKeys(t *testing.T) {
	s := streamFrom(t, "wax")

	intent := s.ReadIntent()
	assert.True(t, intent.Forward)
	assert.True(t, intent.RotateLeft)
	assert.True(t, intent.Brake)
	assert.False(t, intent.Backward)
	assert.False(t, intent.Fire)
	assert.False(t, intent.Quit)

	// Still held within the hold window even with no new bytes.
	intent = s.ReadIntent()
	assert.True(t, intent.Forward)

	// Released after the hold window passes.
	time.Sleep(keyHoldDuration + 5*time.Millisecond)
	intent = s.ReadIntent()
	assert.False(t, intent.Forward)
	assert.False(t, intent.RotateLeft)
}

func TestReadIntentEdgeTriggers(t *testing.T) {
	s := streamFrom(t, " cb")

	intent := s.ReadIntent()
	assert.True(t, intent.Fire)
	assert.True(t, intent.ForceSpawn)
	assert.True(t, intent.ToggleBounce)

	// Edge triggers fire once; the next read sees nothing.
	intent = s.ReadIntent()
	assert.False(t, intent.Fire)
	assert.False(t, intent.ForceSpawn)
	assert.False(t, intent.ToggleBounce)
}

func TestReadIntentArrowKeys(t *testing.T) {
	s := streamFrom(t, "\x1b[A\x1b[D")

	intent := s.ReadIntent()
	assert.True(t, intent.Forward)
	assert.True(t, intent.RotateLeft)
	assert.False(t, intent.RotateRight)
}

func TestReadIntentQuit(t *testing.T) {
	s := streamFrom(t, "\x03")
	require.True(t, s.ReadIntent().Quit)
}

func TestClearEdges(t *testing.T) {
	in := Intent{Forward: true, Fire: true, ForceSpawn: true, ToggleBounce: true}
	in.ClearEdges()
	assert.True(t, in.Forward)
	assert.False(t, in.Fire)
	assert.False(t, in.ForceSpawn)
	assert.False(t, in.ToggleBounce)
}
