package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitTerminalKeepsAspect(t *testing.T) {
	tests := []struct {
		termW, termH int
	}{
		{240, 70},
		{120, 40},
		{80, 24},
		{300, 40},
		{40, 60},
	}

	for _, tt := range tests {
		w, h, offCol, offRow := fitTerminal(tt.termW, tt.termH)

		assert.LessOrEqual(t, w, tt.termW)
		assert.LessOrEqual(t, h, tt.termH)
		assert.GreaterOrEqual(t, offCol, 0)
		assert.GreaterOrEqual(t, offRow, 0)

		// Centered within the terminal.
		assert.LessOrEqual(t, offCol+w, tt.termW)
		assert.LessOrEqual(t, offRow+h, tt.termH)

		// Roughly arena-shaped: cols ≈ 2*rows * (Width/Height).
		want := float64(h) * 2 * 1200 / 900
		assert.InDelta(t, want, float64(w), want*0.35, "term %dx%d", tt.termW, tt.termH)
	}
}

func TestFitTerminalTinyTerminal(t *testing.T) {
	w, h, _, _ := fitTerminal(1, 1)
	assert.GreaterOrEqual(t, w, 1)
	assert.GreaterOrEqual(t, h, 1)
}
