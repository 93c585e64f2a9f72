package bubbles

import (
	"testing"

	"github.com/gekko3d/bubbles/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	keys      map[platform.Key]bool
	x, y      float64
	unfocused bool
	captured  []bool
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{keys: make(map[platform.Key]bool)}
}

func (w *fakeWindow) KeyDown(k platform.Key) bool   { return w.keys[k] }
func (w *fakeWindow) CursorPos() (float64, float64) { return w.x, w.y }
func (w *fakeWindow) Focused() bool                 { return !w.unfocused }
func (w *fakeWindow) SetCursorCaptured(c bool)      { w.captured = append(w.captured, c) }

func newTestInput(w *fakeWindow, captured bool) *Input {
	return &Input{source: w, MouseCaptured: captured, firstMove: true}
}

func TestInput_EdgeDetection(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, false)

	w.keys[platform.KeyP] = true
	in.poll()
	assert.True(t, in.Pressed[platform.KeyP])
	assert.True(t, in.JustPressed[platform.KeyP])

	in.poll()
	assert.True(t, in.Pressed[platform.KeyP])
	assert.False(t, in.JustPressed[platform.KeyP], "held key is not just pressed")

	w.keys[platform.KeyP] = false
	in.poll()
	assert.False(t, in.Pressed[platform.KeyP])
	assert.True(t, in.JustReleased[platform.KeyP])

	in.poll()
	assert.False(t, in.JustReleased[platform.KeyP])
}

func TestInput_FirstMouseSampleHasZeroDelta(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, true)

	w.x, w.y = 100, 100
	in.poll()
	assert.Equal(t, []bool{true}, w.captured, "capture applied on first poll")
	assert.Zero(t, in.MouseDeltaX)
	assert.Zero(t, in.MouseDeltaY)

	w.x, w.y = 110, 95
	in.poll()
	assert.Equal(t, 10.0, in.MouseDeltaX)
	assert.Equal(t, -5.0, in.MouseDeltaY)
}

func TestInput_NoDeltaWhenNotCaptured(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, false)

	in.poll()
	w.x = 50
	in.poll()
	assert.Zero(t, in.MouseDeltaX)
	assert.Equal(t, 50.0, in.MouseX)
}

func TestInput_RecaptureResetsFirstMove(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, false)
	in.poll()

	in.MouseCaptured = true
	w.x = 300
	in.poll()
	assert.Zero(t, in.MouseDeltaX, "jump while capturing is ignored")
	require.Equal(t, []bool{true}, w.captured)

	w.x = 310
	in.poll()
	assert.Equal(t, 10.0, in.MouseDeltaX)
}

func TestInput_UnfocusedIgnoresEverything(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, true)
	in.poll()

	w.unfocused = true
	w.keys[platform.KeyW] = true
	w.x = 500
	in.pendingScroll = 3
	in.poll()

	assert.False(t, in.Focused)
	assert.False(t, in.Pressed[platform.KeyW])
	assert.Zero(t, in.MouseDeltaX)
	assert.Zero(t, in.ScrollY)

	// Regaining focus: the first sample is a zero delta again.
	w.unfocused = false
	w.x = 600
	in.poll()
	assert.True(t, in.Focused)
	assert.Zero(t, in.MouseDeltaX)

	w.x = 604
	in.poll()
	assert.Equal(t, 4.0, in.MouseDeltaX)
}

func TestInput_ScrollIsPerFrame(t *testing.T) {
	w := newFakeWindow()
	in := newTestInput(w, false)

	in.pendingScroll += 1
	in.pendingScroll += 2
	in.poll()
	assert.Equal(t, 3.0, in.ScrollY)

	in.poll()
	assert.Zero(t, in.ScrollY)
}

func TestInput_NilSource(t *testing.T) {
	in := &Input{}
	assert.NotPanics(t, in.poll)
}
