package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/egghunt/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 0)
	t0 := time.Unix(0, 0)

	assert.True(t, h.Press(core.ActionLeft, t0), "first press is fresh")
	assert.True(t, h.Held(core.ActionLeft, t0.Add(99*time.Millisecond)))
	assert.False(t, h.Held(core.ActionLeft, t0.Add(100*time.Millisecond)))
	assert.False(t, h.Held(core.ActionRight, t0))
}

func TestHoldTrackerRepeatIsNotFresh(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 400*time.Millisecond)
	t0 := time.Unix(0, 0)

	assert.True(t, h.Press(core.ActionShoot, t0))
	assert.False(t, h.Press(core.ActionShoot, t0.Add(30*time.Millisecond)), "auto-repeat")
	assert.False(t, h.Press(core.ActionShoot, t0.Add(120*time.Millisecond)), "repeat extends the hold")
	assert.False(t, h.Press(core.ActionShoot, t0.Add(300*time.Millisecond)), "within the repeat delay")
	assert.True(t, h.Press(core.ActionShoot, t0.Add(700*time.Millisecond)), "released then pressed again")
}

func TestHoldTrackerFirstRepeatAfterDelay(t *testing.T) {
	h := NewHoldTracker(180*time.Millisecond, 600*time.Millisecond)
	t0 := time.Unix(0, 0)
	frame := core.NewInputFrame()

	require.True(t, h.Press(core.ActionShoot, t0))

	// The key reads as released while the terminal waits to auto-repeat.
	h.Fill(&frame, t0.Add(300*time.Millisecond))
	assert.False(t, frame.IsHeld(core.ActionShoot))

	// The first repeat lands after the hold window but is still a repeat.
	assert.False(t, h.Press(core.ActionShoot, t0.Add(500*time.Millisecond)))
	for i := 1; i <= 10; i++ {
		assert.False(t, h.Press(core.ActionShoot, t0.Add(500*time.Millisecond+time.Duration(i)*33*time.Millisecond)))
	}
	assert.True(t, h.Held(core.ActionShoot, t0.Add(900*time.Millisecond)))
}

func TestHoldTrackerFill(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0.Add(80*time.Millisecond))

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(150*time.Millisecond))

	assert.True(t, frame.IsHeld(core.ActionLeft))
	assert.False(t, frame.IsHeld(core.ActionUp))
	assert.False(t, frame.Has(core.ActionLeft), "held is not pressed")

	// Expired keys are forgotten, so the next event is fresh again.
	assert.True(t, h.Press(core.ActionUp, t0.Add(160*time.Millisecond)))
}

func TestHoldTrackerDefaultsAndReset(t *testing.T) {
	h := NewHoldTracker(0, 0)
	assert.Equal(t, DefaultHoldWindow, h.Window())
	assert.Equal(t, DefaultRepeatDelay, h.RepeatDelay())

	// A repeat delay shorter than the hold window is raised to it.
	assert.Equal(t, time.Second, NewHoldTracker(time.Second, time.Millisecond).RepeatDelay())

	t0 := time.Unix(0, 0)
	h.Press(core.ActionDown, t0)
	h.Reset()
	assert.False(t, h.Held(core.ActionDown, t0))
}

func TestHoldable(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionShoot} {
		assert.True(t, holdable(a), a.String())
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionConfirm, core.ActionBack} {
		assert.False(t, holdable(a), a.String())
	}
}
