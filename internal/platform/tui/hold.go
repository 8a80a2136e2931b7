package tui

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/core"
)

// DefaultHoldWindow is how long a key stays held after its last key event.
// It sits below the player's move delay so a released key never yields an
// extra step.
const DefaultHoldWindow = 180 * time.Millisecond

// DefaultRepeatDelay is how long after a key event another event for the same
// key still counts as auto-repeat. Terminals wait 250 to 600 ms before the
// first repeat, which is longer than DefaultHoldWindow.
const DefaultRepeatDelay = 600 * time.Millisecond

// HoldTracker emulates key-up events. Terminals only report key presses and
// auto-repeats, so a key counts as held until no repeat arrives for window.
// A press is fresh only when the key has been silent for the repeat delay,
// so the first auto-repeat after a long initial delay is not a second press.
type HoldTracker struct {
	window      time.Duration
	repeatDelay time.Duration
	last        map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. Non-positive durations use
// DefaultHoldWindow and DefaultRepeatDelay. The repeat delay is never
// shorter than the hold window.
func NewHoldTracker(window, repeatDelay time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if repeatDelay <= 0 {
		repeatDelay = DefaultRepeatDelay
	}
	return &HoldTracker{
		window:      window,
		repeatDelay: max(window, repeatDelay),
		last:        make(map[core.Action]time.Time),
	}
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// RepeatDelay returns the window in which a key event counts as auto-repeat.
func (h *HoldTracker) RepeatDelay() time.Duration {
	return h.repeatDelay
}

// Press records a key event for a at now and reports whether it is a fresh
// press rather than an auto-repeat.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	fresh := !ok || now.Sub(t) >= h.repeatDelay
	h.last[a] = now
	return fresh
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < h.window
}

// Fill marks every action still held at now in frame. Keys silent for the
// repeat delay are forgotten.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		since := now.Sub(t)
		if since < h.window {
			frame.SetHeld(a)
		}
		if since >= h.repeatDelay {
			delete(h.last, a)
		}
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.last)
}

// holdable reports whether a is a continuous control (movement or shooting)
// rather than a one-shot command.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionShoot:
		return true
	}
	return false
}
