package egghunt

import (
	"math"
	"time"

	"github.com/vovakirdan/egghunt/internal/core"
)

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// SineInOut accelerates then decelerates along a half cosine.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// SineOut decelerates along a quarter sine.
func SineOut(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// Tween is a scripted, non-interactive move of one entity from one point
// to another over a fixed duration.
type Tween struct {
	Target   EntityID
	From     core.Vec2
	To       core.Vec2
	Start    time.Duration
	Duration time.Duration
	Ease     Ease
}

// Progress returns the linear progress at now, clamped to [0,1].
func (tw *Tween) Progress(now time.Duration) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	t := float64(now-tw.Start) / float64(tw.Duration)
	return core.ClampF(t, 0, 1)
}

// At returns the scripted position at now and whether the tween is done.
func (tw *Tween) At(now time.Duration) (core.Vec2, bool) {
	t := tw.Progress(now)
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	k := ease(t)
	pos := tw.From.Add(tw.To.Sub(tw.From).Scale(k))
	if t >= 1 {
		return tw.To, true
	}
	return pos, false
}

// Motions runs scripted tweens. Completion is reported through the event
// queue, never by callback, so the consumer sees it at its next drain.
type Motions struct {
	tweens []*Tween
}

// Start begins a tween. A running tween on the same entity is replaced.
func (m *Motions) Start(tw Tween) {
	m.Cancel(tw.Target)
	m.tweens = append(m.tweens, &tw)
}

// Cancel stops the tween driving id without signaling completion.
func (m *Motions) Cancel(id EntityID) {
	kept := m.tweens[:0]
	for _, tw := range m.tweens {
		if tw.Target != id {
			kept = append(kept, tw)
		}
	}
	m.tweens = kept
}

// Active reports whether id is being driven by a tween.
func (m *Motions) Active(id EntityID) bool {
	for _, tw := range m.tweens {
		if tw.Target == id {
			return true
		}
	}
	return false
}

// Len returns the number of running tweens.
func (m *Motions) Len() int {
	return len(m.tweens)
}

// Advance places every driven entity at its scripted position.
// Finished tweens are dropped and a MotionCompleteEvent is queued for each.
// Tweens whose entity no longer exists are dropped silently.
func (m *Motions) Advance(now time.Duration, lookup func(EntityID) *Entity, q *EventQueue) {
	kept := m.tweens[:0]
	for _, tw := range m.tweens {
		e := lookup(tw.Target)
		if e == nil || !e.Alive {
			continue
		}
		pos, done := tw.At(now)
		e.Pos = pos
		if done {
			q.Push(MotionCompleteEvent{Entity: tw.Target})
			continue
		}
		kept = append(kept, tw)
	}
	m.tweens = kept
}
