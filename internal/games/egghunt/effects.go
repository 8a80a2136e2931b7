package egghunt

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// EffectKind identifies a transient visual effect.
type EffectKind int

const (
	EffectHit      EffectKind = iota // Egg splat where something was hit
	EffectFirework                   // Celebration firework
)

// EffectPhase is where an effect is in its lifetime.
type EffectPhase int

const (
	PhasePending  EffectPhase = iota // Queued, not started yet
	PhaseRising                      // Firework climbing
	PhaseBursting                    // Firework exploding, or hit splat playing
	PhaseDone
)

// Effect is a purely visual, non-colliding entity with a fixed lifetime.
type Effect struct {
	Kind    EffectKind
	Origin  core.Vec2
	StartAt time.Duration
}

// Effects owns every running effect.
type Effects struct {
	cfg  config.EggHuntEffects
	list []Effect
}

// NewEffects creates an empty effect set.
func NewEffects(cfg config.EggHuntEffects) *Effects {
	return &Effects{cfg: cfg}
}

// AddHit starts a hit splat at pos.
func (fx *Effects) AddHit(pos core.Vec2, now time.Duration) {
	fx.list = append(fx.list, Effect{Kind: EffectHit, Origin: pos, StartAt: now})
}

// AddFirework queues a firework launching from pos at the given time.
func (fx *Effects) AddFirework(pos core.Vec2, at time.Duration) {
	fx.list = append(fx.list, Effect{Kind: EffectFirework, Origin: pos, StartAt: at})
}

// Phase returns the phase of e at now.
func (fx *Effects) Phase(e Effect, now time.Duration) EffectPhase {
	if now < e.StartAt {
		return PhasePending
	}
	elapsed := now - e.StartAt

	if e.Kind == EffectHit {
		if elapsed < fx.cfg.HitDuration {
			return PhaseBursting
		}
		return PhaseDone
	}

	switch {
	case elapsed < fx.cfg.FireworkRiseTime:
		return PhaseRising
	case elapsed < fx.cfg.FireworkRiseTime+fx.cfg.FireworkBurstTime:
		return PhaseBursting
	default:
		return PhaseDone
	}
}

// Position returns where e is drawn at now. Fireworks rise from their
// origin, everything else stays put.
func (fx *Effects) Position(e Effect, now time.Duration) core.Vec2 {
	if e.Kind != EffectFirework || now <= e.StartAt {
		return e.Origin
	}
	rise := Tween{
		From:     e.Origin,
		To:       e.Origin.Sub(core.V(0, fx.cfg.FireworkRise)),
		Start:    e.StartAt,
		Duration: fx.cfg.FireworkRiseTime,
		Ease:     SineOut,
	}
	pos, _ := rise.At(now)
	return pos
}

// Update drops effects that have finished.
func (fx *Effects) Update(now time.Duration) {
	kept := fx.list[:0]
	for _, e := range fx.list {
		if fx.Phase(e, now) != PhaseDone {
			kept = append(kept, e)
		}
	}
	fx.list = kept
}

// List returns the effects in creation order.
func (fx *Effects) List() []Effect {
	return fx.list
}

// Count returns how many effects of the given kind remain.
func (fx *Effects) Count(kind EffectKind) int {
	n := 0
	for _, e := range fx.list {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
